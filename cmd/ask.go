package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seekerhq/seeker/config"
)

func askCMD() *cobra.Command {
	var cfgPath string
	var noSearch bool
	var ask = &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			ag, err := buildAgent(cfg)
			if err != nil {
				return err
			}

			res, err := ag.AskQuestion(cmd.Context(), strings.Join(args, " "), !noSearch)
			if err != nil {
				return err
			}
			fmt.Println(res.Answer)
			return nil
		},
	}
	ask.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	ask.Flags().BoolVar(&noSearch, "no-search", false, "answer without web search")

	return ask
}
