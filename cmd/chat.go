package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/seekerhq/seeker/config"
	"github.com/seekerhq/seeker/models"
	"github.com/seekerhq/seeker/session"
)

func chatCMD() *cobra.Command {
	var cfgPath string
	var noSearch bool
	var chat = &cobra.Command{
		Use:   "chat",
		Short: "Interactive question loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			ag, err := buildAgent(cfg)
			if err != nil {
				return err
			}

			history := session.NewHistory(session.DefaultCapacity)
			in := bufio.NewScanner(os.Stdin)
			fmt.Println("Ask anything. Commands: history, !N, exit")
			for {
				fmt.Print("> ")
				if !in.Scan() {
					return in.Err()
				}
				line := strings.TrimSpace(in.Text())
				switch line {
				case "":
					continue
				case "exit", "quit":
					return nil
				case "history":
					printHistory(history)
					continue
				}
				if n, ok := recallIndex(line); ok {
					if rec, found := history.At(n - 1); found {
						printRecord(rec)
					} else {
						fmt.Printf("no history entry %d\n", n)
					}
					continue
				}

				res, err := ag.AskQuestion(cmd.Context(), line, !noSearch)
				if err != nil {
					fmt.Printf("error: %v\n", err)
					continue
				}
				printAnswer(res)
				history.Add(models.QueryResult{
					Question:   line,
					Answer:     res.Answer,
					UsedSearch: res.UsedSearch,
					Timestamp:  time.Now(),
				})
			}
		},
	}
	chat.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	chat.Flags().BoolVar(&noSearch, "no-search", false, "answer without web search")

	return chat
}

// recallIndex parses "!N" commands. 1 is the most recent entry.
func recallIndex(line string) (int, bool) {
	if !strings.HasPrefix(line, "!") {
		return 0, false
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func printHistory(h *session.History) {
	entries := h.Entries()
	if len(entries) == 0 {
		fmt.Println("no history yet")
		return
	}
	for i, e := range entries {
		fmt.Printf("!%d  %s  %s\n", i+1, e.Timestamp.Format("15:04:05"), e.Question)
	}
}

// printRecord redisplays a cached answer without re-running the pipeline.
func printRecord(r models.QueryResult) {
	fmt.Printf("[%s] %s\n", r.Timestamp.Format("15:04:05"), r.Question)
	fmt.Println(r.Answer)
}

func printAnswer(res models.AnswerResult) {
	fmt.Println(res.Answer)
	if len(res.Sources) > 0 {
		fmt.Println("\nSources:")
		for i, s := range res.Sources {
			fmt.Printf("%d. %s\n   %s\n", i+1, s.Title, s.URL)
		}
	}
	if res.Reason != "" {
		fmt.Printf("(%s)\n", res.Reason)
	}
}
