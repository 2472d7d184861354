package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seekerhq/seeker/config"
	"github.com/seekerhq/seeker/internal/agent"
	"github.com/seekerhq/seeker/provider"
	"github.com/seekerhq/seeker/tools/web_search"
)

func main() {
	var root = &cobra.Command{Use: "seeker"}

	root.AddCommand(serveCMD(), askCMD(), chatCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildAgent wires the pipeline from config: LLM provider, planner, searcher,
// synthesizer. A missing search key leaves the searcher nil and the agent
// answers from model knowledge alone.
func buildAgent(cfg *config.Config) (*agent.Orchestrator, error) {
	llm, err := provider.NewProvider(cfg.LLM)
	if err != nil {
		return nil, err
	}
	planner := agent.NewLLMPlanner(cfg.LLM, llm)
	synth := agent.NewLLMSynthesizer(cfg.LLM, llm)

	var searcher agent.Searcher
	if cfg.Search.APIKey != "" {
		s, err := web_search.NewSearcher(cfg.Search)
		if err != nil {
			return nil, err
		}
		searcher = s
	}
	return agent.NewOrchestrator(cfg, planner, searcher, synth), nil
}
