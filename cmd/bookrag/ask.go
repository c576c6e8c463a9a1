package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
)

func runAsk(args []string) {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	showSources := fs.Bool("sources", false, "Show citation sources with the answer")
	cfg := loadConfig(fs, args)

	question := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if question == "" {
		fmt.Fprintln(os.Stderr, `Usage: bookrag ask [--sources] "your question"`)
		os.Exit(1)
	}

	logger := initLogger(cfg.Log)
	defer logger.Sync()

	p := newPipeline(cfg, logger)

	fmt.Println(questionStyle.Render("Q: " + question))
	result, err := p.agent.Answer(context.Background(), question)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to answer: %v\n", err)
		os.Exit(1)
	}
	printResult(result, *showSources)
}
