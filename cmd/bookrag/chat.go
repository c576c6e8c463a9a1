package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// warnIfCollectionEmpty tells the user up front when there is nothing to
// retrieve from, instead of letting every question come back low-confidence.
func warnIfCollectionEmpty(p *pipeline) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := p.store.CollectionExists(ctx)
	if err != nil {
		fmt.Println(warnStyle.Render("⚠ Could not reach the vector store; answers may fail."))
		return
	}
	if !exists {
		fmt.Println(warnStyle.Render(`⚠ No book collection found. Run "bookrag ingest" first.`))
		return
	}
	if count, err := p.store.Count(ctx); err == nil && count == 0 {
		fmt.Println(warnStyle.Render(`⚠ The book collection is empty. Run "bookrag ingest" first.`))
	}
}

func runChat(args []string) {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	showSources := fs.Bool("sources", false, "Show citation sources with each answer")
	cfg := loadConfig(fs, args)

	logger := initLogger(cfg.Log)
	defer logger.Sync()

	p := newPipeline(cfg, logger)

	fmt.Println(questionStyle.Render("bookrag chat"))
	fmt.Println(statStyle.Render(`Ask a question, or type "exit" to quit.`))

	warnIfCollectionEmpty(p)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)

	for {
		fmt.Print(questionStyle.Render("> "))
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		question := strings.TrimSpace(scanner.Text())
		switch question {
		case "":
			continue
		case "exit", "quit":
			return
		}

		result, err := p.agent.Answer(context.Background(), question)
		if err != nil {
			fmt.Println(warnStyle.Render(fmt.Sprintf("Error: %v", err)))
			continue
		}
		printResult(result, *showSources)
		fmt.Println()
	}
}
