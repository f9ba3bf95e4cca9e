package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"tweetlens/internal/model"
	"tweetlens/internal/pipeline"
	"tweetlens/internal/store"
	"tweetlens/pkg/llm"
	"tweetlens/pkg/socialdata"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	providerKey := os.Getenv("SOCIALDATA_API_KEY")
	if providerKey == "" {
		log.Fatalf("SOCIALDATA_API_KEY environment variable is not set")
	}

	summarizer := newSummarizer()

	reqs := parseArgs(os.Args[1:])
	if len(reqs) == 0 {
		reqs = readSearchTerms()
	}

	datasets := store.NewDatasetStore(envOr("TWEETS_CSV", "search_results.csv"))
	analyses := store.NewAnalysisStore(envOr("ANALYSIS_FILE", "search_analysis.txt"))

	driver := pipeline.NewDriver(socialdata.NewClient(providerKey), summarizer, datasets, analyses, model.ModeTopics)

	result, err := driver.Run(context.Background(), reqs)
	if err != nil {
		slog.Error("run finished with errors", "run_id", result.RunID, "error", err)
	}

	fmt.Printf("\nTweets saved to %s\n", datasets.Path())
	fmt.Printf("Analyses saved to %s\n", analyses.Path())
}

func newSummarizer() llm.Summarizer {
	if os.Getenv("LLM_PROVIDER") == "anthropic" {
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			log.Fatalf("ANTHROPIC_API_KEY environment variable is not set")
		}
		return llm.NewAnthropicClient(key)
	}

	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		log.Fatalf("OPENAI_API_KEY environment variable is not set")
	}
	return llm.NewOpenAIClient(key)
}

// parseArgs accepts "query:days" arguments; days falls back to the pipeline
// default when omitted.
func parseArgs(args []string) []model.Request {
	var reqs []model.Request
	for _, arg := range args {
		query, days, found := strings.Cut(arg, ":")
		req := model.Request{Key: strings.TrimSpace(query)}
		if found {
			n, err := strconv.Atoi(days)
			if err != nil {
				fmt.Printf("Invalid argument %q. Use the format 'query:days'.\n", arg)
				continue
			}
			req.WindowDays = n
		}
		if req.Key != "" {
			reqs = append(reqs, req)
		}
	}
	return reqs
}

func readSearchTerms() []model.Request {
	fmt.Println("Enter search queries and the number of past days (e.g., 'deepseek 7'):")
	fmt.Println("Press Enter twice to finish:")

	var reqs []model.Request
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Println("Invalid input. Please enter in the format 'query days'.")
			continue
		}

		days, err := strconv.Atoi(parts[1])
		if err != nil {
			fmt.Println("Invalid input. Please enter in the format 'query days'.")
			continue
		}

		reqs = append(reqs, model.Request{Key: parts[0], WindowDays: days})
	}

	return reqs
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
