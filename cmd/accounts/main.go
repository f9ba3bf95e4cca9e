package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
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

	handles := os.Args[1:]
	if len(handles) == 0 {
		handles = readHandles()
	}

	reqs := make([]model.Request, 0, len(handles))
	for _, handle := range handles {
		reqs = append(reqs, model.Request{Key: strings.TrimPrefix(strings.TrimSpace(handle), "@")})
	}

	datasets := store.NewDatasetStore(envOr("TWEETS_CSV", "tweets.csv"))
	analyses := store.NewAnalysisStore(envOr("ANALYSIS_FILE", "tweet_analysis.txt"))

	driver := pipeline.NewDriver(socialdata.NewClient(providerKey), summarizer, datasets, analyses, model.ModeAccounts)

	result, err := driver.Run(context.Background(), reqs)
	if err != nil {
		slog.Error("run finished with errors", "run_id", result.RunID, "error", err)
	}

	fmt.Printf("\nTweets saved to %s\n", datasets.Path())
	fmt.Printf("Analyses saved to %s\n", analyses.Path())
	printHead(result.Rows, 5)
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

func readHandles() []string {
	fmt.Println("Enter Twitter handles (one per line, press Enter twice to finish):")

	var handles []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		handle := strings.TrimSpace(scanner.Text())
		if handle == "" {
			break
		}
		handles = append(handles, handle)
	}

	return handles
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func printHead(rows []model.Row, n int) {
	if len(rows) < n {
		n = len(rows)
	}

	fmt.Printf("\nFirst %d rows:\n", n)
	for _, row := range rows[:n] {
		id := ""
		if row.PostID != nil {
			id = *row.PostID
		}
		fmt.Printf("%s\t%s\t%s\n", row.Key, id, row.Text)
	}
}
