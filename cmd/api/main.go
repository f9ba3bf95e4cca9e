package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tweetlens/internal/handler"
	"tweetlens/internal/store"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	datasets := store.NewDatasetStore(envOr("TWEETS_CSV", "tweets.csv"))
	analyses := store.NewAnalysisStore(envOr("ANALYSIS_FILE", "tweet_analysis.txt"))

	runHandler := handler.NewRunHandler(datasets, analyses)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/rows", runHandler.GetRows)
	r.GET("/analyses", runHandler.GetAnalyses)
	r.GET("/health", runHandler.GetHealth)

	err := r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
