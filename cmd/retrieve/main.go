// Command retrieve embeds a query and prints the scored corpus matches.
// Useful for inspecting what the retriever will feed into a prompt.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"promptly/internal/service"
	"promptly/pkg/config"
	"promptly/pkg/logger"
)

func main() {
	topK := flag.Int("k", 3, "number of documents to retrieve")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if query == "" {
		log.Fatal("usage: retrieve [-k N] <query>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	retriever := service.NewRetrieverService(&cfg.Retriever, logger.Get())

	for i, doc := range retriever.RetrieveWithScores(query, *topK) {
		fmt.Printf("%d. [%.4f] %s\n", i+1, doc.Score, doc.Content)
	}
}
