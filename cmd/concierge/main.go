package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	json "github.com/alpkeskin/gotoon"

	concierge "github.com/voyant-ai/concierge"
	"github.com/voyant-ai/concierge/src/history"
	"github.com/voyant-ai/concierge/src/models"
)

func main() {
	provider := flag.String("provider", "dummy", "Generation provider: openai, anthropic, gemini, ollama, dummy")
	modelName := flag.String("model", "gpt-4o-mini", "Model ID for the chosen provider")
	temperature := flag.Float64("temperature", 0.7, "Sampling temperature")
	maxTokens := flag.Int("max-tokens", 1024, "Maximum output tokens")
	sessionID := flag.String("session-id", "cli:concierge", "Session identifier used when flushing the transcript")
	postgresURL := flag.String("postgres-url", "", "Optional Postgres URL to persist the transcript on exit")
	flag.Parse()

	ctx := context.Background()

	model, err := models.NewProvider(ctx, *provider, *modelName)
	if err != nil {
		log.Fatalf("failed to create model: %v", err)
	}

	catalog := concierge.NewStaticToolCatalog([]concierge.ToolSpec{
		{Name: "search_flights", Description: "Search for flights between two airports"},
		{Name: "search_hotels", Description: "Search for hotels in a city"},
		{Name: "book_hotel", Description: "Book a hotel by its ID"},
		{Name: "book_car_rental", Description: "Book a rental car by its ID"},
		{Name: "cancel_booking", Description: "Cancel an existing booking"},
		{Name: "lookup_policy", Description: "Look up company travel policies"},
	})

	session := concierge.NewSession(concierge.Options{
		Model:   model,
		Catalog: catalog,
	})

	var store history.TurnStore
	if *postgresURL != "" {
		pg, err := history.NewPostgresStore(ctx, *postgresURL)
		if err != nil {
			log.Fatalf("failed to connect to Postgres: %v", err)
		}
		if err := pg.CreateSchema(ctx); err != nil {
			log.Fatalf("failed to create schema: %v", err)
		}
		defer pg.Close()
		store = pg
	}

	fmt.Println("Concierge ready. Type a message, or 'exit' to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		res, err := session.Send(ctx, concierge.Request{
			Prompt:      line,
			Temperature: *temperature,
			MaxTokens:   *maxTokens,
		})
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}

		fmt.Println(res.Content)
		if len(res.Calls) > 0 {
			if payload, err := json.MarshalIndent(res.Calls, "", "  "); err == nil {
				fmt.Printf("tool calls:\n%s\n", payload)
			}
		}
	}

	if store != nil {
		if err := session.Flush(ctx, store, *sessionID); err != nil {
			log.Printf("failed to flush transcript: %v", err)
		} else {
			fmt.Printf("Transcript saved under session %q.\n", *sessionID)
		}
	}
}
