package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"travel-discovery-service/internal/adapters/cache"
	"travel-discovery-service/internal/adapters/llm"
	"travel-discovery-service/internal/adapters/places"
	"travel-discovery-service/internal/adapters/search"
	"travel-discovery-service/internal/agent"
	"travel-discovery-service/internal/config"
	"travel-discovery-service/internal/services"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main runs the discovery agent as an interactive terminal session.
// One travel request per line; the rendered itinerary prints to stdout.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	googleKey := config.MustGet("GOOGLE_API_KEY")
	openaiKey := config.MustGet("OPENAI_API_KEY")
	tavilyKey := config.MustGet("TAVILY_API_KEY")

	dbPath := config.Get("DB_PATH", "data/app.db")
	lite, err := openSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer lite.Close()

	if err := cache.InitSqliteSchema(lite); err != nil {
		log.Fatal(err)
	}

	provider, err := places.NewGooglePlacesProvider(googleKey, cache.NewSqliteGeocodeCache(lite))
	if err != nil {
		log.Fatal(err)
	}

	searcher, err := search.NewTavilyClient(tavilyKey)
	if err != nil {
		log.Fatal(err)
	}

	extractor, err := llm.NewOpenAIClient(openaiKey, config.Get("OPENAI_MODEL", "gpt-3.5-turbo"), 0)
	if err != nil {
		log.Fatal(err)
	}
	renderer, err := llm.NewOpenAIClient(openaiKey, config.Get("AGENT_MODEL", "gpt-4o"), 0.7)
	if err != nil {
		log.Fatal(err)
	}

	finder := &services.DishFinder{Search: searcher, LLM: extractor}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		dishCache := cache.NewRedisDishCache(addr, 24*time.Hour)
		defer dishCache.Close()
		finder.Cache = dishCache
	}

	planner := &agent.Agent{
		Tools: &agent.Toolbox{
			Dishes: finder,
			Deps:   services.PlanDeps{Geocoder: provider, Places: provider},
		},
		LLM: renderer,
	}

	fmt.Println("Where would you like to go? (empty line to quit)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		res, err := planner.Run(ctx, query)
		cancel()
		if err != nil {
			log.Printf("agent run failed: %v", err)
			continue
		}

		fmt.Println()
		fmt.Println(res.Markdown)
		if res.PlanJSON != "" {
			fmt.Println()
			fmt.Println(res.PlanJSON)
		}
		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func openSqlite(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openSqlite: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("openSqlite: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqlDB, nil
}
