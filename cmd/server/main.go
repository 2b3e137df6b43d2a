package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"travel-discovery-service/internal/adapters/cache"
	"travel-discovery-service/internal/adapters/llm"
	"travel-discovery-service/internal/adapters/places"
	"travel-discovery-service/internal/adapters/search"
	"travel-discovery-service/internal/agent"
	"travel-discovery-service/internal/api"
	"travel-discovery-service/internal/config"
	"travel-discovery-service/internal/platform/db"
	"travel-discovery-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (Google Places, Tavily, OpenAI, the geocode
// and dish caches) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	googleKey := config.MustGet("GOOGLE_API_KEY")
	openaiKey := config.MustGet("OPENAI_API_KEY")
	tavilyKey := config.MustGet("TAVILY_API_KEY")

	port := config.Get("PORT", "8080")

	geocodeCache, closeDB, err := openGeocodeCache()
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	provider, err := places.NewGooglePlacesProvider(googleKey, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	searcher, err := search.NewTavilyClient(tavilyKey)
	if err != nil {
		log.Fatal(err)
	}

	// Dish extraction runs cold with a cheap model; rendering is conversational
	// and keeps some temperature.
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

	tools := &agent.Toolbox{
		Dishes: finder,
		Deps:   services.PlanDeps{Geocoder: provider, Places: provider},
	}
	planner := &agent.Agent{Tools: tools, LLM: renderer}

	router := api.NewRouter(tools, planner)

	// Timeouts are tuned for cold-cache plan building (several upstream calls).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openGeocodeCache prefers Postgres when DATABASE_URL is set and falls back
// to a local SQLite file otherwise. Both back the same GeocodeCache port.
func openGeocodeCache() (places.GeocodeCache, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchema(pg); err != nil {
			pg.Close()
			return nil, nil, err
		}
		return cache.NewSQLGeocodeCache(pg), func() { pg.Close() }, nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	lite, err := openSqlite(dbPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cache.InitSqliteSchema(lite); err != nil {
		lite.Close()
		return nil, nil, err
	}
	return cache.NewSqliteGeocodeCache(lite), func() { lite.Close() }, nil
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
