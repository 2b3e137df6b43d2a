package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"travel-discovery-service/internal/ports"
)

// DishCache persists per-city dish lists across requests.
type DishCache interface {
	Get(ctx context.Context, city string) (string, bool, error)
	Put(ctx context.Context, city, dishes string) error
}

// DishFinder searches the web for a city's traditional dishes and asks a
// language model to boil the snippets down to a comma-separated list.
type DishFinder struct {
	Search ports.WebSearcher
	LLM    ports.Completer
	Cache  DishCache // optional
}

// FindDishes returns the model's dish list verbatim, trimmed of surrounding
// whitespace. The output is not validated; consumers split on commas and
// drop empty items.
func (f *DishFinder) FindDishes(ctx context.Context, city string) (string, error) {
	if f.Cache != nil {
		dishes, ok, err := f.Cache.Get(ctx, city)
		if err != nil {
			log.Printf("dish cache read failed: %v", err)
		} else if ok {
			return dishes, nil
		}
	}

	query := fmt.Sprintf("most famous 15 traditional local dishes, food, and desserts in %s", city)

	results, err := f.Search.Search(ctx, query)
	if err != nil {
		return "", &UpstreamError{Message: fmt.Sprintf("Dish extraction failed: %v", err)}
	}

	prompt := fmt.Sprintf(
		"Extract at least 10-15 famous local dishes from this text about %s. "+
			"Return ONLY a comma-separated list:\n\n%s",
		city, results,
	)

	response, err := f.LLM.Complete(ctx, prompt)
	if err != nil {
		return "", &UpstreamError{Message: fmt.Sprintf("Dish extraction failed: %v", err)}
	}

	dishes := strings.TrimSpace(response)

	if f.Cache != nil {
		if err := f.Cache.Put(ctx, city, dishes); err != nil {
			log.Printf("dish cache write failed: %v", err)
		}
	}

	return dishes, nil
}
