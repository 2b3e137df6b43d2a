package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeSearcher struct {
	result  string
	err     error
	queries []string
}

func (f *fakeSearcher) Search(ctx context.Context, query string) (string, error) {
	f.queries = append(f.queries, query)
	return f.result, f.err
}

type fakeCompleter struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

type fakeDishCache struct {
	entries map[string]string
	puts    int
}

func (f *fakeDishCache) Get(ctx context.Context, city string) (string, bool, error) {
	v, ok := f.entries[city]
	return v, ok, nil
}

func (f *fakeDishCache) Put(ctx context.Context, city, dishes string) error {
	if f.entries == nil {
		f.entries = map[string]string{}
	}
	f.entries[city] = dishes
	f.puts++
	return nil
}

func TestFindDishes(t *testing.T) {
	search := &fakeSearcher{result: "Roman cuisine is famous for carbonara and supplì..."}
	llm := &fakeCompleter{response: "  carbonara, supplì, maritozzo \n"}
	finder := &DishFinder{Search: search, LLM: llm}

	dishes, err := finder.FindDishes(context.Background(), "Rome")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dishes != "carbonara, supplì, maritozzo" {
		t.Fatalf("dishes = %q, want trimmed model output", dishes)
	}

	if len(search.queries) != 1 {
		t.Fatalf("search calls = %d, want 1", len(search.queries))
	}
	wantQuery := "most famous 15 traditional local dishes, food, and desserts in Rome"
	if search.queries[0] != wantQuery {
		t.Fatalf("search query = %q, want %q", search.queries[0], wantQuery)
	}

	if len(llm.prompts) != 1 {
		t.Fatalf("llm calls = %d, want 1", len(llm.prompts))
	}
	if !strings.Contains(llm.prompts[0], "Return ONLY a comma-separated list") {
		t.Fatalf("extraction prompt missing instruction: %q", llm.prompts[0])
	}
	if !strings.Contains(llm.prompts[0], search.result) {
		t.Fatal("extraction prompt does not include the search results")
	}
}

func TestFindDishesSearchFailure(t *testing.T) {
	search := &fakeSearcher{err: errors.New("rate limited")}
	llm := &fakeCompleter{response: "unused"}
	finder := &DishFinder{Search: search, LLM: llm}

	_, err := finder.FindDishes(context.Background(), "Rome")

	var up *UpstreamError
	if !errors.As(err, &up) {
		t.Fatalf("error = %v, want UpstreamError", err)
	}
	if up.Message != "Dish extraction failed: rate limited" {
		t.Fatalf("message = %q", up.Message)
	}
	if len(llm.prompts) != 0 {
		t.Fatal("model should not be called when search fails")
	}
}

func TestFindDishesModelFailure(t *testing.T) {
	search := &fakeSearcher{result: "some text"}
	llm := &fakeCompleter{err: errors.New("context length exceeded")}
	finder := &DishFinder{Search: search, LLM: llm}

	_, err := finder.FindDishes(context.Background(), "Rome")

	var up *UpstreamError
	if !errors.As(err, &up) {
		t.Fatalf("error = %v, want UpstreamError", err)
	}
	if up.Message != "Dish extraction failed: context length exceeded" {
		t.Fatalf("message = %q", up.Message)
	}
}

func TestFindDishesCacheHit(t *testing.T) {
	search := &fakeSearcher{result: "unused"}
	llm := &fakeCompleter{response: "unused"}
	cache := &fakeDishCache{entries: map[string]string{"Rome": "carbonara, supplì"}}
	finder := &DishFinder{Search: search, LLM: llm, Cache: cache}

	dishes, err := finder.FindDishes(context.Background(), "Rome")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dishes != "carbonara, supplì" {
		t.Fatalf("dishes = %q", dishes)
	}
	if len(search.queries) != 0 || len(llm.prompts) != 0 {
		t.Fatal("cache hit should skip search and extraction")
	}
}

func TestFindDishesCacheWrite(t *testing.T) {
	search := &fakeSearcher{result: "text about Lisbon"}
	llm := &fakeCompleter{response: "pastel de nata, bacalhau"}
	cache := &fakeDishCache{}
	finder := &DishFinder{Search: search, LLM: llm, Cache: cache}

	if _, err := finder.FindDishes(context.Background(), "Lisbon"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.puts != 1 {
		t.Fatalf("cache writes = %d, want 1", cache.puts)
	}
	if cache.entries["Lisbon"] != "pastel de nata, bacalhau" {
		t.Fatalf("cached value = %q", cache.entries["Lisbon"])
	}
}
