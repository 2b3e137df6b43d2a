package ports

import "context"

// Port: free-text web search returning a snippet blob for model consumption.
type WebSearcher interface {
	Search(ctx context.Context, query string) (string, error)
}
