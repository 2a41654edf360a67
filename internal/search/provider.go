package search

import (
	"context"
	"fmt"
)

// Provider runs a single web search query.
type Provider interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// Result is a single item returned by a search provider.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// ProviderError is returned when the provider answers with a non-success status.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("search provider returned status %d: %s", e.StatusCode, e.Body)
}
