package testutil

import (
	"context"
	"fmt"

	"github.com/windoze95/saltybytes-picks/internal/search"
)

// TestResults returns a small set of provider items: two marketplace
// listings, one off-domain page and one item without a link.
func TestResults() []search.Result {
	return []search.Result{
		{Title: "Grilled Paneer Tikka Salad", Link: "https://www.swiggy.com/restaurants/fit-bowl-123", Snippet: "Order online"},
		{Title: "Butter Chicken Biryani", Link: "https://www.zomato.com/bangalore/biryani-house/order", Snippet: "Order now"},
		{Title: "Best salads in town", Link: "https://blog.example.com/salads", Snippet: "A blog"},
		{Title: "No link here", Link: "", Snippet: ""},
	}
}

// ResultsByQuery returns a SearchFunc that answers from a map keyed by
// query. Unknown queries return no items.
func ResultsByQuery(m map[string][]search.Result) func(ctx context.Context, query string) ([]search.Result, error) {
	return func(ctx context.Context, query string) ([]search.Result, error) {
		return m[query], nil
	}
}

// FailingSearch returns a SearchFunc that always fails with a provider error.
func FailingSearch(status int) func(ctx context.Context, query string) ([]search.Result, error) {
	return func(ctx context.Context, query string) ([]search.Result, error) {
		return nil, &search.ProviderError{StatusCode: status, Body: fmt.Sprintf("status %d", status)}
	}
}
