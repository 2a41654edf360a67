package search

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	goaway "github.com/TwiN/go-away"
	"github.com/asaskevich/govalidator"
	"github.com/windoze95/saltybytes-picks/internal/logger"
	"go.uber.org/zap"
)

// MaxQueries caps the provider calls made for one request.
const MaxQueries = 6

// ErrNotConfigured is returned by Gateway.Search when no provider is set.
var ErrNotConfigured = errors.New("search provider not configured")

// Marketplaces are the delivery platforms results are restricted to, in
// query order.
var Marketplaces = []string{"swiggy.com", "zomato.com"}

// Status tags how a batch search was resolved.
type Status int

const (
	// StatusNotConfigured means no provider is available; no calls were made.
	StatusNotConfigured Status = iota
	// StatusSearched means the provider was called for every attempted query.
	StatusSearched
)

func (s Status) String() string {
	switch s {
	case StatusNotConfigured:
		return "not_configured"
	case StatusSearched:
		return "searched"
	default:
		return "unknown"
	}
}

// QueryResult is the outcome of one query. A failed query carries Err and
// no items.
type QueryResult struct {
	Query string
	Items []Result
	Err   error
}

// Outcome is the result of SearchAll.
type Outcome struct {
	Status    Status
	Attempted []string
	Results   []QueryResult
}

// Merged flattens the per-query items in query order.
func (o Outcome) Merged() []Result {
	var merged []Result
	for _, r := range o.Results {
		merged = append(merged, r.Items...)
	}
	return merged
}

// Failures counts the queries that errored.
func (o Outcome) Failures() int {
	n := 0
	for _, r := range o.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Gateway restricts provider results to the marketplaces and isolates
// per-query failures.
type Gateway struct {
	provider     Provider
	queryTimeout time.Duration
	profanity    *goaway.ProfanityDetector
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithQueryTimeout bounds each provider call. Zero disables the extra bound.
func WithQueryTimeout(d time.Duration) GatewayOption {
	return func(g *Gateway) {
		g.queryTimeout = d
	}
}

// WithContentFilter drops results whose titles contain profanity.
func WithContentFilter(enabled bool) GatewayOption {
	return func(g *Gateway) {
		if enabled {
			g.profanity = goaway.NewProfanityDetector().WithSanitizeLeetSpeak(true).WithSanitizeSpecialCharacters(true).WithSanitizeAccents(false)
		} else {
			g.profanity = nil
		}
	}
}

// NewGateway wraps a provider. A nil provider yields a gateway that reports
// StatusNotConfigured.
func NewGateway(provider Provider, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		provider:     provider,
		queryTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Configured reports whether a provider is available.
func (g *Gateway) Configured() bool {
	return g.provider != nil
}

// Search runs one query and returns the marketplace results.
func (g *Gateway) Search(ctx context.Context, query string) ([]Result, error) {
	if !g.Configured() {
		return nil, ErrNotConfigured
	}
	if g.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.queryTimeout)
		defer cancel()
	}

	items, err := g.provider.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	filtered := make([]Result, 0, len(items))
	for _, item := range items {
		if !IsMarketplaceLink(item.Link) {
			continue
		}
		if g.profanity != nil && g.profanity.IsProfane(item.Title) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

// SearchAll runs up to MaxQueries queries sequentially. A failing query
// contributes no items and never stops the batch.
func (g *Gateway) SearchAll(ctx context.Context, queries []string) Outcome {
	attempted := queries
	if len(attempted) > MaxQueries {
		attempted = attempted[:MaxQueries]
	}

	if !g.Configured() {
		return Outcome{Status: StatusNotConfigured, Attempted: attempted}
	}

	results := make([]QueryResult, 0, len(attempted))
	for _, q := range attempted {
		items, err := g.Search(ctx, q)
		if err != nil {
			logger.Get().Warn("search query failed", zap.String("query", q), zap.Error(err))
			results = append(results, QueryResult{Query: q, Err: err})
			continue
		}
		results = append(results, QueryResult{Query: q, Items: items})
	}

	return Outcome{Status: StatusSearched, Attempted: attempted, Results: results}
}

// IsMarketplaceLink reports whether link is an absolute URL on one of the
// Marketplaces domains or their subdomains.
func IsMarketplaceLink(link string) bool {
	link = strings.TrimSpace(link)
	if link == "" || !govalidator.IsRequestURL(link) {
		return false
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, domain := range Marketplaces {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
