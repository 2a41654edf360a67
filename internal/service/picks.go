package service

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/windoze95/saltybytes-picks/internal/models"
	"github.com/windoze95/saltybytes-picks/internal/search"
)

const (
	// MaxPicks bounds the picks in one payload.
	MaxPicks = 5

	// maxReasons bounds the justifications quoted in a pick's reason.
	maxReasons = 3

	// FallbackSource tags picks built without provider results.
	FallbackSource = "fallback-search"

	fallbackSearchURL = "https://www.google.com/search?q="
	noReasonPhrase    = "overall balance"
)

// fallbackPicks turns the first MaxPicks queries into generic web-search links.
func fallbackPicks(queries []string, target models.Target) []models.Pick {
	if len(queries) > MaxPicks {
		queries = queries[:MaxPicks]
	}
	picks := make([]models.Pick, 0, len(queries))
	for _, q := range queries {
		picks = append(picks, models.Pick{
			Name:   displayLabel(q),
			Link:   fallbackSearchURL + url.QueryEscape(q),
			Reason: fmt.Sprintf("Suggested search for ~%d kcal with a %s preference", target.Calories, target.Taste),
			Source: FallbackSource,
		})
	}
	return picks
}

// displayLabel strips the site restriction and city from a query.
func displayLabel(query string) string {
	fields := strings.Fields(query)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f, "site:") || f == City {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// dedupeByLink keeps the first result seen for each link.
func dedupeByLink(results []search.Result) []search.Result {
	seen := make(map[string]struct{}, len(results))
	unique := make([]search.Result, 0, len(results))
	for _, r := range results {
		if _, ok := seen[r.Link]; ok {
			continue
		}
		seen[r.Link] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// rank scores results and orders them by score, highest first. Equal
// scores keep their input order.
func rank(scorer *Scorer, results []search.Result, taste models.Taste) []models.ScoredResult {
	scored := make([]models.ScoredResult, 0, len(results))
	for _, r := range results {
		score, reasons := scorer.Score(r.Title, taste)
		scored = append(scored, models.ScoredResult{
			Name:    r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
			Score:   score,
			Reasons: reasons,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// scoredPicks dedupes, ranks and truncates provider results.
func scoredPicks(scorer *Scorer, results []search.Result, target models.Target) []models.Pick {
	ranked := rank(scorer, dedupeByLink(results), target.Taste)
	if len(ranked) > MaxPicks {
		ranked = ranked[:MaxPicks]
	}

	picks := make([]models.Pick, 0, len(ranked))
	for _, r := range ranked {
		why := noReasonPhrase
		if len(r.Reasons) > 0 {
			reasons := r.Reasons
			if len(reasons) > maxReasons {
				reasons = reasons[:maxReasons]
			}
			why = strings.Join(reasons, ", ")
		}
		picks = append(picks, models.Pick{
			Name:   r.Name,
			Link:   r.Link,
			Reason: fmt.Sprintf("%s; fits ~%d kcal target", why, target.Calories),
			Source: fmt.Sprintf("google-cse (%s activity)", target.Activity),
		})
	}
	return picks
}
