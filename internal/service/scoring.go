package service

import (
	"strings"
	"unicode"

	"github.com/windoze95/saltybytes-picks/internal/config"
	"github.com/windoze95/saltybytes-picks/internal/models"
)

// Scorer ranks dish titles against a keyword vocabulary.
type Scorer struct {
	cfg *config.Scoring
}

// NewScorer creates a Scorer. A nil vocabulary uses config.DefaultScoring.
func NewScorer(cfg *config.Scoring) *Scorer {
	if cfg == nil {
		cfg = config.DefaultScoring()
	}
	return &Scorer{cfg: cfg}
}

// Score returns the relevance score for title and the reasons behind it in
// vocabulary order. Positive and negative terms match as substrings; flavor
// terms match whole words only, so "grill" does not also reward "grilled".
func (s *Scorer) Score(title string, taste models.Taste) (int, []string) {
	lower := strings.ToLower(title)
	score := 0
	reasons := []string{}

	for _, tok := range s.cfg.Positive {
		if strings.Contains(lower, tok) {
			score += s.cfg.PositiveWeight
			reasons = append(reasons, "has "+tok)
		}
	}
	for _, tok := range s.cfg.Negative {
		if strings.Contains(lower, tok) {
			score -= s.cfg.NegativeWeight
			reasons = append(reasons, "avoids "+tok)
		}
	}

	switch taste {
	case models.TasteTasty, models.TasteBalanced:
		words := " " + strings.Join(strings.FieldsFunc(lower, isWordBreak), " ") + " "
		for _, tok := range s.cfg.Flavor {
			if strings.Contains(words, " "+tok+" ") {
				score += s.cfg.FlavorWeight
			}
		}
	case models.TasteHealthy:
		score += s.cfg.HealthyBonus
	}

	return score, reasons
}

func isWordBreak(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
