package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scoring holds the keyword vocabulary and weights used to rank dish titles.
// These are hand-tuned heuristics, not invariants.
type Scoring struct {
	Positive       []string `yaml:"positive"`
	Negative       []string `yaml:"negative"`
	Flavor         []string `yaml:"flavor"`
	PositiveWeight int      `yaml:"positive_weight"`
	NegativeWeight int      `yaml:"negative_weight"`
	FlavorWeight   int      `yaml:"flavor_weight"`
	HealthyBonus   int      `yaml:"healthy_bonus"`
}

// DefaultScoring returns the built-in vocabulary.
func DefaultScoring() *Scoring {
	return &Scoring{
		Positive: []string{
			"salad", "grilled", "bowl", "protein", "steamed", "lean",
			"soup", "dal", "tandoori", "sprouts", "millet", "oats",
		},
		Negative: []string{
			"fried", "butter", "cream", "cheese", "biryani",
			"burger", "pizza", "fries", "sweet",
		},
		Flavor:         []string{"tikka", "peri", "tangy", "masala", "grill"},
		PositiveWeight: 2,
		NegativeWeight: 2,
		FlavorWeight:   1,
		HealthyBonus:   1,
	}
}

// LoadScoring reads a YAML scoring file. Lists or weights left out of the
// file keep their default values.
func LoadScoring(path string) (*Scoring, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoring file: %w", err)
	}
	return ParseScoring(data)
}

// scoringFile mirrors Scoring with pointer weights so an explicit 0 in the
// file is kept.
type scoringFile struct {
	Positive       []string `yaml:"positive"`
	Negative       []string `yaml:"negative"`
	Flavor         []string `yaml:"flavor"`
	PositiveWeight *int     `yaml:"positive_weight"`
	NegativeWeight *int     `yaml:"negative_weight"`
	FlavorWeight   *int     `yaml:"flavor_weight"`
	HealthyBonus   *int     `yaml:"healthy_bonus"`
}

// ParseScoring decodes YAML scoring data on top of DefaultScoring. Tokens
// are trimmed and lower-cased; blank tokens are dropped.
func ParseScoring(data []byte) (*Scoring, error) {
	scoring := DefaultScoring()
	var parsed scoringFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse scoring YAML: %w", err)
	}

	if parsed.Positive != nil {
		scoring.Positive = normalizeTokens(parsed.Positive)
	}
	if parsed.Negative != nil {
		scoring.Negative = normalizeTokens(parsed.Negative)
	}
	if parsed.Flavor != nil {
		scoring.Flavor = normalizeTokens(parsed.Flavor)
	}
	if parsed.PositiveWeight != nil {
		scoring.PositiveWeight = *parsed.PositiveWeight
	}
	if parsed.NegativeWeight != nil {
		scoring.NegativeWeight = *parsed.NegativeWeight
	}
	if parsed.FlavorWeight != nil {
		scoring.FlavorWeight = *parsed.FlavorWeight
	}
	if parsed.HealthyBonus != nil {
		scoring.HealthyBonus = *parsed.HealthyBonus
	}
	return scoring, nil
}

func normalizeTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}
