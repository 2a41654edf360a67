package service

import (
	"reflect"
	"testing"

	"github.com/windoze95/saltybytes-picks/internal/config"
	"github.com/windoze95/saltybytes-picks/internal/models"
)

func TestScore_GrilledPaneerTikkaSalad(t *testing.T) {
	s := NewScorer(nil)
	score, reasons := s.Score("Grilled Paneer Tikka Salad", models.TasteTasty)
	if score != 5 {
		t.Errorf("score = %d, want 5", score)
	}
	want := []string{"has salad", "has grilled"}
	if !reflect.DeepEqual(reasons, want) {
		t.Errorf("reasons = %v, want %v", reasons, want)
	}
}

func TestScore_Negative(t *testing.T) {
	s := NewScorer(nil)
	score, reasons := s.Score("Butter Chicken Biryani with Cheese", models.TasteHealthy)
	// -2 butter, -2 cheese, -2 biryani, +1 healthy
	if score != -5 {
		t.Errorf("score = %d, want -5", score)
	}
	want := []string{"avoids butter", "avoids cheese", "avoids biryani"}
	if !reflect.DeepEqual(reasons, want) {
		t.Errorf("reasons = %v, want %v", reasons, want)
	}
}

func TestScore_TasteBonuses(t *testing.T) {
	s := NewScorer(nil)
	title := "Masala Grill Platter"

	tasty, _ := s.Score(title, models.TasteTasty)
	balanced, _ := s.Score(title, models.TasteBalanced)
	healthy, _ := s.Score(title, models.TasteHealthy)

	if tasty != 2 || balanced != 2 {
		t.Errorf("tasty/balanced = %d/%d, want 2/2", tasty, balanced)
	}
	if healthy != 1 {
		t.Errorf("healthy = %d, want 1", healthy)
	}
}

func TestScore_NoMatches(t *testing.T) {
	s := NewScorer(nil)
	score, reasons := s.Score("Chef's Special", models.TasteBalanced)
	if score != 0 || len(reasons) != 0 {
		t.Errorf("Score() = %d %v, want 0 []", score, reasons)
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := NewScorer(nil)
	a, ra := s.Score("Steamed Dal Soup Bowl", models.TasteBalanced)
	b, rb := s.Score("Steamed Dal Soup Bowl", models.TasteBalanced)
	if a != b || !reflect.DeepEqual(ra, rb) {
		t.Errorf("Score() not deterministic: %d %v vs %d %v", a, ra, b, rb)
	}
}

func TestScore_DuplicateReasonsKept(t *testing.T) {
	s := NewScorer(&config.Scoring{
		Positive:       []string{"bowl", "bowl"},
		PositiveWeight: 2,
	})
	score, reasons := s.Score("Power Bowl", models.TasteHealthy)
	if score != 4 {
		t.Errorf("score = %d, want 4", score)
	}
	if len(reasons) != 2 {
		t.Errorf("reasons = %v, want two entries", reasons)
	}
}

func TestScore_CustomWeights(t *testing.T) {
	cfg := config.DefaultScoring()
	cfg.PositiveWeight = 5
	cfg.FlavorWeight = 0
	s := NewScorer(cfg)
	score, _ := s.Score("Tikka Salad", models.TasteTasty)
	if score != 5 {
		t.Errorf("score = %d, want 5", score)
	}
}

func TestScore_ConfiguredVocabularyIgnoresCase(t *testing.T) {
	cfg, err := config.ParseScoring([]byte("positive: [\" Quinoa \"]\nhealthy_bonus: 0\n"))
	if err != nil {
		t.Fatalf("ParseScoring() error: %v", err)
	}
	s := NewScorer(cfg)

	score, reasons := s.Score("QUINOA Power Bowl", models.TasteHealthy)
	if score != 2 {
		t.Errorf("score = %d, want 2", score)
	}
	if want := []string{"has quinoa"}; !reflect.DeepEqual(reasons, want) {
		t.Errorf("reasons = %v, want %v", reasons, want)
	}
}
