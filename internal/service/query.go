package service

import (
	"fmt"

	"github.com/windoze95/saltybytes-picks/internal/models"
	"github.com/windoze95/saltybytes-picks/internal/search"
)

// City is appended to every query.
const City = "Bangalore"

// lighterCalorieLimit is the highest target that uses the lighter dishes.
const lighterCalorieLimit = 450

var lighterDishes = []string{
	"grilled chicken salad",
	"paneer tikka bowl",
	"steamed fish with veggies",
	"dal khichdi",
	"clear vegetable soup",
}

var proteinDishes = []string{
	"grilled chicken rice bowl",
	"paneer protein bowl",
	"tandoori chicken with salad",
	"egg bhurji with roti",
	"fish curry with brown rice",
}

// BuildQueries returns one query per dish and marketplace, dish-major. The
// order matters because callers only search a prefix of the list.
func BuildQueries(calories int, taste models.Taste) []string {
	dishes := proteinDishes
	if calories <= lighterCalorieLimit {
		dishes = lighterDishes
	}
	boost := tasteBoost(taste)

	queries := make([]string, 0, len(dishes)*len(search.Marketplaces))
	for _, dish := range dishes {
		for _, site := range search.Marketplaces {
			queries = append(queries, fmt.Sprintf("%s %s site:%s %s", dish, boost, site, City))
		}
	}
	return queries
}

func tasteBoost(taste models.Taste) string {
	switch taste {
	case models.TasteTasty:
		return "tasty"
	case models.TasteHealthy:
		return "healthy"
	default:
		return "balanced"
	}
}
