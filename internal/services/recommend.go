package services

import (
	"math"

	"github.com/rideon-ev/compatquiz/internal/models"
)

// ScooterModels is the static catalog, in display order. The first entry is
// the top-tier model, the second the entry model, the third the mid-tier.
var ScooterModels = []models.ScooterModel{
	{
		ID:           "ather-450x",
		Name:         "Ather 450X",
		Description:  "The high-performance scooter for tech enthusiasts and urban riders.",
		Price:        150000,
		RangeKm:      116,
		TopSpeedKmh:  90,
		ChargingTime: 4.5,
		Features: []string{
			"7\" touchscreen dashboard",
			"4G connectivity",
			"Turn-by-turn navigation",
			"Auto-hold & reverse assist",
			"Theft & crash detection",
		},
	},
	{
		ID:           "ather-450s",
		Name:         "Ather 450S",
		Description:  "The everyday commuter with best-in-class features at an affordable price.",
		Price:        128000,
		RangeKm:      100,
		TopSpeedKmh:  85,
		ChargingTime: 5,
		Features: []string{
			"Monochrome display",
			"Bluetooth connectivity",
			"Turn-by-turn navigation via app",
			"Lightweight design",
			"Fast charging capability",
		},
	},
	{
		ID:           "ather-450-plus",
		Name:         "Ather 450 Plus",
		Description:  "The perfect balance of performance and value.",
		Price:        140000,
		RangeKm:      108,
		TopSpeedKmh:  80,
		ChargingTime: 5.5,
		Features: []string{
			"Digital display",
			"Bluetooth connectivity",
			"Multiple ride modes",
			"Reverse parking assist",
			"OTA updates",
		},
	},
}

const (
	topTierModelID = "ather-450x"
	entryModelID   = "ather-450s"
	midTierModelID = "ather-450-plus"
)

// RecommendConfig names the resolver's tuning constants.
type RecommendConfig struct {
	// OverallFloor is the minimum overall compatibility percentage shown.
	OverallFloor float64
	// PerformanceBar: a riding percentage above it steers to the top tier.
	PerformanceBar float64
	// BudgetBar: a budget percentage above it also steers to the top tier.
	BudgetBar float64
	// CasualBar: riding and budget both below it steer to the entry model.
	CasualBar float64
	// AbsentCategoryDefault substitutes for a missing riding or budget score.
	AbsentCategoryDefault float64
}

func DefaultRecommendConfig() RecommendConfig {
	return RecommendConfig{
		OverallFloor:          80,
		PerformanceBar:        55,
		BudgetBar:             45,
		CasualBar:             35,
		AbsentCategoryDefault: 50,
	}
}

// ResolveRecommendation picks the best-match model from the category scores.
// Deterministic: the same scores always produce the same recommendation.
// The threshold checks run in declared order; the top-tier rule wins ties.
func ResolveRecommendation(scores []models.CategoryScore, cfg RecommendConfig) models.ScooterRecommendation {
	overall := cfg.OverallFloor
	if len(scores) > 0 {
		var sum float64
		for _, s := range scores {
			sum += s.Percentage
		}
		if mean := sum / float64(len(scores)); mean > overall {
			overall = mean
		}
	}

	riding := categoryPercentage(scores, models.CategoryRiding, cfg.AbsentCategoryDefault)
	budget := categoryPercentage(scores, models.CategoryBudget, cfg.AbsentCategoryDefault)

	bestMatchID := midTierModelID
	switch {
	case riding > cfg.PerformanceBar || budget > cfg.BudgetBar:
		bestMatchID = topTierModelID
	case riding < cfg.CasualBar && budget < cfg.CasualBar:
		bestMatchID = entryModelID
	}

	bestMatch := ScooterModels[0]
	alternatives := make([]models.ScooterModel, 0, len(ScooterModels)-1)
	for _, m := range ScooterModels {
		if m.ID == bestMatchID {
			bestMatch = m
		} else {
			alternatives = append(alternatives, m)
		}
	}

	return models.ScooterRecommendation{
		BestMatch:          bestMatch,
		AlternativeModels:  alternatives,
		CompatibilityScore: int(math.Round(overall)),
	}
}

func categoryPercentage(scores []models.CategoryScore, c models.Category, fallback float64) float64 {
	for _, s := range scores {
		if s.Category == c {
			return s.Percentage
		}
	}
	return fallback
}
