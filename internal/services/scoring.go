package services

import (
	"strconv"

	"github.com/rideon-ev/compatquiz/internal/models"
)

// ScoringConfig names the tuning constants the product team bakes into the
// displayed scores. Defaults match the shipped site; adjust here, not inline.
type ScoringConfig struct {
	// FavorableBoost multiplies every weighted contribution to keep results
	// encouraging.
	FavorableBoost float64
	// CategoryFloor is the minimum percentage a category ever displays.
	CategoryFloor float64
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{FavorableBoost: 1.2, CategoryFloor: 60}
}

// CalculateCategoryScores aggregates the answer map into one CategoryScore
// per scored category. Categories with no answered questions still appear,
// carrying the floor percentage and a zero denominator. Answers whose
// question id is missing from the weight table are skipped.
func CalculateCategoryScores(answers map[string]models.Answer, bank *Bank, cfg ScoringConfig) []models.CategoryScore {
	type acc struct{ score, maxScore float64 }
	totals := make(map[models.Category]*acc)
	for _, c := range models.ScoredCategories() {
		totals[c] = &acc{}
	}

	weights := bank.Weights()
	for questionID, answer := range answers {
		info, ok := weights[questionID]
		if !ok {
			continue
		}
		t, ok := totals[info.Category]
		if !ok {
			continue
		}
		t.maxScore += info.MaxScore

		q, _ := bank.Find(questionID)
		raw := rawAnswerValue(q, answer)
		t.score += raw * info.Weight * cfg.FavorableBoost
	}

	out := make([]models.CategoryScore, 0, len(totals))
	for _, c := range models.ScoredCategories() {
		t := totals[c]
		pct := cfg.CategoryFloor
		if t.maxScore > 0 {
			pct = t.score / t.maxScore * 100
			if pct > 100 {
				pct = 100
			}
			if pct < cfg.CategoryFloor {
				pct = cfg.CategoryFloor
			}
		}
		out = append(out, models.CategoryScore{
			Category:   c,
			Score:      t.score,
			MaxScore:   t.maxScore,
			Percentage: pct,
		})
	}
	return out
}

// rawAnswerValue extracts the numeric contribution of one answer. Choice
// answers resolve to the selected option's score; the stored value is a
// descriptive id like "under-5km", so parsing it as a number would zero the
// question. Float parsing remains the fallback for questions without an
// option list.
func rawAnswerValue(q models.Question, a models.Answer) float64 {
	switch a.Kind {
	case models.AnswerNumber:
		return a.Value
	case models.AnswerString:
		return optionScore(q, a.Text)
	case models.AnswerList:
		var sum float64
		for _, v := range a.Selections {
			sum += optionScore(q, v)
		}
		return sum
	default:
		return 0
	}
}

func optionScore(q models.Question, value string) float64 {
	if len(q.Options) == 0 {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return f
	}
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Score
		}
	}
	return 0
}
