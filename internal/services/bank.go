package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rideon-ev/compatquiz/internal/models"
)

// Bank is the fixed, ordered question catalog the engine walks. Order defines
// both display and navigation sequence. The scoring weight table is built
// once at construction and read-only afterwards.
type Bank struct {
	questions []models.Question
	byID      map[string]int
	weights   map[string]models.QuestionWeightInfo
}

// NewBank validates the catalog invariants: unique ids, a welcome question
// first, a results sentinel last.
func NewBank(questions []models.Question) (*Bank, error) {
	if len(questions) < 2 {
		return nil, errors.New("bank needs at least a welcome and a results question")
	}
	if questions[0].Type != models.QuestionWelcome {
		return nil, errors.New("first question must be the welcome screen")
	}
	if questions[len(questions)-1].Type != models.QuestionResults {
		return nil, errors.New("last question must be the results screen")
	}
	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("question at index %d has no id", i)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		byID[q.ID] = i
	}
	b := &Bank{questions: questions, byID: byID}
	b.weights = buildWeights(questions)
	return b, nil
}

// buildWeights precomputes QuestionWeightInfo for every scored question.
// Welcome/results categories and weightless questions are excluded. The
// multi-choice denominator is the sum of the top MaxSelections option
// scores, so extra options never inflate it.
func buildWeights(questions []models.Question) map[string]models.QuestionWeightInfo {
	weights := make(map[string]models.QuestionWeightInfo)
	for _, q := range questions {
		if q.Weight == 0 || q.Category == models.CategoryWelcome || q.Category == models.CategoryResults {
			continue
		}
		maxScore := 100.0
		if q.Type == models.QuestionMultiChoice {
			scores := make([]float64, 0, len(q.Options))
			for _, opt := range q.Options {
				scores = append(scores, opt.Score)
			}
			sort.Sort(sort.Reverse(sort.Float64Slice(scores)))
			limit := q.MaxSelections
			if limit <= 0 || limit > len(scores) {
				limit = len(scores)
			}
			maxScore = 0
			for _, s := range scores[:limit] {
				maxScore += s
			}
		}
		weights[q.ID] = models.QuestionWeightInfo{
			Category: q.Category,
			Weight:   q.Weight,
			MaxScore: maxScore,
		}
	}
	return weights
}

// Len returns the number of questions, results sentinel included.
func (b *Bank) Len() int { return len(b.questions) }

// Question returns the question at index i.
func (b *Bank) Question(i int) models.Question { return b.questions[i] }

// Find looks a question up by id.
func (b *Bank) Find(id string) (models.Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return models.Question{}, false
	}
	return b.questions[i], true
}

// Weights exposes the precomputed scoring table.
func (b *Bank) Weights() map[string]models.QuestionWeightInfo { return b.weights }
