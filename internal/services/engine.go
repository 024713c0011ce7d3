package services

import (
	"encoding/json"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/rideon-ev/compatquiz/internal/models"
	"github.com/rideon-ev/compatquiz/internal/storage"
)

// Engine owns the quiz session: the answer map, the navigation cursor, and
// the computed results. All mutations go through UpdateAnswer and the
// navigation methods; invalid requests are ignored silently and callers
// consult CanProceedToNext/CanGoBack to learn why. The engine is built for
// single-threaded, callback-driven use and takes no locks.
type Engine struct {
	bank  *Bank
	store storage.Store

	scoring   ScoringConfig
	recommend RecommendConfig
	savings   SavingsConfig

	state   models.QuizState
	results *models.QuizResults

	newSessionID func() string
}

// NewEngine builds an engine over the bank and store. A previously persisted
// session resumes from its snapshot; corrupt or missing snapshots start
// fresh. Store failures never surface to the caller, the in-memory state
// stays authoritative.
func NewEngine(bank *Bank, store storage.Store) *Engine {
	e := &Engine{
		bank:         bank,
		store:        store,
		scoring:      DefaultScoringConfig(),
		recommend:    DefaultRecommendConfig(),
		savings:      DefaultSavingsConfig(),
		newSessionID: uuid.NewString,
	}
	e.state = e.loadState()
	e.results = e.loadResults()
	return e
}

func (e *Engine) freshState() models.QuizState {
	return models.QuizState{
		SessionID: e.newSessionID(),
		Answers:   map[string]models.Answer{},
	}
}

func (e *Engine) loadState() models.QuizState {
	raw, ok, err := e.store.Load(storage.StateKey)
	if err != nil {
		log.Printf("quiz engine: load state: %v", err)
		return e.freshState()
	}
	if !ok {
		return e.freshState()
	}
	var st models.QuizState
	if err := json.Unmarshal(raw, &st); err != nil {
		log.Printf("quiz engine: corrupt state snapshot, starting fresh: %v", err)
		return e.freshState()
	}
	if st.CurrentQuestionIndex < 0 || st.CurrentQuestionIndex >= e.bank.Len() {
		log.Printf("quiz engine: snapshot index %d out of range, starting fresh", st.CurrentQuestionIndex)
		return e.freshState()
	}
	if st.Answers == nil {
		st.Answers = map[string]models.Answer{}
	}
	if st.SessionID == "" {
		st.SessionID = e.newSessionID()
	}
	return st
}

func (e *Engine) loadResults() *models.QuizResults {
	raw, ok, err := e.store.Load(storage.ResultsKey)
	if err != nil {
		log.Printf("quiz engine: load results: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var res models.QuizResults
	if err := json.Unmarshal(raw, &res); err != nil {
		log.Printf("quiz engine: corrupt results snapshot, discarding: %v", err)
		return nil
	}
	return &res
}

func (e *Engine) persistState() {
	raw, err := json.Marshal(e.state)
	if err != nil {
		log.Printf("quiz engine: encode state: %v", err)
		return
	}
	if err := e.store.Save(storage.StateKey, raw); err != nil {
		log.Printf("quiz engine: persist state: %v", err)
	}
}

func (e *Engine) persistResults() {
	if e.results == nil {
		return
	}
	raw, err := json.Marshal(e.results)
	if err != nil {
		log.Printf("quiz engine: encode results: %v", err)
		return
	}
	if err := e.store.Save(storage.ResultsKey, raw); err != nil {
		log.Printf("quiz engine: persist results: %v", err)
	}
}

// SessionID identifies the persisted session.
func (e *Engine) SessionID() string { return e.state.SessionID }

// CurrentQuestion returns the question under the cursor.
func (e *Engine) CurrentQuestion() models.Question {
	return e.bank.Question(e.state.CurrentQuestionIndex)
}

// CurrentQuestionIndex returns the cursor position.
func (e *Engine) CurrentQuestionIndex() int { return e.state.CurrentQuestionIndex }

// Answer returns the stored answer for a question id.
func (e *Engine) Answer(questionID string) (models.Answer, bool) {
	a, ok := e.state.Answers[questionID]
	return a, ok
}

// CurrentAnswer returns the stored answer for the active question.
func (e *Engine) CurrentAnswer() (models.Answer, bool) {
	return e.Answer(e.CurrentQuestion().ID)
}

// UserName returns the name captured by the user-name question.
func (e *Engine) UserName() string { return e.state.UserName }

// IsComplete reports whether the cursor sits on the results screen.
func (e *Engine) IsComplete() bool { return e.state.IsComplete }

// Results returns the computed results, or nil before completion.
func (e *Engine) Results() *models.QuizResults { return e.results }

// UpdateAnswer stores an answer for the active question. The active question
// supplies the id; callers cannot target arbitrary questions. Answering the
// user-name question also updates the session's display name.
func (e *Engine) UpdateAnswer(answer models.Answer) {
	q := e.CurrentQuestion()
	e.state.Answers[q.ID] = answer
	if q.ID == UserNameQuestionID && answer.Kind == models.AnswerString {
		e.state.UserName = strings.TrimSpace(answer.Text)
	}
	e.persistState()
}

// isCurrentQuestionAnswered implements the validity rule: a required
// question needs a defined, non-empty answer; others are always valid.
func (e *Engine) isCurrentQuestionAnswered() bool {
	q := e.CurrentQuestion()
	if !q.Required {
		return true
	}
	a, ok := e.state.Answers[q.ID]
	if !ok {
		return false
	}
	return !a.IsEmpty()
}

// CanProceedToNext reports whether Next would advance.
func (e *Engine) CanProceedToNext() bool {
	if e.state.CurrentQuestionIndex >= e.bank.Len()-1 {
		return false
	}
	return e.isCurrentQuestionAnswered()
}

// CanGoBack reports whether Previous would move.
func (e *Engine) CanGoBack() bool {
	return e.state.CurrentQuestionIndex > 0
}

// Next advances the cursor by one. The advance that lands on the results
// screen computes and persists the results first, so the score always
// reflects the answer map as of this transition.
func (e *Engine) Next() {
	if !e.CanProceedToNext() {
		return
	}
	if e.state.CurrentQuestionIndex == e.bank.Len()-2 {
		e.computeResults()
	}
	e.state.CurrentQuestionIndex++
	e.state.IsComplete = e.state.CurrentQuestionIndex == e.bank.Len()-1
	e.persistState()
}

// Previous moves back one step. It never re-triggers scoring.
func (e *Engine) Previous() {
	if !e.CanGoBack() {
		return
	}
	e.state.CurrentQuestionIndex--
	e.state.IsComplete = false
	e.persistState()
}

// JumpToQuestion moves the cursor to an absolute index. Out-of-range
// requests are ignored.
func (e *Engine) JumpToQuestion(index int) {
	if index < 0 || index >= e.bank.Len() {
		return
	}
	e.state.CurrentQuestionIndex = index
	e.state.IsComplete = index == e.bank.Len()-1
	e.persistState()
}

// Reset returns to the first question, clears answers, name, and results,
// and removes both persisted snapshots.
func (e *Engine) Reset() {
	e.state = e.freshState()
	e.results = nil
	if err := e.store.Remove(storage.StateKey); err != nil {
		log.Printf("quiz engine: clear state snapshot: %v", err)
	}
	if err := e.store.Remove(storage.ResultsKey); err != nil {
		log.Printf("quiz engine: clear results snapshot: %v", err)
	}
}

// Progress derives the navigation progress record. The percentage is
// computed from the cursor, never stored.
func (e *Engine) Progress() models.Progress {
	n := e.bank.Len()
	pct := 0
	if n > 1 {
		pct = int(math.Round(float64(e.state.CurrentQuestionIndex) / float64(n-1) * 100))
	}
	return models.Progress{
		CurrentQuestionIndex: e.state.CurrentQuestionIndex,
		TotalQuestions:       n,
		Percentage:           pct,
		IsComplete:           e.state.IsComplete,
	}
}

// computeResults runs the scoring engine, resolver, and savings estimator
// over the current answer map and persists the outcome. It completes before
// the caller commits the index move.
func (e *Engine) computeResults() {
	scores := CalculateCategoryScores(e.state.Answers, e.bank, e.scoring)
	rec := ResolveRecommendation(scores, e.recommend)

	var commute string
	if a, ok := e.state.Answers[CommuteDistanceQuestionID]; ok && a.Kind == models.AnswerString {
		commute = a.Text
	}
	est := EstimateSavings(commute, e.savings)

	var total float64
	for _, s := range scores {
		total += s.Score
	}
	e.results = &models.QuizResults{
		OverallScore:      int(math.Round(total)),
		OverallPercentage: rec.CompatibilityScore,
		CategoryScores:    scores,
		Recommendation:    rec,
		SavingsEstimates:  est,
	}
	e.persistResults()
}
