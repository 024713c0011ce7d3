package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rideon-ev/compatquiz/internal/models"
	"github.com/rideon-ev/compatquiz/internal/storage"
)

// testBank wraps scored questions with the welcome/results sentinels.
func testBank(t *testing.T, scored ...models.Question) *Bank {
	t.Helper()
	qs := []models.Question{{
		ID:       "welcome",
		Type:     models.QuestionWelcome,
		Category: models.CategoryWelcome,
		Title:    "Welcome",
	}}
	qs = append(qs, scored...)
	qs = append(qs, models.Question{
		ID:       "results",
		Type:     models.QuestionResults,
		Category: models.CategoryResults,
		Title:    "Results",
	})
	b, err := NewBank(qs)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	return b
}

func singleChoice(id string, cat models.Category, weight float64, scores ...float64) models.Question {
	q := models.Question{
		ID:       id,
		Type:     models.QuestionSingleChoice,
		Category: cat,
		Title:    id,
		Required: true,
		Weight:   weight,
	}
	for i, s := range scores {
		q.Options = append(q.Options, models.Option{
			ID:    string(rune('a'+i)),
			Label: string(rune('a'+i)),
			Value: "opt-" + string(rune('a'+i)),
			Score: s,
		})
	}
	return q
}

type failingStore struct{}

func (failingStore) Save(string, []byte) error { return errors.New("disk full") }

func (failingStore) Load(string) ([]byte, bool, error) { return nil, false, nil }

func (failingStore) Remove(string) error { return errors.New("disk full") }

func TestNextBlockedUntilAnswered(t *testing.T) {
	bank := testBank(t, singleChoice("q1", models.CategoryCommute, 1, 100))
	e := NewEngine(bank, storage.NewMemoryStore())

	e.Next() // welcome is not required
	if got := e.CurrentQuestionIndex(); got != 1 {
		t.Fatalf("index after welcome = %d, want 1", got)
	}
	if e.CanProceedToNext() {
		t.Fatal("CanProceedToNext true with required question unanswered")
	}
	e.Next()
	if got := e.CurrentQuestionIndex(); got != 1 {
		t.Fatalf("Next moved despite failing validity, index = %d", got)
	}

	e.UpdateAnswer(models.StringAnswer("opt-a"))
	if !e.CanProceedToNext() {
		t.Fatal("CanProceedToNext false after answering")
	}
	e.Next()
	if got := e.CurrentQuestionIndex(); got != 2 {
		t.Fatalf("index after answered Next = %d, want 2", got)
	}
}

func TestPreviousAtStartIsNoop(t *testing.T) {
	bank := testBank(t, singleChoice("q1", models.CategoryCommute, 1, 100))
	e := NewEngine(bank, storage.NewMemoryStore())

	if e.CanGoBack() {
		t.Fatal("CanGoBack true at index 0")
	}
	e.Previous()
	if got := e.CurrentQuestionIndex(); got != 0 {
		t.Fatalf("Previous moved from index 0 to %d", got)
	}
}

func TestEmptyAnswersFailValidity(t *testing.T) {
	name := models.Question{
		ID: "name", Type: models.QuestionTextInput,
		Category: models.CategoryWelcome, Title: "name", Required: true,
	}
	multi := singleChoice("m", models.CategoryRiding, 1, 90, 80)
	multi.Type = models.QuestionMultiChoice
	multi.MaxSelections = 2
	bank := testBank(t, name, multi)
	e := NewEngine(bank, storage.NewMemoryStore())

	e.Next()
	e.UpdateAnswer(models.StringAnswer("   "))
	if e.CanProceedToNext() {
		t.Fatal("whitespace-only answer passed a required text question")
	}
	e.UpdateAnswer(models.StringAnswer("Asha"))
	e.Next()

	e.UpdateAnswer(models.ListAnswer())
	if e.CanProceedToNext() {
		t.Fatal("empty selection passed a required multi-choice question")
	}
}

func TestJumpToQuestionBounds(t *testing.T) {
	bank := testBank(t, singleChoice("q1", models.CategoryCommute, 1, 100))
	e := NewEngine(bank, storage.NewMemoryStore())

	for _, idx := range []int{-1, bank.Len(), bank.Len() + 5} {
		e.JumpToQuestion(idx)
		if got := e.CurrentQuestionIndex(); got != 0 {
			t.Fatalf("JumpToQuestion(%d) moved to %d, want silently ignored", idx, got)
		}
	}

	e.JumpToQuestion(bank.Len() - 1)
	if !e.IsComplete() {
		t.Fatal("jumping to the results index did not mark complete")
	}
	e.JumpToQuestion(1)
	if e.IsComplete() {
		t.Fatal("jumping back did not clear completion")
	}
}

func TestProgressPercentage(t *testing.T) {
	bank := testBank(t,
		singleChoice("q1", models.CategoryCommute, 1, 100),
		singleChoice("q2", models.CategoryBudget, 1, 100),
	) // 4 questions total
	e := NewEngine(bank, storage.NewMemoryStore())

	want := []int{0, 33, 67, 100}
	for i, w := range want {
		e.JumpToQuestion(i)
		p := e.Progress()
		if p.Percentage != w {
			t.Fatalf("percentage at index %d = %d, want %d", i, p.Percentage, w)
		}
		if p.Percentage < 0 || p.Percentage > 100 {
			t.Fatalf("percentage %d out of [0,100]", p.Percentage)
		}
	}
}

func TestUpdateAnswerTargetsCurrentQuestionOnly(t *testing.T) {
	q1 := singleChoice("q1", models.CategoryCommute, 1, 100)
	bank := testBank(t, q1)
	e := NewEngine(bank, storage.NewMemoryStore())

	// Cursor sits on the welcome screen; the answer must land there, the
	// public contract offers no way to address q1.
	e.UpdateAnswer(models.StringAnswer("stray"))
	if _, ok := e.Answer("q1"); ok {
		t.Fatal("answer reached a question other than the current one")
	}
	if a, ok := e.Answer("welcome"); !ok || a.Text != "stray" {
		t.Fatal("answer did not land on the current question")
	}
}

func TestUserNameSync(t *testing.T) {
	e := NewEngine(DefaultBank(), storage.NewMemoryStore())
	e.Next() // to user-name
	e.UpdateAnswer(models.StringAnswer("  Priya  "))
	if got := e.UserName(); got != "Priya" {
		t.Fatalf("UserName = %q, want %q", got, "Priya")
	}
}

func TestScoringRunsOnPenultimateAdvance(t *testing.T) {
	bank := testBank(t, singleChoice("q1", models.CategoryCommute, 1, 100))
	store := storage.NewMemoryStore()
	e := NewEngine(bank, store)

	e.Next()
	e.UpdateAnswer(models.StringAnswer("opt-a"))
	if e.Results() != nil {
		t.Fatal("results computed before the final advance")
	}
	e.Next()

	if !e.IsComplete() {
		t.Fatal("not complete at the results index")
	}
	res := e.Results()
	if res == nil {
		t.Fatal("results not computed by the advance onto the results screen")
	}
	if _, ok, _ := store.Load(storage.ResultsKey); !ok {
		t.Fatal("results not persisted")
	}
}

func TestResetClearsEverything(t *testing.T) {
	bank := testBank(t, singleChoice("q1", models.CategoryCommute, 1, 100))
	store := storage.NewMemoryStore()
	e := NewEngine(bank, store)

	e.Next()
	e.UpdateAnswer(models.StringAnswer("opt-a"))
	e.Next()
	firstSession := e.SessionID()

	e.Reset()
	if got := e.CurrentQuestionIndex(); got != 0 {
		t.Fatalf("index after reset = %d, want 0", got)
	}
	if _, ok := e.Answer("q1"); ok {
		t.Fatal("answers survived reset")
	}
	if e.Results() != nil {
		t.Fatal("results survived reset")
	}
	if e.UserName() != "" {
		t.Fatal("user name survived reset")
	}
	if _, ok, _ := store.Load(storage.StateKey); ok {
		t.Fatal("state snapshot survived reset")
	}
	if _, ok, _ := store.Load(storage.ResultsKey); ok {
		t.Fatal("results snapshot survived reset")
	}
	if e.SessionID() == firstSession {
		t.Fatal("reset reused the old session id")
	}
}

func TestResumeFromSnapshot(t *testing.T) {
	store := storage.NewMemoryStore()
	snap := models.QuizState{
		SessionID:            "session-1",
		CurrentQuestionIndex: 1,
		Answers:              map[string]models.Answer{"q1": models.StringAnswer("opt-a")},
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(storage.StateKey, raw); err != nil {
		t.Fatal(err)
	}

	bank := testBank(t, singleChoice("q1", models.CategoryCommute, 1, 100))
	e := NewEngine(bank, store)
	if got := e.CurrentQuestionIndex(); got != 1 {
		t.Fatalf("resumed index = %d, want 1", got)
	}
	if a, ok := e.Answer("q1"); !ok || a.Text != "opt-a" {
		t.Fatal("resumed session lost its answers")
	}
	if e.SessionID() != "session-1" {
		t.Fatal("resumed session changed id")
	}
}

func TestCorruptSnapshotStartsFresh(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
	}{
		{"not json", []byte("{nope")},
		{"index out of range", []byte(`{"session_id":"s","current_question_index":99,"answers":{}}`)},
	}
	bank := testBank(t, singleChoice("q1", models.CategoryCommute, 1, 100))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			if err := store.Save(storage.StateKey, c.raw); err != nil {
				t.Fatal(err)
			}
			e := NewEngine(bank, store)
			if got := e.CurrentQuestionIndex(); got != 0 {
				t.Fatalf("index = %d, want fresh start at 0", got)
			}
			if _, ok := e.Answer("q1"); ok {
				t.Fatal("corrupt snapshot produced answers")
			}
		})
	}
}

func TestStoreFailuresDoNotBlockNavigation(t *testing.T) {
	bank := testBank(t, singleChoice("q1", models.CategoryCommute, 1, 100))
	e := NewEngine(bank, failingStore{})

	e.Next()
	e.UpdateAnswer(models.StringAnswer("opt-a"))
	e.Next()
	if !e.IsComplete() {
		t.Fatal("persistence failure blocked the state transition")
	}
	if e.Results() == nil {
		t.Fatal("persistence failure suppressed result computation")
	}
	e.Reset()
	if e.CurrentQuestionIndex() != 0 {
		t.Fatal("persistence failure blocked reset")
	}
}

// TestFullRunDefaultBank walks the shipped questionnaire end to end and
// checks the advertised result guarantees.
func TestFullRunDefaultBank(t *testing.T) {
	store := storage.NewMemoryStore()
	e := NewEngine(DefaultBank(), store)

	for !e.IsComplete() {
		q := e.CurrentQuestion()
		switch q.Type {
		case models.QuestionWelcome, models.QuestionResults:
		case models.QuestionTextInput:
			e.UpdateAnswer(models.StringAnswer("Ravi"))
		case models.QuestionSingleChoice:
			e.UpdateAnswer(models.StringAnswer(q.Options[0].Value))
		case models.QuestionMultiChoice:
			vals := []string{}
			for i := 0; i < q.MaxSelections && i < len(q.Options); i++ {
				vals = append(vals, q.Options[i].Value)
			}
			e.UpdateAnswer(models.ListAnswer(vals...))
		case models.QuestionSlider:
			e.UpdateAnswer(models.NumberAnswer(q.Max))
		}
		before := e.CurrentQuestionIndex()
		e.Next()
		if e.CurrentQuestionIndex() == before {
			t.Fatalf("stuck at question %s", q.ID)
		}
	}

	res := e.Results()
	if res == nil {
		t.Fatal("no results after completing the quiz")
	}
	if res.OverallPercentage < 80 {
		t.Fatalf("overall percentage %d below the configured floor", res.OverallPercentage)
	}
	for _, cs := range res.CategoryScores {
		if cs.Percentage < 60 {
			t.Fatalf("category %s percentage %.1f below the configured floor", cs.Category, cs.Percentage)
		}
	}
	if res.Recommendation.BestMatch.ID == "" {
		t.Fatal("no recommendation")
	}
	if len(res.Recommendation.AlternativeModels) != len(ScooterModels)-1 {
		t.Fatalf("alternatives = %d models, want %d", len(res.Recommendation.AlternativeModels), len(ScooterModels)-1)
	}
	if p := e.Progress(); p.Percentage != 100 {
		t.Fatalf("progress at completion = %d%%, want 100%%", p.Percentage)
	}
}
