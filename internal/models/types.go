package models

// QuestionType discriminates the question variants. Exactly one set of the
// variant fields on Question is meaningful for each type.
type QuestionType string

const (
	QuestionWelcome      QuestionType = "welcome"
	QuestionTextInput    QuestionType = "text_input"
	QuestionSingleChoice QuestionType = "single_choice"
	QuestionMultiChoice  QuestionType = "multi_choice"
	QuestionSlider       QuestionType = "slider"
	QuestionResults      QuestionType = "results"
)

// Category buckets questions for scoring. Welcome and Results are structural
// sentinels and never score.
type Category string

const (
	CategoryWelcome        Category = "welcome"
	CategoryCommute        Category = "commute"
	CategoryCharging       Category = "charging"
	CategoryBudget         Category = "budget"
	CategoryRiding         Category = "riding"
	CategorySustainability Category = "sustainability"
	CategoryPractical      Category = "practical"
	CategoryResults        Category = "results"
)

// ScoredCategories returns the categories that participate in scoring, in
// display order.
func ScoredCategories() []Category {
	return []Category{
		CategoryCommute,
		CategoryCharging,
		CategoryBudget,
		CategoryRiding,
		CategorySustainability,
		CategoryPractical,
	}
}

// Option is one selectable choice on a single- or multi-choice question.
// Value is what gets stored as the answer; Score is its contribution to the
// category score.
type Option struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Value       string  `json:"value"`
	Description string  `json:"description,omitempty"`
	Score       float64 `json:"score,omitempty"`
}

// TextValidation bounds a text-input answer.
type TextValidation struct {
	MinLength int `json:"min_length,omitempty"`
	MaxLength int `json:"max_length,omitempty"`
}

// Mark labels a point on a slider track.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Question is the tagged union over all question variants, discriminated by
// Type. A zero Weight means the question does not participate in scoring.
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Category    Category     `json:"category"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Required    bool         `json:"required"`
	Weight      float64      `json:"weight,omitempty"`

	// text_input
	Placeholder string          `json:"placeholder,omitempty"`
	Validation  *TextValidation `json:"validation,omitempty"`

	// single_choice / multi_choice
	Options       []Option `json:"options,omitempty"`
	MaxSelections int      `json:"max_selections,omitempty"`

	// slider
	Min          float64 `json:"min,omitempty"`
	Max          float64 `json:"max,omitempty"`
	Step         float64 `json:"step,omitempty"`
	DefaultValue float64 `json:"default_value,omitempty"`
	Marks        []Mark  `json:"marks,omitempty"`
}

// QuestionWeightInfo is the precomputed scoring metadata for one scored
// question: which category it feeds, its weight, and the denominator it
// contributes when answered.
type QuestionWeightInfo struct {
	Category Category `json:"category"`
	Weight   float64  `json:"weight"`
	MaxScore float64  `json:"max_score"`
}

// Progress describes where the user is in the quiz. Percentage is derived
// from the index, never stored.
type Progress struct {
	CurrentQuestionIndex int  `json:"current_question_index"`
	TotalQuestions       int  `json:"total_questions"`
	Percentage           int  `json:"percentage"`
	IsComplete           bool `json:"is_complete"`
}

// QuizState is the persisted snapshot of a quiz session.
type QuizState struct {
	SessionID            string            `json:"session_id"`
	CurrentQuestionIndex int               `json:"current_question_index"`
	Answers              map[string]Answer `json:"answers"`
	UserName             string            `json:"user_name"`
	IsComplete           bool              `json:"is_complete"`
}

// CategoryScore is the weighted aggregate for one category.
type CategoryScore struct {
	Category   Category `json:"category"`
	Score      float64  `json:"score"`
	MaxScore   float64  `json:"max_score"`
	Percentage float64  `json:"percentage"`
}

// QuizResults is computed once per completed run and persisted alongside the
// session snapshot.
type QuizResults struct {
	OverallScore      int                   `json:"overall_score"`
	OverallPercentage int                   `json:"overall_percentage"`
	CategoryScores    []CategoryScore       `json:"category_scores"`
	Recommendation    ScooterRecommendation `json:"recommendation"`
	SavingsEstimates  SavingsEstimates      `json:"savings_estimates"`
}

// ScooterModel is a static catalog entry.
type ScooterModel struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        int      `json:"price"`
	RangeKm      int      `json:"range_km"`
	TopSpeedKmh  int      `json:"top_speed_kmh"`
	ChargingTime float64  `json:"charging_time_hours"`
	Features     []string `json:"features"`
}

// ScooterRecommendation pairs the best-match model with the remaining catalog
// as alternatives.
type ScooterRecommendation struct {
	BestMatch          ScooterModel   `json:"best_match"`
	AlternativeModels  []ScooterModel `json:"alternative_models"`
	CompatibilityScore int            `json:"compatibility_score"`
}

// SavingsEstimates holds annualized savings derived from the commute answer.
// Monetary figures are rupees, CO2Reduction is kilograms.
type SavingsEstimates struct {
	FuelSavings        int `json:"fuel_savings"`
	CO2Reduction       int `json:"co2_reduction"`
	MaintenanceSavings int `json:"maintenance_savings"`
	TotalSavings       int `json:"total_savings"`
}
