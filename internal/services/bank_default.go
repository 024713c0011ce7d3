package services

import "github.com/rideon-ev/compatquiz/internal/models"

// UserNameQuestionID is the text question whose answer doubles as the
// session's display name.
const UserNameQuestionID = "user-name"

// CommuteDistanceQuestionID is the answer the savings estimator reads.
const CommuteDistanceQuestionID = "commute-distance"

// DefaultBank returns the Ather compatibility questionnaire.
func DefaultBank() *Bank {
	b, err := NewBank(atherQuestions())
	if err != nil {
		// The catalog below is static; a validation failure is a programming
		// error, not a runtime condition.
		panic(err)
	}
	return b
}

func sliderMarks() []models.Mark {
	return []models.Mark{
		{Value: 0, Label: "Not important"},
		{Value: 50, Label: "Somewhat"},
		{Value: 100, Label: "Very important"},
	}
}

func atherQuestions() []models.Question {
	return []models.Question{
		{
			ID:          "welcome",
			Type:        models.QuestionWelcome,
			Category:    models.CategoryWelcome,
			Title:       "Welcome to the Ather E-Scooter Compatibility Quiz",
			Description: "Let's find out if an Ather electric scooter is the perfect match for your lifestyle!",
		},
		{
			ID:          UserNameQuestionID,
			Type:        models.QuestionTextInput,
			Category:    models.CategoryWelcome,
			Title:       "What's your name?",
			Description: "We'll personalize your experience",
			Placeholder: "Enter your name",
			Required:    true,
			Validation:  &models.TextValidation{MinLength: 2, MaxLength: 50},
		},
		{
			ID:          CommuteDistanceQuestionID,
			Type:        models.QuestionSingleChoice,
			Category:    models.CategoryCommute,
			Title:       "How far do you commute daily?",
			Description: "This helps us determine if an Ather scooter's range matches your needs",
			Required:    true,
			Weight:      1,
			Options: []models.Option{
				{ID: "under-5km", Label: "Under 5km", Value: "under-5km", Description: "Short urban commute", Score: 100},
				{ID: "5-15km", Label: "5-15km", Value: "5-15km", Description: "Medium commute distance", Score: 90},
				{ID: "15-30km", Label: "15-30km", Value: "15-30km", Description: "Longer commute distance", Score: 70},
				{ID: "30km-plus", Label: "Over 30km", Value: "30km-plus", Description: "Extended daily travel", Score: 50},
			},
		},
		{
			ID:          "commute-terrain",
			Type:        models.QuestionSingleChoice,
			Category:    models.CategoryCommute,
			Title:       "What type of terrain do you typically ride on?",
			Description: "Different Ather models handle different terrains with varying efficiency",
			Required:    true,
			Weight:      0.8,
			Options: []models.Option{
				{ID: "mostly-flat", Label: "Mostly flat", Value: "mostly-flat", Description: "Urban city roads and highways", Score: 100},
				{ID: "some-hills", Label: "Some hills", Value: "some-hills", Description: "Mix of flat roads and occasional hills", Score: 80},
				{ID: "mountainous", Label: "Mountainous", Value: "mountainous", Description: "Frequent steep inclines and hills", Score: 60},
			},
		},
		{
			ID:          "charging-home",
			Type:        models.QuestionSingleChoice,
			Category:    models.CategoryCharging,
			Title:       "Do you have access to home charging?",
			Description: "Home charging requires a standard power outlet near your parking spot",
			Required:    true,
			Weight:      1.2,
			Options: []models.Option{
				{ID: "yes", Label: "Yes", Value: "yes", Description: "I have a power outlet where I park", Score: 100},
				{ID: "maybe", Label: "Maybe", Value: "maybe", Description: "I might be able to set up charging", Score: 70},
				{ID: "no", Label: "No", Value: "no", Description: "I don't have access to power where I park", Score: 40},
			},
		},
		{
			ID:          "charging-public",
			Type:        models.QuestionSingleChoice,
			Category:    models.CategoryCharging,
			Title:       "How is public charging availability in your area?",
			Description: "Ather Grid provides fast-charging stations in many urban centers",
			Required:    true,
			Weight:      0.8,
			Options: []models.Option{
				{ID: "multiple", Label: "Multiple options", Value: "multiple", Description: "Several charging stations nearby", Score: 100},
				{ID: "limited", Label: "Limited", Value: "limited", Description: "Few charging options available", Score: 70},
				{ID: "none", Label: "None", Value: "none", Description: "No public charging stations I'm aware of", Score: 40},
			},
		},
		{
			ID:          "budget-purchase",
			Type:        models.QuestionSingleChoice,
			Category:    models.CategoryBudget,
			Title:       "What's your budget for an electric scooter?",
			Description: "Ather offers different models at different price points",
			Required:    true,
			Weight:      1.5,
			Options: []models.Option{
				{ID: "under-100k", Label: "Under ₹1,00,000", Value: "under-100k", Description: "Entry-level budget", Score: 50},
				{ID: "100k-130k", Label: "₹1,00,000 - ₹1,30,000", Value: "100k-130k", Description: "Mid-range budget", Score: 80},
				{ID: "130k-150k", Label: "₹1,30,000 - ₹1,50,000", Value: "130k-150k", Description: "Premium budget", Score: 90},
				{ID: "above-150k", Label: "Above ₹1,50,000", Value: "above-150k", Description: "High-end budget", Score: 100},
			},
		},
		{
			ID:           "budget-operating",
			Type:         models.QuestionSlider,
			Category:     models.CategoryBudget,
			Title:        "How important are low operating costs to you?",
			Description:  "Electric vehicles typically have lower running costs than petrol vehicles",
			Required:     true,
			Weight:       0.7,
			Min:          0,
			Max:          100,
			Step:         10,
			DefaultValue: 50,
			Marks:        sliderMarks(),
		},
		{
			ID:          "budget-longterm",
			Type:        models.QuestionSingleChoice,
			Category:    models.CategoryBudget,
			Title:       "What matters more to you?",
			Description: "Long-term savings often come with higher upfront costs",
			Required:    true,
			Weight:      0.8,
			Options: []models.Option{
				{ID: "upfront", Label: "Lower upfront cost", Value: "upfront", Description: "I prefer to pay less initially", Score: 60},
				{ID: "balanced", Label: "Balanced approach", Value: "balanced", Description: "I want a reasonable balance", Score: 80},
				{ID: "longterm", Label: "Long-term savings", Value: "longterm", Description: "I'm willing to pay more now to save later", Score: 100},
			},
		},
		{
			ID:           "riding-speed",
			Type:         models.QuestionSlider,
			Category:     models.CategoryRiding,
			Title:        "How important is speed and acceleration to you?",
			Description:  "Ather scooters offer different performance levels",
			Required:     true,
			Weight:       1.2,
			Min:          0,
			Max:          100,
			Step:         10,
			DefaultValue: 50,
			Marks:        sliderMarks(),
		},
		{
			ID:            "riding-tech",
			Type:          models.QuestionMultiChoice,
			Category:      models.CategoryRiding,
			Title:         "Which smart features interest you most?",
			Description:   "Select all that apply",
			Required:      true,
			Weight:        0.9,
			MaxSelections: 3,
			Options: []models.Option{
				{ID: "touchscreen", Label: "Touchscreen dashboard", Value: "touchscreen", Score: 90},
				{ID: "navigation", Label: "Built-in navigation", Value: "navigation", Score: 85},
				{ID: "connectivity", Label: "Smartphone connectivity", Value: "connectivity", Score: 80},
				{ID: "riding-modes", Label: "Different riding modes", Value: "riding-modes", Score: 75},
				{ID: "ota-updates", Label: "Over-the-air updates", Value: "ota-updates", Score: 70},
			},
		},
		{
			ID:           "riding-aesthetics",
			Type:         models.QuestionSlider,
			Category:     models.CategoryRiding,
			Title:        "How important is design and aesthetics to you?",
			Description:  "Rate the importance of looks and styling",
			Required:     true,
			Weight:       0.6,
			Min:          0,
			Max:          100,
			Step:         10,
			DefaultValue: 50,
			Marks:        sliderMarks(),
		},
		{
			ID:           "sustainability-environment",
			Type:         models.QuestionSlider,
			Category:     models.CategorySustainability,
			Title:        "How important is reducing environmental impact to you?",
			Description:  "Electric vehicles produce zero tailpipe emissions",
			Required:     true,
			Weight:       1.0,
			Min:          0,
			Max:          100,
			Step:         10,
			DefaultValue: 50,
			Marks:        sliderMarks(),
		},
		{
			ID:          "sustainability-carbon",
			Type:        models.QuestionSingleChoice,
			Category:    models.CategorySustainability,
			Title:       "Are you actively trying to reduce your carbon footprint?",
			Description: "Electric vehicles can significantly reduce personal carbon emissions",
			Required:    true,
			Weight:      0.8,
			Options: []models.Option{
				{ID: "very-active", Label: "Yes, it's a priority", Value: "very-active", Score: 100},
				{ID: "somewhat", Label: "Somewhat, when convenient", Value: "somewhat", Score: 70},
				{ID: "not-really", Label: "Not actively", Value: "not-really", Score: 40},
			},
		},
		{
			ID:          "sustainability-pollution",
			Type:        models.QuestionSingleChoice,
			Category:    models.CategorySustainability,
			Title:       "How concerned are you about local air pollution?",
			Description: "Electric vehicles produce no direct air pollution",
			Required:    true,
			Weight:      0.7,
			Options: []models.Option{
				{ID: "very-concerned", Label: "Very concerned", Value: "very-concerned", Score: 100},
				{ID: "somewhat-concerned", Label: "Somewhat concerned", Value: "somewhat-concerned", Score: 70},
				{ID: "not-concerned", Label: "Not particularly concerned", Value: "not-concerned", Score: 40},
			},
		},
		{
			ID:          "practical-storage",
			Type:        models.QuestionSingleChoice,
			Category:    models.CategoryPractical,
			Title:       "What are your storage requirements?",
			Description: "How much carrying capacity do you need?",
			Required:    true,
			Weight:      0.7,
			Options: []models.Option{
				{ID: "minimal", Label: "Minimal", Value: "minimal", Description: "Just essentials", Score: 100},
				{ID: "moderate", Label: "Moderate", Value: "moderate", Description: "Small bags or packages", Score: 80},
				{ID: "substantial", Label: "Substantial", Value: "substantial", Description: "Need to carry larger items regularly", Score: 60},
			},
		},
		{
			ID:          "practical-passengers",
			Type:        models.QuestionSingleChoice,
			Category:    models.CategoryPractical,
			Title:       "How often do you carry a passenger?",
			Description: "Ather scooters are designed for two riders",
			Required:    true,
			Weight:      0.8,
			Options: []models.Option{
				{ID: "never", Label: "Never", Value: "never", Description: "I always ride alone", Score: 100},
				{ID: "occasionally", Label: "Occasionally", Value: "occasionally", Description: "A few times a month", Score: 90},
				{ID: "frequently", Label: "Frequently", Value: "frequently", Description: "Multiple times a week", Score: 70},
				{ID: "always", Label: "Always", Value: "always", Description: "Almost every ride", Score: 60},
			},
		},
		{
			ID:          "practical-weather",
			Type:        models.QuestionSingleChoice,
			Category:    models.CategoryPractical,
			Title:       "What's the typical weather in your location?",
			Description: "Weather can impact riding experience",
			Required:    true,
			Weight:      0.6,
			Options: []models.Option{
				{ID: "mostly-sunny", Label: "Mostly sunny/dry", Value: "mostly-sunny", Description: "Year-round good weather", Score: 100},
				{ID: "seasonal-rain", Label: "Seasonal rain", Value: "seasonal-rain", Description: "Rainy season but mostly dry", Score: 80},
				{ID: "frequent-rain", Label: "Frequent rain", Value: "frequent-rain", Description: "Rain throughout the year", Score: 60},
				{ID: "extreme", Label: "Extreme conditions", Value: "extreme", Description: "Very hot, cold, or wet climate", Score: 40},
			},
		},
		{
			ID:          "results",
			Type:        models.QuestionResults,
			Category:    models.CategoryResults,
			Title:       "Your Ather Compatibility Results",
			Description: "Here's how well an Ather electric scooter matches your lifestyle",
		},
	}
}
