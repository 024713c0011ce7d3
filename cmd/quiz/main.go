package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/rideon-ev/compatquiz/internal/models"
	"github.com/rideon-ev/compatquiz/internal/services"
	"github.com/rideon-ev/compatquiz/internal/storage"
	"github.com/rideon-ev/compatquiz/internal/utils"
)

const shareTokenTTL = 7 * 24 * time.Hour

func main() {
	_ = godotenv.Load()

	store, closeStore := openStore()
	defer closeStore()

	engine := services.NewEngine(services.DefaultBank(), store)
	if engine.CurrentQuestionIndex() > 0 {
		fmt.Printf("Resuming your saved session (question %d of %d). Type 'restart' to start over.\n\n",
			engine.CurrentQuestionIndex()+1, engine.Progress().TotalQuestions)
	}

	run(engine, bufio.NewScanner(os.Stdin))
}

// openStore builds the snapshot store: sqlite at QUIZ_DB_PATH, optionally
// sealed with QUIZ_STORE_KEY, falling back to memory when the database
// cannot be opened.
func openStore() (storage.Store, func()) {
	path := utils.SafeEnv("QUIZ_DB_PATH", "data/quiz.db")
	var (
		base      storage.Store
		closeFunc = func() {}
	)
	sqlStore, err := storage.OpenSQLite(path)
	if err != nil {
		log.Printf("open sqlite %s: %v (answers will not survive this session)", path, err)
		base = storage.NewMemoryStore()
	} else {
		base = sqlStore
		closeFunc = func() {
			if cerr := sqlStore.Close(); cerr != nil {
				log.Printf("close sqlite: %v", cerr)
			}
		}
	}
	if pass := os.Getenv("QUIZ_STORE_KEY"); pass != "" {
		sec, err := storage.NewSecureStore(base, pass)
		if err != nil {
			log.Fatalf("snapshot encryption: %v", err)
		}
		return sec, closeFunc
	}
	return base, closeFunc
}

func run(e *services.Engine, in *bufio.Scanner) {
	for {
		q := e.CurrentQuestion()
		switch q.Type {
		case models.QuestionWelcome:
			fmt.Printf("\n%s\n%s\n\nPress enter to begin (or 'quit'): ", q.Title, q.Description)
			if !in.Scan() || strings.TrimSpace(in.Text()) == "quit" {
				return
			}
			e.Next()
		case models.QuestionResults:
			printResults(e)
			fmt.Print("\nType 'restart' to take the quiz again, anything else to exit: ")
			if !in.Scan() || strings.TrimSpace(in.Text()) != "restart" {
				return
			}
			e.Reset()
		default:
			if !askQuestion(e, q, in) {
				return
			}
		}
	}
}

// askQuestion renders one question, reads an answer, and advances. Returns
// false when input is exhausted or the user quits.
func askQuestion(e *services.Engine, q models.Question, in *bufio.Scanner) bool {
	p := e.Progress()
	fmt.Printf("\n[%d/%d  %d%%] %s\n", p.CurrentQuestionIndex+1, p.TotalQuestions, p.Percentage, q.Title)
	if q.Description != "" {
		fmt.Println(q.Description)
	}
	printPrompt(e, q)

	if !in.Scan() {
		return false
	}
	line := strings.TrimSpace(in.Text())
	switch line {
	case "quit":
		return false
	case "back":
		if e.CanGoBack() {
			e.Previous()
		} else {
			fmt.Println("Already at the first question.")
		}
		return true
	case "restart":
		e.Reset()
		return true
	}

	answer, err := parseAnswer(q, line)
	if err != nil {
		fmt.Println(err)
		return true
	}
	e.UpdateAnswer(answer)
	if !e.CanProceedToNext() {
		fmt.Println("An answer is required here.")
		return true
	}
	e.Next()
	return true
}

func printPrompt(e *services.Engine, q models.Question) {
	switch q.Type {
	case models.QuestionSingleChoice, models.QuestionMultiChoice:
		for i, opt := range q.Options {
			line := fmt.Sprintf("  %d) %s", i+1, opt.Label)
			if opt.Description != "" {
				line += " — " + opt.Description
			}
			fmt.Println(line)
		}
		if q.Type == models.QuestionMultiChoice {
			fmt.Printf("Pick up to %d, comma-separated (e.g. 1,3): ", q.MaxSelections)
		} else {
			fmt.Print("Pick one: ")
		}
	case models.QuestionSlider:
		for _, m := range q.Marks {
			fmt.Printf("  %.0f = %s\n", m.Value, m.Label)
		}
		def := q.DefaultValue
		if a, ok := e.CurrentAnswer(); ok && a.Kind == models.AnswerNumber {
			def = a.Value
		}
		fmt.Printf("Enter %.0f-%.0f (step %.0f, enter for %.0f): ", q.Min, q.Max, q.Step, def)
	default:
		if q.Placeholder != "" {
			fmt.Printf("%s: ", q.Placeholder)
		} else {
			fmt.Print("> ")
		}
	}
}

func parseAnswer(q models.Question, line string) (models.Answer, error) {
	switch q.Type {
	case models.QuestionSingleChoice:
		opt, err := pickOption(q, line)
		if err != nil {
			return models.Answer{}, err
		}
		return models.StringAnswer(opt.Value), nil
	case models.QuestionMultiChoice:
		parts := strings.Split(line, ",")
		if q.MaxSelections > 0 && len(parts) > q.MaxSelections {
			return models.Answer{}, fmt.Errorf("pick at most %d options", q.MaxSelections)
		}
		values := make([]string, 0, len(parts))
		seen := map[string]bool{}
		for _, part := range parts {
			opt, err := pickOption(q, strings.TrimSpace(part))
			if err != nil {
				return models.Answer{}, err
			}
			if !seen[opt.Value] {
				seen[opt.Value] = true
				values = append(values, opt.Value)
			}
		}
		return models.ListAnswer(values...), nil
	case models.QuestionSlider:
		if line == "" {
			return models.NumberAnswer(q.DefaultValue), nil
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return models.Answer{}, fmt.Errorf("enter a number between %.0f and %.0f", q.Min, q.Max)
		}
		if v < q.Min {
			v = q.Min
		}
		if v > q.Max {
			v = q.Max
		}
		return models.NumberAnswer(v), nil
	default:
		if v := q.Validation; v != nil {
			if len(line) < v.MinLength {
				return models.Answer{}, fmt.Errorf("needs at least %d characters", v.MinLength)
			}
			if v.MaxLength > 0 && len(line) > v.MaxLength {
				return models.Answer{}, fmt.Errorf("keep it under %d characters", v.MaxLength)
			}
		}
		return models.StringAnswer(line), nil
	}
}

func pickOption(q models.Question, input string) (models.Option, error) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(q.Options) {
			return models.Option{}, fmt.Errorf("pick a number between 1 and %d", len(q.Options))
		}
		return q.Options[n-1], nil
	}
	for _, opt := range q.Options {
		if opt.Value == input || opt.ID == input {
			return opt, nil
		}
	}
	return models.Option{}, fmt.Errorf("unknown option %q", input)
}

func printResults(e *services.Engine) {
	res := e.Results()
	if res == nil {
		fmt.Println("No results yet.")
		return
	}
	name := e.UserName()
	if name == "" {
		name = "rider"
	}
	fmt.Printf("\n%s, your Ather compatibility: %d%%\n\n", name, res.OverallPercentage)

	for _, cs := range res.CategoryScores {
		bar := strings.Repeat("█", int(cs.Percentage)/5)
		fmt.Printf("  %-15s %5.1f%%  %s\n", cs.Category, cs.Percentage, bar)
	}

	best := res.Recommendation.BestMatch
	fmt.Printf("\nBest match: %s — %s\n", best.Name, best.Description)
	fmt.Printf("  ₹%d | %d km range | %d km/h top speed | %.1fh charge\n",
		best.Price, best.RangeKm, best.TopSpeedKmh, best.ChargingTime)
	for _, alt := range res.Recommendation.AlternativeModels {
		fmt.Printf("  Also consider: %s (₹%d)\n", alt.Name, alt.Price)
	}

	sav := res.SavingsEstimates
	fmt.Printf("\nEstimated annual savings: ₹%d fuel + ₹%d maintenance = ₹%d total, %d kg CO2 avoided\n",
		sav.FuelSavings, sav.MaintenanceSavings, sav.TotalSavings, sav.CO2Reduction)

	token, err := services.SignResultsToken(name, best.ID, res.Recommendation.CompatibilityScore, shareTokenTTL)
	if err != nil {
		log.Printf("share token: %v", err)
		return
	}
	fmt.Printf("\nShare code (valid 7 days):\n%s\n", token)
}
