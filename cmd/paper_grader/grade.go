package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/paper-grader/internal/config"
	"github.com/jonathan/paper-grader/internal/evaluation"
	"github.com/jonathan/paper-grader/internal/fetch"
	"github.com/jonathan/paper-grader/internal/grading"
	"github.com/jonathan/paper-grader/internal/grammar"
	"github.com/jonathan/paper-grader/internal/llm"
	"github.com/jonathan/paper-grader/internal/metrics"
	"github.com/jonathan/paper-grader/internal/report"
	"github.com/jonathan/paper-grader/internal/types"
)

//go:embed sample/assignment.txt sample/rubric.json sample/paper.txt
var sampleFiles embed.FS

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a student paper against a rubric",
	Long: "Grade a student paper: objective metrics (word count, readability, grammar errors) " +
		"are combined with a rubric-driven model evaluation into a single report. " +
		"With no input flags, an embedded sample assignment, rubric, and paper are graded.",
	RunE: runGrade,
}

var (
	gradeConfigFile      string
	gradeAssignmentFile  string
	gradeRubricFile      string
	gradePaperFile       string
	gradePaperURL        string
	gradeAPIKey          string
	gradeModel           string
	gradeLanguageToolURL string
	gradeJSONOutput      bool
	gradeVerbose         bool
)

func init() {
	gradeCmd.Flags().StringVar(&gradeConfigFile, "config", "", "Path to JSON config file")
	gradeCmd.Flags().StringVarP(&gradeAssignmentFile, "assignment", "a", "", "Path to assignment prompt text file")
	gradeCmd.Flags().StringVarP(&gradeRubricFile, "rubric", "r", "", "Path to rubric JSON file")
	gradeCmd.Flags().StringVarP(&gradePaperFile, "paper", "p", "", "Path to student paper text file")
	gradeCmd.Flags().StringVar(&gradePaperURL, "paper-url", "", "URL to fetch the student paper from")
	gradeCmd.Flags().StringVar(&gradeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	gradeCmd.Flags().StringVar(&gradeModel, "model", "", "Gemini model name")
	gradeCmd.Flags().StringVar(&gradeLanguageToolURL, "languagetool-url", "", "LanguageTool server base URL (overrides LANGUAGETOOL_URL env var)")
	gradeCmd.Flags().BoolVar(&gradeJSONOutput, "json", false, "Print the report as JSON instead of formatted text")
	gradeCmd.Flags().BoolVarP(&gradeVerbose, "verbose", "v", false, "Print debug-level logs")

	rootCmd.AddCommand(gradeCmd)
}

func runGrade(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key)")
	}

	logger := newLogger(cfg.Verbose)

	assignment, rubric, paper, err := loadInputs(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.EvalTimeout())
	defer cancel()

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	checker := grammar.NewLanguageTool(&grammar.Options{BaseURL: cfg.LanguageToolURL})

	grader := grading.NewGrader(
		metrics.NewAnalyzer(checker, logger),
		evaluation.NewEvaluator(client),
		logger,
	)

	gradeReport, err := grader.GradePaper(ctx, assignment, rubric, paper)
	if err != nil {
		return err
	}

	if gradeJSONOutput {
		out, err := json.MarshalIndent(gradeReport, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	report.NewPrinter(os.Stdout).PrintReport(gradeReport)
	return nil
}

// resolveConfig merges CLI flags over the optional config file over
// environment variables.
func resolveConfig() (*config.Config, error) {
	flags := &config.Config{
		Assignment:      gradeAssignmentFile,
		Rubric:          gradeRubricFile,
		Paper:           gradePaperFile,
		PaperURL:        gradePaperURL,
		APIKey:          gradeAPIKey,
		Model:           gradeModel,
		LanguageToolURL: gradeLanguageToolURL,
		Verbose:         gradeVerbose,
	}

	merged := *flags
	if gradeConfigFile != "" {
		fileCfg, err := config.Load(gradeConfigFile)
		if err != nil {
			return nil, err
		}
		merged = flags.MergeWithDefaults(*fileCfg)
		merged.Verbose = flags.Verbose || fileCfg.Verbose
	}

	merged = merged.MergeWithDefaults(config.Config{
		APIKey:          os.Getenv("GEMINI_API_KEY"),
		LanguageToolURL: os.Getenv("LANGUAGETOOL_URL"),
	})

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// loadInputs resolves the assignment prompt, rubric, and paper text from
// flags, falling back to the embedded sample when nothing was provided.
func loadInputs(cfg *config.Config, logger zerolog.Logger) (string, *types.Rubric, string, error) {
	useSample := cfg.Assignment == "" && cfg.Rubric == "" && cfg.Paper == "" && cfg.PaperURL == ""
	if useSample {
		logger.Info().Msg("no input flags given, grading the embedded sample paper")
		return loadSampleInputs()
	}

	if cfg.Assignment == "" || cfg.Rubric == "" || (cfg.Paper == "" && cfg.PaperURL == "") {
		return "", nil, "", fmt.Errorf("--assignment, --rubric, and --paper (or --paper-url) are required together")
	}

	assignmentBytes, err := os.ReadFile(cfg.Assignment)
	if err != nil {
		return "", nil, "", fmt.Errorf("failed to read assignment file: %w", err)
	}

	rubric, err := loadRubricFile(cfg.Rubric)
	if err != nil {
		return "", nil, "", err
	}

	var paper string
	if cfg.PaperURL != "" {
		text, err := fetch.SubmissionText(context.Background(), cfg.PaperURL, nil)
		if err != nil {
			return "", nil, "", fmt.Errorf("failed to fetch paper: %w", err)
		}
		paper = text
	} else {
		paperBytes, err := os.ReadFile(cfg.Paper)
		if err != nil {
			return "", nil, "", fmt.Errorf("failed to read paper file: %w", err)
		}
		paper = string(paperBytes)
	}

	return string(assignmentBytes), rubric, paper, nil
}

func loadRubricFile(path string) (*types.Rubric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rubric file: %w", err)
	}
	return parseRubric(data)
}

func parseRubric(data []byte) (*types.Rubric, error) {
	var rubric types.Rubric
	if err := json.Unmarshal(data, &rubric); err != nil {
		return nil, fmt.Errorf("failed to parse rubric JSON: %w", err)
	}
	if err := rubric.Validate(); err != nil {
		return nil, err
	}
	return &rubric, nil
}

func loadSampleInputs() (string, *types.Rubric, string, error) {
	assignment, err := sampleFiles.ReadFile("sample/assignment.txt")
	if err != nil {
		return "", nil, "", fmt.Errorf("failed to read embedded assignment: %w", err)
	}

	rubricData, err := sampleFiles.ReadFile("sample/rubric.json")
	if err != nil {
		return "", nil, "", fmt.Errorf("failed to read embedded rubric: %w", err)
	}
	rubric, err := parseRubric(rubricData)
	if err != nil {
		return "", nil, "", err
	}

	paper, err := sampleFiles.ReadFile("sample/paper.txt")
	if err != nil {
		return "", nil, "", fmt.Errorf("failed to read embedded paper: %w", err)
	}

	return string(assignment), rubric, string(paper), nil
}
