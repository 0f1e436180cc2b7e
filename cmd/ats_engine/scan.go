package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eliteskills/ats-engine/internal/ats"
	"github.com/eliteskills/ats-engine/internal/config"
	"github.com/eliteskills/ats-engine/internal/extract"
	"github.com/eliteskills/ats-engine/internal/grammar"
	"github.com/eliteskills/ats-engine/internal/observability"
	"github.com/eliteskills/ats-engine/internal/types"
)

// batchConcurrency bounds parallel scoring in batch mode.
const batchConcurrency = 4

var (
	scanConfigPath string
	scanResume     string
	scanResumeDir  string
	scanJob        string
	scanJSON       bool
	scanVerbose    bool
	scanGrammar    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Score a resume against a job description",
	Long: `Score one resume, or a directory of resumes, against a job description.

Resumes can be plain text or PDF files. Batch mode scores every resume in the directory concurrently and prints a ranking.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanConfigPath, "config", "", "Path to config.json file")
	scanCmd.Flags().StringVarP(&scanResume, "resume", "r", "", "Path to a resume file (.txt or .pdf)")
	scanCmd.Flags().StringVar(&scanResumeDir, "resume-dir", "", "Directory of resumes to score in batch (mutually exclusive with --resume)")
	scanCmd.Flags().StringVarP(&scanJob, "job", "j", "", "Path to the job description text file (required)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output the full scan result as JSON")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print detailed scan output")
	scanCmd.Flags().BoolVar(&scanGrammar, "grammar", false, "Run the improved draft through the grammar correction API")
	_ = scanCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	if scanResume == "" && scanResumeDir == "" {
		return fmt.Errorf("either --resume or --resume-dir is required")
	}
	if scanResume != "" && scanResumeDir != "" {
		return fmt.Errorf("--resume and --resume-dir are mutually exclusive")
	}

	var cfg config.Config
	if scanConfigPath != "" {
		loadedCfg, err := config.LoadConfig(scanConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}
	if scanGrammar {
		cfg.GrammarEnabled = true
	}

	jobBytes, err := os.ReadFile(scanJob)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	jobDescription := extract.CleanText(string(jobBytes))

	gc := grammarClient(&cfg)

	if scanResumeDir != "" {
		return runBatchScan(context.Background(), scanResumeDir, jobDescription)
	}
	return runSingleScan(context.Background(), scanResume, jobDescription, gc)
}

func runSingleScan(ctx context.Context, resumePath, jobDescription string, gc *grammar.Client) error {
	resumeText, err := loadResumeFile(resumePath)
	if err != nil {
		return err
	}

	result := ats.ScoreResume(resumeText, jobDescription)
	if result.CorrectedResume != "" {
		result.CorrectedResume = gc.Correct(ctx, result.CorrectedResume)
	}

	if scanJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printSummary(resumePath, result)
	if scanVerbose {
		p := observability.NewPrinter(os.Stdout)
		p.PrintScore(result)
		p.PrintSections(result)
		p.PrintLineFeedback(result)
		p.PrintTips(result)
	}
	return nil
}

type batchResult struct {
	Path  string `json:"path"`
	Score int    `json:"score"`
	Error string `json:"error,omitempty"`
}

func runBatchScan(ctx context.Context, dir, jobDescription string) error {
	paths, err := listResumeFiles(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no resume files found in %s", dir)
	}

	results := make([]batchResult, len(paths))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			results[i] = batchResult{Path: path}
			resumeText, err := loadResumeFile(path)
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}
			results[i].Score = ats.ScoreResume(resumeText, jobDescription).Score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if scanJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("%-40s  error: %s\n", filepath.Base(r.Path), r.Error)
			continue
		}
		fmt.Printf("%-40s  %3d / 100\n", filepath.Base(r.Path), r.Score)
	}
	return nil
}

// loadResumeFile reads a resume from disk, extracting text from PDFs.
func loadResumeFile(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open resume: %w", err)
		}
		defer f.Close()
		return extract.PDFText(f)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	return extract.CleanText(string(data)), nil
}

func listResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md", ".pdf":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

func printSummary(path string, result *types.ScanResult) {
	fmt.Printf("Resume:  %s\n", path)
	fmt.Printf("Score:   %d / 100\n", result.Score)
	fmt.Printf("Matched: %s\n", joinOrNone(result.MatchedKeywords))
	fmt.Printf("Missing: %s\n", joinOrNone(result.MissingKeywords))
	for _, tip := range result.Tips {
		fmt.Printf("Tip:     %s\n", tip)
	}
}

func joinOrNone(keywords []string) string {
	if len(keywords) == 0 {
		return "(none)"
	}
	return strings.Join(keywords, ", ")
}
