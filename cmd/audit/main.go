package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/siteaudit/siteaudit/internal/domain"
	"github.com/siteaudit/siteaudit/internal/llm"
	"github.com/siteaudit/siteaudit/internal/services/audit"
	"github.com/siteaudit/siteaudit/internal/services/extract"
	"github.com/siteaudit/siteaudit/internal/services/report"
)

var (
	green  = color.New(color.FgGreen, color.Bold)
	red    = color.New(color.FgRed, color.Bold)
	yellow = color.New(color.FgYellow, color.Bold)
	cyan   = color.New(color.FgCyan, color.Bold)
	bold   = color.New(color.Bold)
	dim    = color.New(color.Faint)
)

func main() {
	godotenv.Load()

	targetURL := flag.String("url", "", "URL of the page to audit")
	outputDir := flag.String("out", "", "Output directory (default: /tmp/siteaudit-<timestamp>)")
	writeJSON := flag.Bool("json", true, "Write the result as JSON")
	writeHTML := flag.Bool("html", true, "Write the result as an HTML report")
	fetchTimeout := flag.Duration("timeout", 12*time.Second, "Page fetch timeout")
	verbose := flag.Bool("verbose", false, "Verbose output")

	flag.Parse()

	// Allow the URL as a bare positional argument too
	if *targetURL == "" && flag.NArg() > 0 {
		*targetURL = flag.Arg(0)
	}
	if *targetURL == "" {
		red.Println("✗ No URL given")
		fmt.Println("   Usage: audit -url https://example.com")
		os.Exit(1)
	}

	// Setup logger
	var logger *zap.Logger
	if *verbose {
		logger, _ = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"/dev/null"}
		logger, _ = cfg.Build()
	}
	defer logger.Sync()

	printBanner()

	ctx := context.Background()
	startTime := time.Now()

	outDir := *outputDir
	if outDir == "" {
		outDir = fmt.Sprintf("/tmp/siteaudit-%d", time.Now().Unix())
	}
	os.MkdirAll(outDir, 0755)

	fmt.Printf("🎯 Target: %s\n", *targetURL)
	fmt.Printf("📁 Output: %s\n", outDir)
	fmt.Println()

	// AI evaluation runs only when a key is present; heuristics otherwise
	var aiEvaluator audit.Evaluator
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey != "" {
		claudeCfg := llm.DefaultConfig()
		claudeCfg.APIKey = apiKey
		claudeClient, err := llm.NewClaudeClient(claudeCfg)
		if err != nil {
			yellow.Printf("⚠ Claude client unavailable (%v), using heuristics\n", err)
		} else {
			aiEvaluator = audit.NewAIEvaluator(claudeClient, logger)
			cyan.Println("🤖 AI analysis enabled")
		}
	} else {
		dim.Println("   ANTHROPIC_API_KEY not set, using heuristic analysis")
	}

	fetcher := extract.NewFetcher(extract.FetcherConfig{Timeout: *fetchTimeout}, logger)
	extractor := extract.NewExtractor(fetcher, logger)
	service := audit.NewService(extractor, aiEvaluator, nil, nil, logger)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("   Analyzing..."),
		progressbar.OptionSpinnerType(14),
	)

	done := make(chan bool)
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				bar.Add(1)
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()

	result, err := service.Analyze(ctx, *targetURL)
	close(done)
	bar.Finish()
	fmt.Println()

	if err != nil {
		printFailure(err)
		os.Exit(1)
	}

	printSummary(result)

	// Write artifacts
	writer, err := report.NewWriter(logger)
	if err != nil {
		red.Printf("✗ Report writer failed: %v\n", err)
		os.Exit(1)
	}

	if *writeJSON {
		path := filepath.Join(outDir, "audit.json")
		if err := writeFile(path, func(f *os.File) error { return writer.WriteJSON(f, result) }); err != nil {
			red.Printf("✗ Failed to write JSON: %v\n", err)
		} else {
			dim.Printf("   JSON:  %s\n", path)
		}
	}

	if *writeHTML {
		path := filepath.Join(outDir, "audit.html")
		if err := writeFile(path, func(f *os.File) error { return writer.WriteHTML(f, result) }); err != nil {
			red.Printf("✗ Failed to write HTML: %v\n", err)
		} else {
			dim.Printf("   HTML:  %s\n", path)
		}
	}

	fmt.Println()
	fmt.Printf("   Total time: %.1fs\n", time.Since(startTime).Seconds())
}

func printBanner() {
	cyan.Println(`
╔══════════════════════════════════════════════════╗
║   SITEAUDIT - CRO & UX analysis for any page     ║
╚══════════════════════════════════════════════════╝`)
}

func printFailure(err error) {
	if appErr, ok := domain.AsAppError(err); ok {
		red.Printf("✗ %s\n", appErr.Message)
		if kind, ok := domain.FetchSubkind(err); ok {
			dim.Printf("   (%s)\n", kind)
		}
		return
	}
	red.Printf("✗ Analysis failed: %v\n", err)
}

func printSummary(result *domain.AnalysisResult) {
	gradeColor := green
	switch result.Grade {
	case "C", "D":
		gradeColor = yellow
	case "F":
		gradeColor = red
	}

	fmt.Println()
	cyan.Println("┌─────────────────────────────────────────────────────┐")
	cyan.Println("│                  AUDIT SUMMARY                      │")
	cyan.Println("├─────────────────────────────────────────────────────┤")

	fmt.Printf("│ Grade:        ")
	gradeColor.Printf("%-38s", result.Grade)
	fmt.Println("│")
	fmt.Printf("│ CRO Score:    %-38s│\n", fmt.Sprintf("%d / %d", result.CROScore, domain.MaxCROScore))
	fmt.Printf("│ UX Score:     %-38s│\n", fmt.Sprintf("%d / %d", result.UXScore, domain.MaxUXScore))
	fmt.Printf("│ Checks:       %-38s│\n", fmt.Sprintf("%d categories", len(result.CROResults)+len(result.UXResults)))
	cyan.Println("└─────────────────────────────────────────────────────┘")

	printCategoryScores("Conversion", result.CROResults)
	printCategoryScores("Experience", result.UXResults)

	if len(result.Recommendations) > 0 {
		fmt.Println()
		cyan.Println("📋 Top Recommendations:")
		for i, rec := range result.Recommendations {
			marker := yellow
			if rec.Impact == domain.ImpactHigh {
				marker = red
			}
			fmt.Printf("   %d. ", i+1)
			marker.Printf("[%s] ", rec.Impact)
			fmt.Println(truncate(rec.Title, 70))
		}
	}
}

func printCategoryScores(title string, results []domain.CategoryResult) {
	fmt.Println()
	bold.Printf("   %s:\n", title)
	for _, r := range results {
		scoreColor := green
		switch {
		case r.Score < 50:
			scoreColor = red
		case r.Score < 80:
			scoreColor = yellow
		}
		fmt.Printf("      %-45s", r.Category)
		scoreColor.Printf("%3d%%\n", r.Score)
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-3]) + "..."
}
