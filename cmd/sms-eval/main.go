package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/shieldsms/smishing-filter/internal/evaluate"
	"github.com/shieldsms/smishing-filter/internal/logging"
	"github.com/shieldsms/smishing-filter/internal/rules"
)

var (
	corpusPath = flag.String("corpus", "", "Path to a tab-separated label<TAB>text corpus")
	threshold  = flag.Float64("threshold", 0.55, "Classification threshold")
	showStats  = flag.Bool("stats", false, "Also print pattern prevalence statistics")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, false)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *corpusPath == "" {
		fmt.Println("Usage: sms-eval -corpus <path> [-threshold 0.55] [-stats]")
		os.Exit(2)
	}

	weights := rules.DefaultWeights()
	weights.Threshold = *threshold
	scorer := rules.NewScorer(weights)

	metrics, err := evaluate.EvaluateFile(*corpusPath, scorer)
	if err != nil {
		logger.Fatal("Evaluation failed", zap.Error(err))
	}

	fmt.Printf("=== Evaluation (%d messages, threshold %.2f) ===\n", metrics.Total, *threshold)
	fmt.Printf("Accuracy:  %.4f\n", metrics.Accuracy)
	fmt.Printf("Precision: %.4f\n", metrics.Precision)
	fmt.Printf("Recall:    %.4f\n", metrics.Recall)
	fmt.Printf("F1 score:  %.4f\n", metrics.F1Score)
	fmt.Printf("TP=%d TN=%d FP=%d FN=%d\n",
		metrics.TruePositives, metrics.TrueNegatives,
		metrics.FalsePositives, metrics.FalseNegatives)

	if *showStats {
		f, err := os.Open(*corpusPath)
		if err != nil {
			logger.Fatal("Failed to reopen corpus", zap.Error(err))
		}
		defer f.Close()

		stats, err := evaluate.AnalyzeCorpus(f)
		if err != nil {
			logger.Fatal("Corpus analysis failed", zap.Error(err))
		}

		fmt.Printf("\n=== Corpus patterns ===\n")
		fmt.Printf("Messages: %d (spam=%d ham=%d)\n", stats.TotalMessages, stats.TotalSpam, stats.TotalHam)
		fmt.Printf("With URLs:     %d\n", stats.WithURLs)
		fmt.Printf("With keywords: %d\n", stats.WithKeywords)
		fmt.Printf("With emails:   %d\n", stats.WithEmails)
		fmt.Printf("With numbers:  %d\n", stats.WithNumbers)
		fmt.Printf("With amounts:  %d\n", stats.WithAmounts)
	}
}
