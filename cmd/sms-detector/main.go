package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/shieldsms/smishing-filter/internal/config"
	"github.com/shieldsms/smishing-filter/internal/logging"
	"github.com/shieldsms/smishing-filter/internal/rules"
	"github.com/shieldsms/smishing-filter/internal/textproc"
	"github.com/shieldsms/smishing-filter/internal/urlcheck"
	"github.com/shieldsms/smishing-filter/internal/utils"
)

var (
	threshold   = flag.Float64("threshold", 0.55, "Classification threshold")
	inputFile   = flag.String("file", "", "Read the message from a file (stdin if neither -file nor -text given)")
	inputText   = flag.String("text", "", "Message text to classify")
	analyzeURLs = flag.Bool("analyze-urls", false, "Also analyze the risk of every URL found")
	showClean   = flag.Bool("show-clean", false, "Print the normalized (stopword-free) text")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog     = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile  = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	text, err := readMessage()
	if err != nil {
		logger.Fatal("Failed to read message", zap.Error(err))
	}

	weights := rules.DefaultWeights()
	weights.Threshold = *threshold

	// A config file takes precedence over command line flags
	if *configFile != "" {
		cfg, err := config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file",
			zap.String("file", cfg.GetViper().ConfigFileUsed()))
		if t := cfg.GetFloat64("scoring.threshold"); t > 0 {
			weights.Threshold = t
		}
	}

	scorer := rules.NewScorer(weights)

	features := textproc.ExtractAll(text)
	result := scorer.Score(text)

	fmt.Printf("\n=== Message ===\n")
	preview := utils.NewTextProcessor(logger).TruncateText(text, 200)
	if len(preview) < len(text) {
		preview += "..."
	}
	fmt.Printf("Text: %s\n", preview)
	fmt.Printf("Length: %d runes\n", features.Length)

	fmt.Printf("\n=== Features ===\n")
	fmt.Printf("URLs: %v\n", features.URLs)
	fmt.Printf("Emails: %v\n", features.Emails)
	fmt.Printf("Numbers: %v\n", features.Numbers)
	fmt.Printf("Amounts: %v\n", features.Amounts)
	fmt.Printf("Keywords: %v\n", features.Keywords)
	fmt.Printf("Uppercase ratio: %.2f\n", features.UppercaseRatio)
	fmt.Printf("Exclamations: %d\n", features.ExclamationCount)
	fmt.Printf("Urgency: %t\n", features.UrgencyPresent)

	if *showClean {
		fmt.Printf("\n=== Normalized ===\n%s\n", textproc.CleanText(text))
	}

	fmt.Printf("\n=== Verdict ===\n")
	fmt.Printf("Label: %s\n", result.Label)
	fmt.Printf("Score: %.4f\n", result.Score)
	fmt.Printf("Reasons: %s\n", strings.Join(result.Reasons, ", "))

	if *analyzeURLs && len(features.URLs) > 0 {
		analyzer := urlcheck.NewAnalyzer(urlcheck.DefaultCacheCapacity, nil)
		fmt.Printf("\n=== URL Risk ===\n")
		for _, u := range features.URLs {
			risk := analyzer.Analyze(u)
			fmt.Printf("%s: domain=%s suspicious=%t shortened=%t risk=%.2f\n",
				u, risk.Domain, risk.IsSuspicious, risk.IsShortened, risk.RiskScore)
		}
	}
}

// readMessage resolves the message text from flag, file or stdin
func readMessage() (string, error) {
	if *inputText != "" {
		return *inputText, nil
	}

	var reader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		reader = file
	} else {
		reader = os.Stdin
	}

	data, err := io.ReadAll(bufio.NewReader(reader))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
