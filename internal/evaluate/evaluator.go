// Package evaluate batch-applies a classifier to a labeled SMS corpus and
// computes confusion-matrix metrics. It is a consumer of the classification
// core, not part of it.
package evaluate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shieldsms/smishing-filter/internal/core"
	"github.com/shieldsms/smishing-filter/internal/textproc"
)

// Corpus labels. The evaluation corpora use the spam-filtering convention
// "spam"/"ham"; "spam" maps onto the smishing class.
const (
	corpusLabelSpam = "spam"
	corpusLabelHam  = "ham"
)

// Classifier is the minimal scoring contract the evaluator needs
type Classifier interface {
	Score(text string) core.ClassificationResult
}

// Metrics holds confusion-matrix evaluation results
type Metrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1_score"`

	Total          int `json:"total_evaluated"`
	TruePositives  int `json:"true_positives"`
	TrueNegatives  int `json:"true_negatives"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`
}

// CorpusStats reports how many corpus messages exhibit each pattern category
type CorpusStats struct {
	TotalMessages int `json:"total_messages"`
	TotalSpam     int `json:"total_spam"`
	TotalHam      int `json:"total_ham"`

	WithURLs     int `json:"with_urls"`
	WithKeywords int `json:"with_keywords"`
	WithEmails   int `json:"with_emails"`
	WithNumbers  int `json:"with_numbers"`
	WithAmounts  int `json:"with_amounts"`
}

// Evaluate classifies every `label<TAB>text` line from r and accumulates the
// confusion matrix. Malformed lines are skipped, not errors.
func Evaluate(r io.Reader, classifier Classifier) (Metrics, error) {
	var m Metrics

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		label, text, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		m.Total++

		actualSpam := label == corpusLabelSpam
		predictedSpam := classifier.Score(text).Label == core.LabelSmishing

		switch {
		case actualSpam && predictedSpam:
			m.TruePositives++
		case !actualSpam && !predictedSpam:
			m.TrueNegatives++
		case !actualSpam && predictedSpam:
			m.FalsePositives++
		default:
			m.FalseNegatives++
		}
	}
	if err := scanner.Err(); err != nil {
		return Metrics{}, fmt.Errorf("failed to read corpus: %w", err)
	}

	m.compute()
	return m, nil
}

// EvaluateFile is Evaluate over a corpus file path
func EvaluateFile(path string, classifier Classifier) (Metrics, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metrics{}, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()
	return Evaluate(f, classifier)
}

// AnalyzeCorpus scans a corpus and counts pattern prevalence per category
func AnalyzeCorpus(r io.Reader) (CorpusStats, error) {
	var stats CorpusStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		label, text, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}

		stats.TotalMessages++
		if label == corpusLabelSpam {
			stats.TotalSpam++
		} else {
			stats.TotalHam++
		}

		if len(textproc.ExtractURLs(text)) > 0 {
			stats.WithURLs++
		}
		if len(textproc.ExtractKeywords(text)) > 0 {
			stats.WithKeywords++
		}
		if len(textproc.ExtractEmails(text)) > 0 {
			stats.WithEmails++
		}
		if len(textproc.ExtractNumbers(text)) > 0 {
			stats.WithNumbers++
		}
		if len(textproc.ExtractAmounts(text)) > 0 {
			stats.WithAmounts++
		}
	}
	if err := scanner.Err(); err != nil {
		return CorpusStats{}, fmt.Errorf("failed to read corpus: %w", err)
	}

	return stats, nil
}

// parseLine splits a `label<TAB>text` corpus line
func parseLine(line string) (label, text string, ok bool) {
	line = strings.TrimSpace(line)
	parts := strings.SplitN(line, "\t", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	label = strings.TrimSpace(parts[0])
	if label != corpusLabelSpam && label != corpusLabelHam {
		return "", "", false
	}
	return label, parts[1], true
}

func (m *Metrics) compute() {
	if m.Total > 0 {
		m.Accuracy = float64(m.TruePositives+m.TrueNegatives) / float64(m.Total)
	}
	if m.TruePositives+m.FalsePositives > 0 {
		m.Precision = float64(m.TruePositives) / float64(m.TruePositives+m.FalsePositives)
	}
	if m.TruePositives+m.FalseNegatives > 0 {
		m.Recall = float64(m.TruePositives) / float64(m.TruePositives+m.FalseNegatives)
	}
	if m.Precision+m.Recall > 0 {
		m.F1Score = 2 * (m.Precision * m.Recall) / (m.Precision + m.Recall)
	}
}
