// Package textproc turns raw SMS text into the typed feature lists and
// statistics consumed by the rule scorer. All extractors are pure functions:
// any input, including empty or malformed text, yields a well-defined result
// and never a panic.
package textproc

import (
	"sort"
	"strings"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"golang.org/x/text/unicode/norm"

	"github.com/shieldsms/smishing-filter/internal/core"
)

// keywordMatcher is an Aho-Corasick trie over the indicator keywords. Both
// the patterns and the scanned text are normalized to space-separated tokens
// and space-padded, which makes the trie lookup a whole-word match: "pin"
// cannot fire inside "opinion".
var (
	keywordMatcher *ahocorasick.Matcher
	paddedKeywords []string
)

func init() {
	paddedKeywords = make([]string, len(suspiciousKeywords))
	for i, kw := range suspiciousKeywords {
		paddedKeywords[i] = " " + normalizeForMatch(kw) + " "
	}
	keywordMatcher = ahocorasick.NewStringMatcher(paddedKeywords)
}

// normalizeForMatch lowercases, NFC-composes accents and replaces every
// non-alphanumeric rune with a space, preserving word boundaries
func normalizeForMatch(text string) string {
	text = strings.ToLower(norm.NFC.String(text))

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// ExtractURLs returns the URLs found in text: http(s) matches first, then
// www matches, then bare domain tokens. A bare domain already contained in
// an earlier match is skipped.
func ExtractURLs(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	urls := []string{}
	urls = append(urls, reURLHTTP.FindAllString(text, -1)...)
	urls = append(urls, reURLWWW.FindAllString(text, -1)...)

	for _, domain := range reURLDomain.FindAllString(text, -1) {
		contained := false
		for _, u := range urls {
			if strings.Contains(u, domain) {
				contained = true
				break
			}
		}
		if !contained {
			urls = append(urls, domain)
		}
	}

	return urls
}

// ExtractEmails returns the email addresses found in text
func ExtractEmails(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	matches := reEmail.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// ExtractNumbers returns standalone digit runs of three or more digits
// (phone numbers, verification codes); shorter tokens are ignored
func ExtractNumbers(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	matches := reNumber.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// ExtractAmounts returns monetary amounts in any of the four supported
// formats ($, trailing currency code, S/, £). The formats are matched
// independently, so an amount written in two recognizable ways appears once
// per format.
func ExtractAmounts(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	amounts := []string{}
	amounts = append(amounts, reMoneyDollar.FindAllString(text, -1)...)
	amounts = append(amounts, reMoneyCurrency.FindAllString(text, -1)...)
	amounts = append(amounts, reMoneySoles.FindAllString(text, -1)...)
	amounts = append(amounts, reMoneyPound.FindAllString(text, -1)...)
	return amounts
}

// ExtractKeywords returns the distinct suspicious keywords present in text,
// in keyword-table order. Repeated occurrences collapse to one entry.
func ExtractKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	padded := " " + normalizeForMatch(text) + " "
	hits := keywordMatcher.Match([]byte(padded))
	if len(hits) == 0 {
		return []string{}
	}

	sort.Ints(hits)
	found := make([]string, 0, len(hits))
	for _, idx := range hits {
		if idx < len(suspiciousKeywords) {
			found = append(found, suspiciousKeywords[idx])
		}
	}
	return found
}

// ContainsUrgency reports whether any urgency phrase appears in text as a
// case-insensitive substring
func ContainsUrgency(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range urgencyPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// ExtractAll runs every extractor and computes the raw-text statistics,
// bundling them into a single feature set
func ExtractAll(text string) core.FeatureSet {
	fs := core.FeatureSet{
		URLs:     ExtractURLs(text),
		Emails:   ExtractEmails(text),
		Numbers:  ExtractNumbers(text),
		Amounts:  ExtractAmounts(text),
		Keywords: ExtractKeywords(text),
	}

	var letters, uppers int
	for _, r := range text {
		fs.Length++
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
		if r == '!' {
			fs.ExclamationCount++
		}
	}
	if letters > 0 {
		fs.UppercaseRatio = float64(uppers) / float64(letters)
	}
	fs.UrgencyPresent = ContainsUrgency(text)

	for _, category := range [][]string{fs.URLs, fs.Keywords, fs.Emails, fs.Numbers, fs.Amounts} {
		if len(category) > 0 {
			fs.IndicatorCount++
		}
	}

	return fs
}
