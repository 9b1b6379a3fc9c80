// Package urlcheck scores the trustworthiness of individual URLs: shortener
// detection, IP-literal detection, a trusted-domain allowlist and
// brand-impersonation heuristics. Every function is a pure transformation of
// its input; the Analyzer adds an explicit, output-transparent memo cache.
package urlcheck

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/shieldsms/smishing-filter/internal/core"
	"github.com/shieldsms/smishing-filter/internal/telemetry"
)

var (
	reValidURL = regexp.MustCompile(
		`^(?:http|https)://[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
			`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*` +
			`(?:/[^\s]*)?$|^www\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
			`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*(?:/[^\s]*)?$`)

	reIPv4 = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
)

// risk score composition; additive, clamped to [0,1]
const (
	riskShortened     = 0.4
	riskIPLiteral     = 0.3
	riskSuspicious    = 0.3 // only when not already scored as a shortener
	riskDomainLength  = 0.1
	riskSubdomains    = 0.2
	minDomainLength   = 5
	maxDomainLength   = 50
	maxSubdomainDepth = 3
)

// ValidateURL reports whether the string looks like a well-formed http(s)
// or www URL
func ValidateURL(rawURL string) bool {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return false
	}
	return reValidURL.MatchString(rawURL)
}

// ExtractDomain returns the lowercase host of a URL with any leading "www."
// stripped, keeping remaining subdomains. A missing scheme is tolerated;
// unparseable input yields the empty string.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "http://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	return host
}

// IsShortened reports whether the URL points at a known shortener service
func IsShortened(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	_, ok := shortenerDomains[ExtractDomain(rawURL)]
	return ok
}

// isTrusted checks the allowlist against the full host and, for multi-label
// hosts, against the last two labels (mail.google.com -> google.com)
func isTrusted(domain string) bool {
	if _, ok := trustedDomains[domain]; ok {
		return true
	}
	labels := strings.Split(domain, ".")
	if len(labels) >= 2 {
		base := strings.Join(labels[len(labels)-2:], ".")
		if _, ok := trustedDomains[base]; ok {
			return true
		}
	}
	return false
}

// IsSuspicious reports whether a URL is potentially dangerous. Shorteners,
// IP literals, unparseable hosts and brand-impersonating domains are all
// suspicious; so is any domain absent from the trusted allowlist — unknown
// means suspicious, not neutral.
func IsSuspicious(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	if IsShortened(rawURL) {
		return true
	}
	if reIPv4.MatchString(rawURL) {
		return true
	}

	domain := ExtractDomain(rawURL)
	if domain == "" {
		return true
	}
	if isTrusted(domain) {
		return false
	}

	for _, token := range suspiciousTokens {
		if strings.Contains(domain, token) {
			return true
		}
	}

	// Not allowlisted: conservative default
	return true
}

// Analyzer performs full URL risk analysis with a bounded memo cache keyed
// by the exact URL string. The cache is an optimization only: disabling it
// (capacity 0) changes nothing about the results.
type Analyzer struct {
	cache     *resultCache
	telemetry *telemetry.Provider
}

// DefaultCacheCapacity bounds the memo cache when no capacity is configured
const DefaultCacheCapacity = 256

// NewAnalyzer creates an analyzer whose memo cache holds up to capacity
// entries; capacity <= 0 disables memoization
func NewAnalyzer(capacity int, tp *telemetry.Provider) *Analyzer {
	var cache *resultCache
	if capacity > 0 {
		cache = newResultCache(capacity)
	}
	return &Analyzer{cache: cache, telemetry: tp}
}

// Analyze scores a single URL's risk. The score is additive over the signals
// (shortener, IP literal, suspicion outside the shortener case, degenerate
// domain length, excessive subdomain depth) and clamped to [0,1].
func (a *Analyzer) Analyze(rawURL string) core.URLRiskResult {
	if rawURL == "" {
		return core.URLRiskResult{}
	}

	if a.cache != nil {
		if cached, ok := a.cache.get(rawURL); ok {
			return cached
		}
	}

	a.telemetry.RecordURLAnalysis()

	result := core.URLRiskResult{
		Domain:       ExtractDomain(rawURL),
		IsShortened:  IsShortened(rawURL),
		IsSuspicious: IsSuspicious(rawURL),
	}

	score := 0.0
	if result.IsShortened {
		score += riskShortened
	}
	if reIPv4.MatchString(rawURL) {
		score += riskIPLiteral
	}
	if result.IsSuspicious && !result.IsShortened {
		score += riskSuspicious
	}
	if result.Domain != "" {
		if len(result.Domain) < minDomainLength || len(result.Domain) > maxDomainLength {
			score += riskDomainLength
		}
		if strings.Count(result.Domain, ".") > maxSubdomainDepth {
			score += riskSubdomains
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	result.RiskScore = score

	if a.cache != nil {
		a.cache.put(rawURL, result)
	}
	return result
}
