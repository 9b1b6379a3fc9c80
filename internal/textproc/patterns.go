package textproc

import (
	"regexp"
)

// Pre-compiled extraction patterns (compiled once, used on every message)
var (
	reURLHTTP   = regexp.MustCompile(`https?://[^\s]+`)
	reURLWWW    = regexp.MustCompile(`www\.[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	reURLDomain = regexp.MustCompile(`\b[a-zA-Z0-9-]+\.[a-zA-Z]{2,}\b`)

	reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// standalone digit runs of 3+ (phone numbers, verification codes)
	reNumber = regexp.MustCompile(`\b\d{3,}\b`)

	// four independent monetary formats, extracted in this order
	reMoneyDollar   = regexp.MustCompile(`\$\s*\d+(?:,\d{3})*(?:\.\d{2})?`)
	reMoneyCurrency = regexp.MustCompile(`(?i)\b\d+(?:,\d{3})*(?:\.\d{2})?\s*(?:USD|EUR|GBP|PEN|SOL|SOLES)\b`)
	reMoneySoles    = regexp.MustCompile(`S/\s*\d+(?:,\d{3})*(?:\.\d{2})?`)
	reMoneyPound    = regexp.MustCompile(`£\s*\d+(?:,\d{3})*(?:\.\d{2})?`)
)
