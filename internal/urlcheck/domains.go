package urlcheck

// shortenerDomains lists known URL-redirection services. A link through any
// of these hides its final destination, which is itself a risk signal.
var shortenerDomains = map[string]struct{}{
	"bit.ly": {}, "tinyurl.com": {}, "goo.gl": {}, "t.co": {}, "ow.ly": {},
	"is.gd": {}, "buff.ly": {}, "adf.ly": {}, "bl.ink": {}, "lnkd.in": {},
	"shorte.st": {}, "mcaf.ee": {}, "q.gs": {}, "po.st": {}, "bc.vc": {},
	"twitthis.com": {}, "u.to": {}, "j.mp": {}, "buzurl.com": {}, "cutt.us": {},
	"u.bb": {}, "yourls.org": {}, "x.co": {}, "prettylinkpro.com": {},
	"scrnch.me": {}, "filoops.info": {}, "vzturl.com": {}, "qr.net": {},
	"1url.com": {}, "tweez.me": {}, "v.gd": {}, "tr.im": {}, "link.zip": {},
	"short.link": {}, "tiny.cc": {},
}

// trustedDomains is the allowlist of well-known domains. Anything outside it
// is treated as suspicious by default (conservative policy); membership is
// checked against both the full host and its last two labels.
var trustedDomains = map[string]struct{}{
	// social
	"facebook.com": {}, "twitter.com": {}, "instagram.com": {},
	"linkedin.com": {}, "youtube.com": {}, "tiktok.com": {},
	"snapchat.com": {}, "reddit.com": {}, "pinterest.com": {},
	"whatsapp.com": {},

	// tech and services
	"google.com": {}, "gmail.com": {}, "microsoft.com": {}, "apple.com": {},
	"amazon.com": {}, "netflix.com": {}, "spotify.com": {}, "dropbox.com": {},
	"zoom.us": {}, "slack.com": {},

	// banking and finance
	"paypal.com": {}, "visa.com": {}, "mastercard.com": {}, "chase.com": {},
	"bankofamerica.com": {},

	// government and education
	"gob.pe": {}, "gov": {}, "edu": {}, "ac.uk": {}, "edu.pe": {},

	// e-commerce
	"ebay.com": {}, "aliexpress.com": {}, "mercadolibre.com": {},
	"walmart.com": {},

	// news
	"bbc.com": {}, "cnn.com": {}, "nytimes.com": {}, "theguardian.com": {},
	"reuters.com": {},
}

// suspiciousTokens are brand and security-sensitive substrings that fraud
// domains impersonate (secure-paypal-login.com and friends)
var suspiciousTokens = []string{
	"secure", "verify", "account", "login", "signin", "update",
	"confirm", "banking", "paypal", "amazon", "apple", "microsoft",
	"netflix", "facebook", "google", "bank", "wallet", "crypto",
}
