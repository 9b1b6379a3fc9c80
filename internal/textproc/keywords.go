package textproc

// suspiciousKeywords is the fixed bilingual (Spanish/English) indicator set,
// distilled from smishing corpora such as SMSSpamCollection. Matching is
// whole-word and case-insensitive; entries with several words match as a
// normalized token sequence.
var suspiciousKeywords = []string{
	// Spanish
	"premio", "gana", "ganador", "ganaste", "click", "urgente", "gratis",
	"felicidades", "código", "codigo", "verificar", "verifica", "cuenta",
	"banco", "tarjeta", "llamar", "llama", "contactar", "responder",
	"oferta", "descuento", "promoción", "limitado", "ahora", "inmediato",
	"confirmar", "actualizar", "bloquear", "suspender", "caducar",
	"contraseña", "clave", "pin", "seguridad", "acceso",

	// English
	"winner", "won", "win", "free", "urgent", "congratulations", "congrats",
	"prize", "claim", "verify", "account", "bank", "card", "credit",
	"password", "security", "code", "call", "text", "reply",
	"offer", "discount", "promotion", "limited", "now", "immediately",
	"confirm", "update", "block", "suspend", "expire", "expired",
	"guaranteed", "cash", "bonus", "reward", "gift", "mobile",
	"txt", "msg", "stop", "unsubscribe", "opt-out", "customer",
	"service", "support", "helpdesk", "important", "alert",
	"warning", "notice", "final", "last", "chance", "opportunity",
}

// urgencyPhrases feed the secondary urgency rule. Unlike the keyword set
// these are matched as raw case-insensitive substrings, so multi-word
// pressure phrases count too.
var urgencyPhrases = []string{
	"urgente", "urgent", "inmediato", "inmediatamente", "immediately",
	"right now", "ahora mismo", "act now", "actúa ya", "asap",
	"expira", "expires", "vence hoy", "last chance", "última oportunidad",
	"ultima oportunidad", "final notice", "aviso final", "time sensitive",
	"responde ya", "hurry",
}
