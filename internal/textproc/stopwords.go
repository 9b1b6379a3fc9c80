package textproc

// Spanish and English stopwords removed by CleanText. A fixed table rather
// than a corpus download keeps the normalizer pure and dependency-free.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range stopwordList {
		stopwords[w] = struct{}{}
	}
}

var stopwordList = []string{
	// Spanish
	"el", "la", "los", "las", "un", "una", "unos", "unas", "de", "del",
	"a", "al", "ante", "bajo", "con", "contra", "desde", "durante", "en",
	"entre", "hacia", "hasta", "para", "por", "según", "sin", "sobre",
	"tras", "y", "e", "o", "u", "ni", "que", "como", "cuando", "donde",
	"quien", "cual", "cuyo", "este", "esta", "estos", "estas", "ese",
	"esa", "esos", "esas", "aquel", "aquella", "mi", "tu", "su", "mis",
	"tus", "sus", "nuestro", "nuestra", "yo", "me", "te", "se", "nos",
	"os", "le", "les", "lo", "es", "son", "era", "eran", "fue", "fueron",
	"ser", "estar", "está", "están", "estás", "estaba", "hay", "ha",
	"han", "he", "has", "muy", "más", "menos", "pero", "si", "no", "ya",
	"también", "sólo", "solo", "todo", "toda", "todos", "todas", "otro",
	"otra", "otros", "otras", "mismo", "misma", "cada",

	// English
	"the", "a", "an", "and", "or", "but", "if", "then", "else", "when",
	"at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under",
	"again", "further", "once", "here", "there", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "such", "only",
	"own", "same", "so", "than", "too", "very", "can", "will", "just",
	"should", "i", "me", "my", "myself", "we", "our", "ours", "you",
	"your", "yours", "he", "him", "his", "she", "her", "hers", "it",
	"its", "they", "them", "their", "what", "which", "who", "whom",
	"this", "that", "these", "those", "am", "is", "are", "was", "were",
	"be", "been", "being", "have", "has", "had", "having", "do", "does",
	"did", "doing", "of", "as", "until", "while", "not", "no", "nor",
	"don", "s", "t",
}
