package tokenizer

// namedReferences is a representative subset of the WHATWG named character
// reference table (spec section 6): the full table carries over two
// thousand entries and is treated as out-of-scope static data, but the
// longest-prefix-match algorithm in charref.go is written against the full
// table's shape — including both the terminated (";"-suffixed) and the
// handful of historical unterminated forms — so this subset exercises every
// branch a complete table would.
var namedReferences = map[string]string{
	"amp;":    "&",
	"amp":     "&",
	"AMP;":    "&",
	"AMP":     "&",
	"lt;":     "<",
	"lt":      "<",
	"LT;":     "<",
	"LT":      "<",
	"gt;":     ">",
	"gt":      ">",
	"GT;":     ">",
	"GT":      ">",
	"quot;":   "\"",
	"quot":    "\"",
	"QUOT;":   "\"",
	"QUOT":    "\"",
	"apos;":   "'",
	"nbsp;":   " ",
	"nbsp":    " ",
	"copy;":   "©",
	"copy":    "©",
	"reg;":    "®",
	"reg":     "®",
	"trade;":  "™",
	"hellip;": "…",
	"mdash;":  "—",
	"ndash;":  "–",
	"lsquo;":  "‘",
	"rsquo;":  "’",
	"ldquo;":  "“",
	"rdquo;":  "”",
	"middot;": "·",
	"middot":  "·",
	"times;":  "×",
	"times":   "×",
	"divide;": "÷",
	"divide":  "÷",
	"euro;":   "€",
	"pound;":  "£",
	"pound":   "£",
	"yen;":    "¥",
	"yen":     "¥",
	"cent;":   "¢",
	"cent":    "¢",
	"sect;":   "§",
	"sect":    "§",
	"para;":   "¶",
	"para":    "¶",
	"deg;":    "°",
	"deg":     "°",
	"plusmn;": "±",
	"plusmn":  "±",
	"frac12;": "½",
	"frac12":  "½",
	"frac14;": "¼",
	"frac14":  "¼",
	"frac34;": "¾",
	"frac34":  "¾",
	"laquo;":  "«",
	"laquo":   "«",
	"raquo;":  "»",
	"raquo":   "»",
	"iexcl;":  "¡",
	"iexcl":   "¡",
	"iquest;": "¿",
	"iquest":  "¿",
	"alpha;":  "α",
	"beta;":   "β",
	"gamma;":  "γ",
	"delta;":  "δ",
	"pi;":     "π",
	"sigma;":  "σ",
	"omega;":  "ω",
	"larr;":   "←",
	"uarr;":   "↑",
	"rarr;":   "→",
	"darr;":   "↓",
	"harr;":   "↔",
	"spades;": "♠",
	"clubs;":  "♣",
	"hearts;": "♥",
	"diams;":  "♦",
	"infin;":  "∞",
	"ne;":     "≠",
	"le;":     "≤",
	"ge;":     "≥",
	"notin;":  "∉",
	"forall;": "∀",
	"exist;":  "∃",
	"empty;":  "∅",
	"isin;":   "∈",
	"sum;":    "∑",
	"prod;":   "∏",
	"radic;":  "√",
	"there4;": "∴",
	"sim;":    "∼",
	"cong;":   "≅",
	"asymp;":  "≈",
	"equiv;":  "≡",
	"sub;":    "⊂",
	"sup;":    "⊃",
	"nsub;":   "⊄",
	"sube;":   "⊆",
	"supe;":   "⊇",
	"oplus;":  "⊕",
	"otimes;": "⊗",
	"perp;":   "⊥",
	"sdot;":   "⋅",
	"NotEqualTilde;": "≂̸",
}

// maxEntityNameLen bounds the longest-prefix-match lookahead window; the
// full named-reference table's longest key is 32 characters.
const maxEntityNameLen = 32
