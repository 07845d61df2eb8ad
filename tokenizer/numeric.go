package tokenizer

// windows1252Fixup implements the numeric character reference end state's
// compatibility table (spec section 4.2/6): certain C1-control code points
// historically produced by Windows-1252-encoded documents are remapped to
// their intended Unicode characters instead of being left as controls.
var windows1252Fixup = map[int64]rune{
	0x80: 0x20AC,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8E: 0x017D,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9E: 0x017E,
	0x9F: 0x0178,
}

// maxCharrefCode bounds accumulation so a pathologically long digit run
// cannot overflow charrefCode; any value at or above this is already well
// past the 0x10FFFF ceiling the numeric character reference end state
// clamps to.
const maxCharrefCode = 1 << 32
