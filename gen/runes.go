package gen

import (
	"unicode"
	"unicode/utf8"

	"gopbt/ranges"
)

// Generate runes between lo and hi. Shrinks towards lo.
func Rune(lo, hi rune) Gen[rune] {
	return Integral(ranges.Constant(lo, hi))
}

func Digit() Gen[rune] {
	return Rune('0', '9')
}

func Lower() Gen[rune] {
	return Rune('a', 'z')
}

func Upper() Gen[rune] {
	return Rune('A', 'Z')
}

func Alpha() Gen[rune] {
	return Choice(Lower(), Upper())
}

func AlphaNum() Gen[rune] {
	return Choice(Lower(), Upper(), Digit())
}

func Latin1() Gen[rune] {
	return Rune(0, unicode.MaxLatin1)
}

// Any code point, including surrogate halves which are not valid runes
func UnicodeAll() Gen[rune] {
	return Rune(0, unicode.MaxRune)
}

// Valid unicode code points
func Unicode() Gen[rune] {
	return Filter(UnicodeAll(), utf8.ValidRune)
}

func Bool() Gen[bool] {
	return Item(false, true)
}
