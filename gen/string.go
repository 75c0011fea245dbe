package gen

// Character candidate classes for Char, mirrored by shrink.Char's
// "simpler than" ordering (shrink/char.go) and grounded on the charset
// constants in the teacher's db/proptest/generators.go (CharsetAlpha,
// CharsetDigits, CharsetPrintable, ...), narrowed to exactly the classes
// spec.md §4.3 names.
const (
	CharsetUpper      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetLower      = "abcdefghijklmnopqrstuvwxyz"
	CharsetDigits     = "0123456789"
	CharsetPunct      = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	CharsetWhitespace = " \t\n"
)

var charCandidates = []rune(CharsetUpper + CharsetLower + CharsetDigits + CharsetPunct + CharsetWhitespace)

// Char generates a rune uniformly chosen from the fixed candidate set:
// uppercase letters, lowercase letters, digits, punctuation, space, tab,
// newline.
func Char() Gen[rune] {
	return Choice(charCandidates...)
}

// StringOf generates a string by generating a rune slice with charGen and
// packing it — spec.md §4.3: "Generated as a character array then
// packed."
func StringOf(charGen Gen[rune]) Gen[string] {
	return Map(SliceOf(charGen), func(rs []rune) string { return string(rs) })
}

// String generates a string using Char as the element generator.
func String() Gen[string] {
	return StringOf(Char())
}
