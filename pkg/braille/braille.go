// Package braille converts ASCII text to Unicode Braille glyphs using the
// North American Braille ASCII code (a fixed 64-character lookup table).
package braille

import "strings"

// asciiTable lists the 64 Braille ASCII characters in dot-pattern order.
// The character at index i corresponds to the Braille glyph U+2800+i.
const asciiTable = " A1B'K2L@CIF/MSP\"E3H9O6R^DJG>NTQ,*5<-U8V.%[$+X!&;:4\\0Z7(_?W]#Y)="

// brailleBase is the first codepoint of the Unicode Braille block.
const brailleBase = 0x2800

// Transliterate maps text to Unicode Braille glyphs. Input is uppercased
// first, since the Braille ASCII table only covers uppercase letters.
// Characters outside the table are passed through unchanged, so the output
// always has the same rune count as the input.
func Transliterate(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 3) // Braille glyphs are 3 bytes in UTF-8

	for _, r := range strings.ToUpper(text) {
		idx := strings.IndexRune(asciiTable, r)
		if idx < 0 {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(rune(brailleBase + idx))
	}
	return b.String()
}

// Reverse maps Braille glyphs back to their Braille ASCII characters.
// Runes outside the Braille block are passed through unchanged.
func Reverse(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		idx := int(r) - brailleBase
		if idx < 0 || idx >= len(asciiTable) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(asciiTable[idx])
	}
	return b.String()
}
