// Package kana provides pure script utilities for Japanese text: kana
// conversion, Hepburn romanization, and script range checks.
package kana

import "strings"

// KatakanaToHiragana converts fullwidth katakana to hiragana. The prolonged
// sound mark and characters outside the katakana block pass through unchanged.
func KatakanaToHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'ァ' && r <= 'ヶ' {
			r -= 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}

// HiraganaToKatakana converts hiragana to fullwidth katakana.
func HiraganaToKatakana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'ぁ' && r <= 'ゖ' {
			r += 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsHiragana reports whether r is in the hiragana block.
func IsHiragana(r rune) bool { return r >= 0x3040 && r <= 0x309F }

// IsKatakana reports whether r is in the fullwidth katakana block.
func IsKatakana(r rune) bool { return r >= 0x30A0 && r <= 0x30FF }

// IsKana reports whether r is hiragana or katakana.
func IsKana(r rune) bool { return IsHiragana(r) || IsKatakana(r) }

// IsKanji reports whether r is a CJK ideograph.
func IsKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0xF900 && r <= 0xFAFF)
}

// japaneseRanges covers the blocks a Japanese subtitle line may legitimately
// use, including CJK punctuation and half/fullwidth forms.
var japaneseRanges = [][2]rune{
	{0x3000, 0x303F}, // CJK symbols and punctuation
	{0x3040, 0x309F}, // hiragana
	{0x30A0, 0x30FF}, // katakana
	{0x3190, 0x319F}, // kanbun
	{0x31F0, 0x31FF}, // katakana phonetic extensions
	{0x3200, 0x32FF}, // enclosed CJK letters and months
	{0x3300, 0x33FF}, // CJK compatibility
	{0x3400, 0x4DBF}, // CJK unified ideographs extension A
	{0x4E00, 0x9FFF}, // CJK unified ideographs
	{0xF900, 0xFAFF}, // CJK compatibility ideographs
	{0xFE30, 0xFE4F}, // CJK compatibility forms
	{0xFF00, 0xFFEF}, // halfwidth and fullwidth forms
}

// IsJapanese reports whether every rune of s falls inside the Japanese
// script ranges. The empty string counts as Japanese.
func IsJapanese(s string) bool {
	for _, r := range s {
		inside := false
		for _, rg := range japaneseRanges {
			if r >= rg[0] && r <= rg[1] {
				inside = true
				break
			}
		}
		if !inside {
			return false
		}
	}
	return true
}
