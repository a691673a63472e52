// Package textcheck contains the heuristics that decide whether HR-authored
// text is meaningful or placeholder/gibberish input.
package textcheck

import (
	"regexp"
	"strings"
	"unicode"
)

// Common throwaway tokens people type to get past required fields,
// optionally suffixed with digits ("test123").
var placeholderRe = regexp.MustCompile(`^(?i)(test|asd|qwe|zxc|abc|xyz|lorem|ipsum|placeholder|sample|example|demo|temp|tmp)[0-9]*$`)

var allDigitsRe = regexp.MustCompile(`^[0-9]+$`)

// Canonical keyboard rows; any 5-character window of these counts as mashing.
var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

// IsGibberish reports whether text looks like placeholder or keyboard-mash
// input rather than meaningful content. Total and deterministic: any input,
// including the empty string, yields a boolean.
func IsGibberish(text string) bool {
	trimmed := strings.TrimSpace(text)

	if hasRepeatedRun(trimmed, 5) {
		return true
	}
	if placeholderRe.MatchString(trimmed) {
		return true
	}
	if allDigitsRe.MatchString(trimmed) {
		return true
	}
	if CountLetters(trimmed) == 0 {
		return true
	}
	if onlyPunctuation(trimmed) {
		return true
	}

	lower := strings.ToLower(trimmed)
	for _, row := range keyboardRows {
		for i := 0; i+5 <= len(row); i++ {
			if strings.Contains(lower, row[i:i+5]) {
				return true
			}
		}
	}

	return false
}

// IsPlaceholderToken reports whether text exactly matches one of the known
// placeholder tokens, case-insensitively and ignoring a digit suffix.
func IsPlaceholderToken(text string) bool {
	return placeholderRe.MatchString(strings.TrimSpace(text))
}

// CountLetters returns the number of ASCII alphabetic characters in text.
func CountLetters(text string) int {
	count := 0
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			count++
		}
	}
	return count
}

// UniqueWordRatio returns distinct words over total words, case-insensitive.
// Zero words yields 0.
func UniqueWordRatio(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		seen[w] = true
	}
	return float64(len(seen)) / float64(len(words))
}

// hasRepeatedRun reports whether text contains n or more consecutive
// identical characters. RE2 has no backreferences, so this is a loop.
func hasRepeatedRun(text string, n int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

// onlyPunctuation reports whether every character is punctuation, a symbol
// or whitespace.
func onlyPunctuation(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
