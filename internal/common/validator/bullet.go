package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/textcheck"
)

// ValidateBulletItem checks a single bullet-list entry (responsibility or
// qualification). Rules run in a fixed order and the first failure determines
// the message, so error text stays deterministic.
func ValidateBulletItem(item string, minLength int) (bool, string) {
	trimmed := strings.TrimSpace(item)

	if utf8.RuneCountInString(trimmed) < minLength {
		return false, fmt.Sprintf("must be at least %d characters", minLength)
	}
	if textcheck.CountLetters(trimmed) < 10 {
		return false, "must contain meaningful text"
	}
	if textcheck.IsGibberish(trimmed) {
		return false, "looks like placeholder or gibberish text"
	}
	// Shadowed by the letter-count rule above (such items never have 10+
	// letters), but kept to preserve the documented rule order.
	if onlyDigitsOrSymbols(trimmed) {
		return false, "must not contain only numbers or symbols"
	}

	return true, ""
}

// ValidateBulletList checks an ordered bullet list: a minimum item count plus
// every item individually. Item messages are 1-indexed.
func ValidateBulletList(items []string, minItems, itemMinLength int) (bool, []string) {
	var errs []string

	if len(items) < minItems {
		errs = append(errs, fmt.Sprintf("at least %d items are required (currently %d)", minItems, len(items)))
	}

	for i, item := range items {
		if ok, msg := ValidateBulletItem(item, itemMinLength); !ok {
			errs = append(errs, fmt.Sprintf("item %d: %s", i+1, msg))
		}
	}

	return len(errs) == 0, errs
}

func onlyDigitsOrSymbols(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return text != ""
}
