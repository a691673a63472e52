package textcheck

import "testing"

func TestIsGibberish(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Senior Backend Developer", false},
		{"Quản lý dự án phần mềm", false},
		{"qwerty", true},      // keyboard row window
		{"aaaaa", true},       // repeated run
		{"baaaaab", true},     // repeated run inside a word
		{"test", true},        // placeholder token
		{"Test123", true},     // placeholder with digit suffix
		{"lorem", true},
		{"1234", true},        // all digits
		{"...!!!", true},      // only punctuation
		{"", true},            // no letters at all
		{"asdfg Developer", true}, // keyboard mash embedded
		{"contest", false},    // placeholder token must match the whole string
		{"abcd", false},       // 4-char window is below the threshold
	}

	for _, tc := range cases {
		if got := IsGibberish(tc.text); got != tc.want {
			t.Errorf("IsGibberish(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestCountLetters(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"a1b2c3", 3},
		{"Hello, World!", 10},
		{"12345", 0},
	}

	for _, tc := range cases {
		if got := CountLetters(tc.text); got != tc.want {
			t.Errorf("CountLetters(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestUniqueWordRatio(t *testing.T) {
	if got := UniqueWordRatio("test test test test"); got != 0.25 {
		t.Errorf("expected ratio 0.25 for repeated word, got %f", got)
	}
	if got := UniqueWordRatio("build reliable backend services"); got != 1.0 {
		t.Errorf("expected ratio 1.0 for unique words, got %f", got)
	}
	if got := UniqueWordRatio(""); got != 0 {
		t.Errorf("expected ratio 0 for empty text, got %f", got)
	}
	// Case-insensitive: "Test" and "test" are the same word.
	if got := UniqueWordRatio("Test test"); got != 0.5 {
		t.Errorf("expected ratio 0.5, got %f", got)
	}
}
