package kata

import "strings"

// IsPangram reports whether text contains every letter of the English
// alphabet at least once. Case is ignored; the empty string is not a pangram.
func IsPangram(text string) bool {
	lower := strings.ToLower(text)
	for c := 'a'; c <= 'z'; c++ {
		if !strings.ContainsRune(lower, c) {
			return false
		}
	}
	return true
}

// MissingLetters returns the letters 'a' through 'z' that do not occur in
// text, in alphabetical order. It returns nil for a pangram.
func MissingLetters(text string) []rune {
	var seen [26]bool
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			seen[r-'a'] = true
		}
	}

	var missing []rune
	for i, ok := range seen {
		if !ok {
			missing = append(missing, rune('a'+i))
		}
	}
	return missing
}
