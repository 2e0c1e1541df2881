package word

import (
	"errors"
	"fmt"
)

// Sentinel errors for word-set construction and loading.
var (
	// ErrEmptySet is returned when a word list has zero entries.
	ErrEmptySet = errors.New("word: set is empty")

	// ErrInconsistentLength indicates a word whose length differs from the
	// set's established length.
	ErrInconsistentLength = errors.New("word: inconsistent word length")

	// ErrMalformedWord indicates a word containing bytes outside a-z.
	ErrMalformedWord = errors.New("word: malformed word, expected lowercase a-z")

	// ErrPrefixMismatch indicates the guesses set does not carry the
	// targets set as its leading prefix.
	ErrPrefixMismatch = errors.New("word: guesses set does not prefix-match targets set")
)

// Code is a base-3 encoded Wordle feedback value in [0, 3^L).
// Trit 0 = absent (black), 1 = present-but-misplaced (yellow), 2 = correct (green).
type Code uint8

// Set is an immutable, ordered, fixed-length lowercase word list.
// Identity of a word is its index; Set never reorders or deduplicates.
type Set struct {
	words  []string
	length int
	index  map[string]int
}

// NewSet validates words (non-empty, uniform length, lowercase a-z) and
// returns an immutable Set. Load order is preserved.
func NewSet(words []string) (*Set, error) {
	if len(words) == 0 {
		return nil, ErrEmptySet
	}

	length := len(words[0])
	index := make(map[string]int, len(words))
	for i, w := range words {
		if len(w) != length {
			return nil, fmt.Errorf("word: entry %d (%q): %w", i, w, ErrInconsistentLength)
		}
		if err := validateLowercase(w); err != nil {
			return nil, fmt.Errorf("word: entry %d (%q): %w", i, w, err)
		}
		// First occurrence wins for index lookup; duplicates are not
		// deduplicated from the ordered list (spec: "not expected and are
		// not deduplicated"), but Index must still answer something.
		if _, exists := index[w]; !exists {
			index[w] = i
		}
	}

	return &Set{words: words, length: length, index: index}, nil
}

// validateLowercase returns ErrMalformedWord if w contains any byte outside 'a'-'z'.
func validateLowercase(w string) error {
	for _, c := range []byte(w) {
		if c < 'a' || c > 'z' {
			return ErrMalformedWord
		}
	}
	return nil
}

// Len returns the number of words in the set.
func (s *Set) Len() int { return len(s.words) }

// Length returns the fixed word length L shared by every entry.
func (s *Set) Length() int { return s.length }

// Word returns the word at index i.
func (s *Set) Word(i int) string { return s.words[i] }

// Index returns the index of word w and whether it was found.
func (s *Set) Index(w string) (int, bool) {
	i, ok := s.index[w]
	return i, ok
}

// Encode returns the word at index i as a byte slice with values 0-25
// (a=0 .. z=25), suitable for the feedback oracle.
func (s *Set) Encode(i int) []byte {
	w := s.words[i]
	enc := make([]byte, len(w))
	for j := 0; j < len(w); j++ {
		enc[j] = w[j] - 'a'
	}
	return enc
}

// ValidatePrefix reports ErrPrefixMismatch unless guesses.Word(i) ==
// targets.Word(i) for every i < targets.Len() — the invariant that lets
// every package treat "is guess index g also a target" as g < targets.Len().
func ValidatePrefix(targets, guesses *Set) error {
	if guesses.Len() < targets.Len() {
		return fmt.Errorf("word: guesses has %d entries, fewer than %d targets: %w",
			guesses.Len(), targets.Len(), ErrPrefixMismatch)
	}
	for i := 0; i < targets.Len(); i++ {
		if targets.Word(i) != guesses.Word(i) {
			return fmt.Errorf("word: target %d (%q) != guess %d (%q): %w",
				i, targets.Word(i), i, guesses.Word(i), ErrPrefixMismatch)
		}
	}
	return nil
}
