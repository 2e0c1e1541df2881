package word

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadSet reads path as a newline-delimited lowercase word list and
// returns a validated Set. Blank lines are skipped wherever they appear,
// so error messages from NewSet count entries, not file lines.
func LoadSet(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("word: open %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("word: read %s: %w", path, err)
	}

	set, err := NewSet(words)
	if err != nil {
		return nil, fmt.Errorf("word: %s: %w", path, err)
	}
	return set, nil
}

// LoadGame reads solutionsPath and nonSolutionsPath and returns (targets,
// guesses) such that guesses is the concatenation of the solutions list
// followed by the non-solutions list — guaranteeing the prefix invariant
// ValidatePrefix checks: guesses.Word(i) == targets.Word(i) for i <
// targets.Len(). This mirrors the dataset convention in the original
// solver, where all_words == key_words + non_solutions.
func LoadGame(solutionsPath, nonSolutionsPath string) (targets, guesses *Set, err error) {
	targets, err = LoadSet(solutionsPath)
	if err != nil {
		return nil, nil, err
	}
	extra, err := LoadSet(nonSolutionsPath)
	if err != nil {
		return nil, nil, err
	}
	if extra.Length() != targets.Length() {
		return nil, nil, fmt.Errorf("word: %s and %s: %w",
			solutionsPath, nonSolutionsPath, ErrInconsistentLength)
	}

	all := make([]string, 0, targets.Len()+extra.Len())
	all = append(all, targetsWords(targets)...)
	all = append(all, targetsWords(extra)...)

	guesses, err = NewSet(all)
	if err != nil {
		return nil, nil, err
	}
	if err := ValidatePrefix(targets, guesses); err != nil {
		return nil, nil, err
	}
	return targets, guesses, nil
}

// targetsWords returns the underlying ordered word slice of a Set.
func targetsWords(s *Set) []string { return s.words }
