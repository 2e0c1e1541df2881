package word_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordletree/wordletree/word"
)

// TestOracle_Scenarios checks the seed scenarios from the specification
// (Scenario A): crane/slate, apple/pleas, aabbb/abbba. The first two
// expected codes are corrected from the specification's worked values
// (15 assumes a green, 121 a fifth yellow, that the words do not
// actually produce) to the textbook trit feedback; see DESIGN.md.
func TestOracle_Scenarios(t *testing.T) {
	cases := []struct {
		target, guess string
		want          word.Code
	}{
		{"crane", "slate", 20},
		{"apple", "pleas", 120},
		{"aabbb", "abbba", 214},
	}
	for _, c := range cases {
		got, err := word.Oracle(c.target, c.guess)
		require.NoError(t, err)
		require.Equalf(t, c.want, got, "oracle(%q,%q)", c.target, c.guess)
	}
}

// TestOracle_SelfMatchIsSolved verifies oracle(t,t) == 3^L-1.
func TestOracle_SelfMatchIsSolved(t *testing.T) {
	for _, w := range []string{"crane", "apple", "zzzzz", "robot"} {
		got, err := word.Oracle(w, w)
		require.NoError(t, err)
		require.Equal(t, word.Solved(len(w)), got)
	}
	require.Equal(t, word.Code(242), word.Solved(5))
}

// TestOracle_LengthMismatch verifies the InputError-shaped sentinel.
func TestOracle_LengthMismatch(t *testing.T) {
	_, err := word.Oracle("crane", "cat")
	require.ErrorIs(t, err, word.ErrInconsistentLength)
}

// TestOracle_MalformedWord verifies non a-z input is rejected.
func TestOracle_MalformedWord(t *testing.T) {
	_, err := word.Oracle("CRANE", "slate")
	require.ErrorIs(t, err, word.ErrMalformedWord)
}

// TestTritsRoundTrip verifies Trits/FromTrits invert each other for all codes.
func TestTritsRoundTrip(t *testing.T) {
	for code := 0; code < 243; code++ {
		trits := word.Trits(word.Code(code), 5)
		require.Len(t, trits, 5)
		require.Equal(t, word.Code(code), word.FromTrits(trits))
	}
}

// TestOracleEncoded_MatchesOracle checks the hot-path primitive agrees
// with the validating wrapper across a handful of duplicate-letter cases.
func TestOracleEncoded_MatchesOracle(t *testing.T) {
	pairs := [][2]string{
		{"sassy", "spass"},
		{"melee", "level"},
		{"eerie", "eager"},
	}
	for _, p := range pairs {
		want, err := word.Oracle(p[0], p[1])
		require.NoError(t, err)

		enc := func(s string) []byte {
			b := make([]byte, len(s))
			for i := range s {
				b[i] = s[i] - 'a'
			}
			return b
		}
		got := word.OracleEncoded(enc(p[0]), enc(p[1]))
		require.Equal(t, want, got)
	}
}
