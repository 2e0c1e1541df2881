package hardmode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordletree/wordletree/hardmode"
	"github.com/wordletree/wordletree/word"
)

func TestTable_Reflexive(t *testing.T) {
	table := hardmode.Build()
	for c := 0; c < hardmode.NumCodes; c++ {
		require.Truef(t, table.Compatible(word.Code(c), word.Code(c)), "code %d should be self-compatible", c)
	}
}

func TestTable_SolvedDominatesEverything(t *testing.T) {
	table := hardmode.Build()
	solved := word.Solved(5)
	for c := 0; c < hardmode.NumCodes; c++ {
		require.Truef(t, table.Compatible(solved, word.Code(c)), "solved should dominate code %d", c)
	}
}

func TestTable_AllBlackOnlyCompatibleWithItself(t *testing.T) {
	table := hardmode.Build()
	allBlack := word.Code(0)
	for c := 0; c < hardmode.NumCodes; c++ {
		got := table.Compatible(allBlack, word.Code(c))
		require.Equal(t, c == 0, got)
	}
}

func TestTable_Transitive(t *testing.T) {
	table := hardmode.Build()
	// Spot-check transitivity on a sample of triples rather than all
	// 243^3 combinations.
	for p := 0; p < hardmode.NumCodes; p += 7 {
		for q := 0; q < hardmode.NumCodes; q += 11 {
			for r := 0; r < hardmode.NumCodes; r += 13 {
				if table.Compatible(word.Code(p), word.Code(q)) && table.Compatible(word.Code(q), word.Code(r)) {
					require.Truef(t, table.Compatible(word.Code(p), word.Code(r)),
						"transitivity failed for p=%d q=%d r=%d", p, q, r)
				}
			}
		}
	}
}

func TestTable_MatchesDirectTritComparison(t *testing.T) {
	table := hardmode.Build()
	for _, pair := range [][2]word.Code{{15, 0}, {121, 15}, {242, 100}, {100, 242}} {
		p, q := pair[0], pair[1]
		pt := word.Trits(p, 5)
		qt := word.Trits(q, 5)
		want := true
		for i := range pt {
			if pt[i] < qt[i] {
				want = false
				break
			}
		}
		require.Equal(t, want, table.Compatible(p, q))
	}
}
