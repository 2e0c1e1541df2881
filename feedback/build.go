package feedback

import (
	"github.com/wordletree/wordletree/word"
)

// Builder computes a feedback Matrix for the given target and guess
// sets. BuildScalar and BuildBatched both implement this type so a
// caller can select between them uniformly.
type Builder func(targets, guesses *word.Set) (*Matrix, error)

// DefaultBandBytes bounds the residual-count workspace BuildBatched
// allocates per band: bandRows * guesses.Len() * 26 bytes should stay
// under roughly this many bytes.
const DefaultBandBytes = 256 * 1024 * 1024

// BuildScalar fills F[t,g] with one word.Oracle call per cell. This is
// the reference path every other builder must agree with bit-for-bit.
func BuildScalar(targets, guesses *word.Set) (*Matrix, error) {
	m, err := NewMatrix(targets.Len(), guesses.Len())
	if err != nil {
		return nil, err
	}
	gEnc := make([][]byte, guesses.Len())
	for g := 0; g < guesses.Len(); g++ {
		gEnc[g] = guesses.Encode(g)
	}
	for t := 0; t < targets.Len(); t++ {
		tEnc := targets.Encode(t)
		row := m.Row(t)
		for g := 0; g < guesses.Len(); g++ {
			row[g] = word.OracleEncoded(tEnc, gEnc[g])
		}
	}
	return m, nil
}

// BuildBatched computes the same matrix as BuildScalar using the
// vectorized equality/residual-count shape from the specification:
// for each target/guess pair, first mark exact-position matches and
// decrement residual letter counts, then mark present-but-misplaced
// letters against the residual counts, finally contracting the trit
// vector against the base-3 power vector. It processes T in bands
// bounded by DefaultBandBytes so the residual-count workspace does not
// grow unbounded for large word lists (needed for the hard-mode G×G
// variant).
func BuildBatched(targets, guesses *word.Set) (*Matrix, error) {
	m, err := NewMatrix(targets.Len(), guesses.Len())
	if err != nil {
		return nil, err
	}
	length := targets.Length()
	gCols := guesses.Len()

	band := bandRows(gCols, length)
	if band < 1 {
		band = 1
	}

	gEnc := make([][]byte, gCols)
	for g := 0; g < gCols; g++ {
		gEnc[g] = guesses.Encode(g)
	}

	powers := make([]int, length)
	pow := 1
	for i := length - 1; i >= 0; i-- {
		powers[i] = pow
		pow *= 3
	}

	// Residual-count workspace, reused across bands: one 26-wide row per
	// (band-local target, guess) pair.
	counts := make([]int8, band*gCols*26)
	trits := make([]byte, band*gCols*length)

	for t0 := 0; t0 < targets.Len(); t0 += band {
		t1 := t0 + band
		if t1 > targets.Len() {
			t1 = targets.Len()
		}
		rows := t1 - t0

		for i := range counts[:rows*gCols*26] {
			counts[i] = 0
		}
		for i := range trits[:rows*gCols*length] {
			trits[i] = 0
		}

		for ti := 0; ti < rows; ti++ {
			t := t0 + ti
			tEnc := targets.Encode(t)
			var base [26]int8
			for _, c := range tEnc {
				base[c]++
			}
			for g := 0; g < gCols; g++ {
				cOff := (ti*gCols + g) * 26
				copy(counts[cOff:cOff+26], base[:])
			}

			trOff := ti * gCols * length
			for g := 0; g < gCols; g++ {
				guess := gEnc[g]
				cOff := (ti*gCols + g) * 26
				tritBase := trOff + g*length
				for i := 0; i < length; i++ {
					if guess[i] == tEnc[i] {
						trits[tritBase+i] = 2
						counts[cOff+int(tEnc[i])]--
					}
				}
			}
			for g := 0; g < gCols; g++ {
				guess := gEnc[g]
				cOff := (ti*gCols + g) * 26
				tritBase := trOff + g*length
				for i := 0; i < length; i++ {
					if trits[tritBase+i] == 2 {
						continue
					}
					c := guess[i]
					if counts[cOff+int(c)] > 0 {
						trits[tritBase+i] = 1
						counts[cOff+int(c)]--
					}
				}
			}

			row := m.Row(t)
			for g := 0; g < gCols; g++ {
				tritBase := trOff + g*length
				code := 0
				for i := 0; i < length; i++ {
					code += int(trits[tritBase+i]) * powers[i]
				}
				row[g] = word.Code(code)
			}
		}
	}

	return m, nil
}

// bandRows picks a target-row band size so that the residual-count
// workspace (rows * cols * 26 bytes) stays within DefaultBandBytes.
func bandRows(cols, length int) int {
	_ = length
	perRow := cols * 26
	if perRow <= 0 {
		return 1
	}
	rows := DefaultBandBytes / perRow
	if rows < 1 {
		rows = 1
	}
	return rows
}
