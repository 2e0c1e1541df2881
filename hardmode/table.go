package hardmode

import "github.com/wordletree/wordletree/word"

// NumCodes is the size of the feedback code space for L=5 words: 3^5.
const NumCodes = 243

const wordsPerRow = (NumCodes + 63) / 64 // 4 uint64 words cover 256 bits

// Table is a bit-packed 243x243 boolean compatibility table.
type Table struct {
	bits []uint64 // NumCodes * wordsPerRow, row-major
}

// Build constructs the full compatibility table from the trit
// decomposition of every code in [0, NumCodes): C[p,q] is true iff
// every trit of p is >= the corresponding trit of q.
func Build() *Table {
	length := 5
	trits := make([][]byte, NumCodes)
	for c := 0; c < NumCodes; c++ {
		trits[c] = word.Trits(word.Code(c), length)
	}

	t := &Table{bits: make([]uint64, NumCodes*wordsPerRow)}
	for p := 0; p < NumCodes; p++ {
		pt := trits[p]
		for q := 0; q < NumCodes; q++ {
			qt := trits[q]
			compatible := true
			for i := 0; i < length; i++ {
				if pt[i] < qt[i] {
					compatible = false
					break
				}
			}
			if compatible {
				t.set(p, q)
			}
		}
	}
	return t
}

func (t *Table) set(p, q int) {
	idx := p*wordsPerRow + q/64
	t.bits[idx] |= 1 << uint(q%64)
}

// Compatible reports whether feedback code p remains consistent with
// an earlier observed code q.
func (t *Table) Compatible(p, q word.Code) bool {
	idx := int(p)*wordsPerRow + int(q)/64
	return t.bits[idx]&(1<<uint(int(q)%64)) != 0
}
