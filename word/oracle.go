package word

import "fmt"

const alphabetSize = 26

// Oracle computes the base-3 feedback Code for target and guess, both
// plain lowercase words of equal length. It re-validates and re-encodes
// its arguments, so hot paths (the feedback matrix builder) should
// prefer OracleEncoded on pre-encoded byte slices instead.
func Oracle(target, guess string) (Code, error) {
	if len(target) != len(guess) {
		return 0, fmt.Errorf("word: oracle(%q,%q): %w", target, guess, ErrInconsistentLength)
	}
	if err := validateLowercase(target); err != nil {
		return 0, fmt.Errorf("word: oracle target %q: %w", target, err)
	}
	if err := validateLowercase(guess); err != nil {
		return 0, fmt.Errorf("word: oracle guess %q: %w", guess, err)
	}

	t := make([]byte, len(target))
	g := make([]byte, len(guess))
	for i := 0; i < len(target); i++ {
		t[i] = target[i] - 'a'
		g[i] = guess[i] - 'a'
	}
	return OracleEncoded(t, g), nil
}

// OracleEncoded computes the feedback Code for pre-encoded (0-25) target
// and guess byte slices of equal length. Callers are responsible for the
// length/range invariant; this is the hot-path primitive used by the
// feedback matrix builders.
//
// Algorithm (spec §4.A):
//  1. Count target letters into a 26-bucket multiset.
//  2. First pass: mark trit 2 where guess[i] == target[i], decrementing
//     the multiset at that letter.
//  3. Second pass: for remaining positions, mark trit 1 if the guessed
//     letter still has positive residual count (decrementing it), else
//     trit 0.
//  4. Encode the trit vector big-endian base-3.
func OracleEncoded(target, guess []byte) Code {
	l := len(target)

	var counts [alphabetSize]int8
	for _, c := range target {
		counts[c]++
	}

	trits := make([]byte, l)
	for i := 0; i < l; i++ {
		if guess[i] == target[i] {
			trits[i] = 2
			counts[target[i]]--
		}
	}
	for i := 0; i < l; i++ {
		if trits[i] == 2 {
			continue
		}
		c := guess[i]
		if counts[c] > 0 {
			trits[i] = 1
			counts[c]--
		}
	}

	var code int
	pow := 1
	for i := l - 1; i >= 0; i-- {
		code += int(trits[i]) * pow
		pow *= 3
	}
	return Code(code)
}

// Solved returns the feedback code representing "every position correct"
// for a word of the given length (3^length - 1, all trits = 2).
func Solved(length int) Code {
	pow := 1
	for i := 0; i < length; i++ {
		pow *= 3
	}
	return Code(pow - 1)
}

// Trits decodes code into its length-long big-endian base-3 trit vector.
func Trits(code Code, length int) []byte {
	trits := make([]byte, length)
	v := int(code)
	for i := length - 1; i >= 0; i-- {
		trits[i] = byte(v % 3)
		v /= 3
	}
	return trits
}

// FromTrits encodes a trit vector back into a Code. Inverse of Trits.
func FromTrits(trits []byte) Code {
	var code int
	pow := 1
	for i := len(trits) - 1; i >= 0; i-- {
		code += int(trits[i]) * pow
		pow *= 3
	}
	return Code(code)
}
