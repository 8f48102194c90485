package coord

import (
	"math"
	"strings"

	"github.com/matzehuels/tileboard/pkg/errors"
)

const alphabet = 26

// maxValue is the largest one-based label value: Encode(math.MaxInt).
const maxValue = uint64(math.MaxInt) + 1

// Encode returns the lowercase bijective base-26 label of a zero-based index.
// It panics if n is negative.
func Encode(n int) string {
	if n < 0 {
		panic("coord: negative index")
	}

	var buf [16]byte
	i := len(buf)
	// Shift to 1-based so every position uses digits 1..26 (a..z). The
	// shifted value of math.MaxInt does not fit an int.
	for v := uint64(n) + 1; v > 0; v = (v - 1) / alphabet {
		i--
		buf[i] = byte('a' + (v-1)%alphabet)
	}
	return string(buf[i:])
}

// Decode returns the zero-based index of a base-26 label.
// Letters may be upper or lower case.
func Decode(s string) (int, error) {
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidPosition, "empty column label")
	}

	var v uint64
	for _, r := range strings.ToLower(s) {
		if r < 'a' || r > 'z' {
			return 0, errors.New(errors.ErrCodeInvalidPosition, "invalid column label %q", s)
		}
		d := uint64(r-'a') + 1
		if v > (maxValue-d)/alphabet {
			return 0, errors.New(errors.ErrCodeInvalidPosition, "column label %q is too large", s)
		}
		v = v*alphabet + d
	}
	return int(v - 1), nil
}
