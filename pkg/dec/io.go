package dec

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/oisee/decbig/pkg/digit"
)

// parseVec converts a decimal digit string into limbs. Leading zeros
// are accepted and stripped; the empty string and any non-digit byte
// are ErrSyntax. Because the limb base is a power of ten the
// conversion is a reindexing: nine characters per limb, right to left.
func parseVec(s string) (digit.Vec, error) {
	if len(s) == 0 {
		return nil, errors.Wrap(ErrSyntax, "empty input")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, errors.Wrapf(ErrSyntax, "character %q at offset %d", s[i], i)
		}
	}
	start := 0
	for start < len(s) && s[start] == '0' {
		start++
	}
	s = s[start:]
	if len(s) == 0 {
		return nil, nil
	}

	n := (len(s) + digit.DigitsPerLimb - 1) / digit.DigitsPerLimb
	z := make(digit.Vec, n)
	end := len(s)
	for i := 0; i < n; i++ {
		begin := end - digit.DigitsPerLimb
		if begin < 0 {
			begin = 0
		}
		var limb uint32
		for j := begin; j < end; j++ {
			limb = limb*10 + uint32(s[j]-'0')
		}
		z[i] = limb
		end = begin
	}
	return z, nil
}

// appendVec emits x as decimal text: top limb without padding, every
// interior limb as exactly nine digits. Zero emits "0".
func appendVec(dst []byte, x digit.Vec) []byte {
	if len(x) == 0 {
		return append(dst, '0')
	}
	dst = strconv.AppendUint(dst, uint64(x[len(x)-1]), 10)
	for i := len(x) - 2; i >= 0; i-- {
		var buf [digit.DigitsPerLimb]byte
		v := x[i]
		for j := digit.DigitsPerLimb - 1; j >= 0; j-- {
			buf[j] = byte('0' + v%10)
			v /= 10
		}
		dst = append(dst, buf[:]...)
	}
	return dst
}
