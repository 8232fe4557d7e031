// Package seed maps string keys to stable indexes.
//
// Every derived value in a simulation (text fragments, sub-scores, bonuses)
// comes from hashing a meaningful key such as "gpt-4o-text-hello-no-image-intro".
// There is no RNG state: the same key always selects the same entry.
package seed

import (
	"unicode/utf16"
)

// Hash returns the absolute value of a 32-bit rolling hash of s.
//
// The accumulator follows h = h*31 + c over the UTF-16 code units of s and
// wraps to a signed 32-bit integer at every step. The absolute value of
// math.MinInt32 does not fit in an int32, hence the uint32 result.
func Hash(s string) uint32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}

// Mod returns Hash(s) reduced modulo n. n must be positive.
func Mod(s string, n int) int {
	return int(Hash(s) % uint32(n))
}

// Pick selects one entry of options using the hash of key.
// ok is false only when options is empty.
func Pick[T any](options []T, key string) (v T, ok bool) {
	if len(options) == 0 {
		return v, false
	}
	return options[Mod(key, len(options))], true
}

// PickOr is Pick with a fallback for an empty option list.
func PickOr[T any](options []T, key string, fallback T) T {
	if v, ok := Pick(options, key); ok {
		return v
	}
	return fallback
}

// CodeUnitLess reports whether a sorts before b when both are compared as
// sequences of UTF-16 code units. For ASCII ids this is plain a < b.
func CodeUnitLess(a, b string) bool {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}
