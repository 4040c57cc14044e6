// Package hash contains the 32-bit hash functions used for variant values and
// the containers built on them.
//
// All functions are based on the DJB string hash and are not suitable for
// cryptographic use.
package hash

import "math"

// DJBInit is the initial accumulator of the DJB hash.
const DJBInit uint32 = 5381

// DJBCombine folds h into the accumulator acc.
func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

// DJB combines a sequence of hashes.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

func UInt32(u uint32) uint32 {
	return u
}

func UInt64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

func Int64(i int64) uint32 {
	return UInt64(uint64(i))
}

func Bool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Float32 hashes f so that -0 and +0 collide, and all NaNs collide.
func Float32(f float32) uint32 {
	switch {
	case f == 0:
		return 0
	case f != f:
		return UInt32(0x7fc00000)
	}
	return UInt32(math.Float32bits(f))
}

// Float64 hashes f so that -0 and +0 collide, and all NaNs collide.
func Float64(f float64) uint32 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return UInt64(0x7ff8000000000001)
	}
	return UInt64(math.Float64bits(f))
}

func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}

func Bytes(b []byte) uint32 {
	h := DJBInit
	for _, c := range b {
		h = DJBCombine(h, uint32(c))
	}
	return h
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
