// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Number is the set of scalar types that [Distance] accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Distance returns the absolute difference between a and b.
// It never underflows for unsigned types.
func Distance[T Number](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// orient returns the clamped interpolation amount along with the
// smaller and larger of start and end. If start is greater than end,
// the amount is inverted so that interpolation always runs from the
// smaller value to the larger one.
func orient(start, end, amount float32) (lo, hi, a float32) {
	a = Clamped(amount, 0, 1)
	if start > end {
		return end, start, 1 - a
	}
	return start, end, a
}

// Lerp returns the linear interpolation between start and end at the
// given amount, which is clamped to [0, 1]. The result always lies
// between start and end, regardless of their order.
func Lerp(start, end, amount float32) float32 {
	lo, hi, a := orient(start, end, amount)
	return lo + (hi-lo)*a
}

// LerpU8 is the uint8 version of [Lerp]. The scaled difference is
// truncated before it is added back to the smaller value.
func LerpU8(start, end uint8, amount float32) uint8 {
	lo, hi, a := orient(float32(start), float32(end), amount)
	return uint8((hi-lo)*a) + uint8(lo)
}

// Cerp returns the cubic Hermite interpolation between start and end
// at the given amount, which is clamped to [0, 1]. The curve is
// consistent with the given slopes at either end. Like [Lerp], the
// amount is inverted when start is greater than end. The slopes are
// used as given.
func Cerp(start, end, startSlope, endSlope, amount float32) float32 {
	lo, hi, a := orient(start, end, amount)
	a2 := a * a
	a3 := a2 * a
	return (2*a3-3*a2+1)*lo +
		(a3-2*a2+a)*startSlope +
		(-2*a3+3*a2)*hi +
		(a3-a2)*endSlope
}

// CerpU8 is the uint8 version of [Cerp]. Slopes may push the curve
// outside of the channel range, so the result is clamped to [0, 255]
// and then truncated.
func CerpU8(start, end uint8, startSlope, endSlope, amount float32) uint8 {
	v := Cerp(float32(start), float32(end), startSlope, endSlope, amount)
	return uint8(Clamp(v, 0, 255))
}
