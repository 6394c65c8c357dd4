// Package safecast implements functions to safely cast types to avoid silent overflows
package safecast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

const (
	errUintRangeExceeded = "value %d exceeds uint%d range"
	errIntRangeExceeded  = "value %d exceeds int%d range"
)

// Uint64ToUint8 safely converts a uint64 to uint8 using cast and checks for overflow
func Uint64ToUint8(value uint64) (uint8, error) {
	if value > math.MaxUint8 {
		return 0, fmt.Errorf(errUintRangeExceeded, value, 8)
	}

	return cast.ToUint8E(value)
}

// Uint64ToUint16 safely converts a uint64 to uint16 using cast and checks for overflow
func Uint64ToUint16(value uint64) (uint16, error) {
	if value > math.MaxUint16 {
		return 0, fmt.Errorf(errUintRangeExceeded, value, 16)
	}

	return cast.ToUint16E(value)
}

// Uint64ToUint32 safely converts a uint64 to uint32 using cast and checks for overflow
func Uint64ToUint32(value uint64) (uint32, error) {
	if value > math.MaxUint32 {
		return 0, fmt.Errorf(errUintRangeExceeded, value, 32)
	}

	return cast.ToUint32E(value)
}

// Int64ToInt8 safely converts an int64 to int8 using cast and checks for overflow
func Int64ToInt8(value int64) (int8, error) {
	if value < math.MinInt8 || value > math.MaxInt8 {
		return 0, fmt.Errorf(errIntRangeExceeded, value, 8)
	}

	return cast.ToInt8E(value)
}

// Int64ToInt16 safely converts an int64 to int16 using cast and checks for overflow
func Int64ToInt16(value int64) (int16, error) {
	if value < math.MinInt16 || value > math.MaxInt16 {
		return 0, fmt.Errorf(errIntRangeExceeded, value, 16)
	}

	return cast.ToInt16E(value)
}

// Int64ToInt32 safely converts an int64 to int32 using cast and checks for overflow
func Int64ToInt32(value int64) (int32, error) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, fmt.Errorf(errIntRangeExceeded, value, 32)
	}

	return cast.ToInt32E(value)
}
