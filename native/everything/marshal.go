package everything

import "time"

// EpochOffsetTicks is the number of 100-nanosecond ticks between
// 1601-01-01 (FILETIME epoch) and 1970-01-01 (Unix epoch).
const EpochOffsetTicks = 116444736000000000

// ticksPerMilli is the number of FILETIME ticks in one millisecond.
const ticksPerMilli = 10000

// LargeInteger mirrors the Win32 LARGE_INTEGER layout used for sizes.
type LargeInteger struct {
	Low  uint32
	High int32
}

// Value returns the combined 64-bit value.
func (li LargeInteger) Value() uint64 {
	return uint64(uint32(li.High))<<32 | uint64(li.Low)
}

// LargeIntegerFromUint64 splits v into its two halves.
func LargeIntegerFromUint64(v uint64) LargeInteger {
	return LargeInteger{
		Low:  uint32(v),
		High: int32(uint32(v >> 32)),
	}
}

// FileTime mirrors the Win32 FILETIME layout: 100-nanosecond ticks since
// 1601-01-01 UTC, split into two unsigned halves.
type FileTime struct {
	Low  uint32
	High uint32
}

// Ticks returns the combined tick count.
func (ft FileTime) Ticks() uint64 {
	return uint64(ft.High)<<32 | uint64(ft.Low)
}

// UnixMilli returns milliseconds since the Unix epoch. Times before 1970
// are negative; sub-millisecond remainders truncate toward zero.
func (ft FileTime) UnixMilli() int64 {
	return (int64(ft.Ticks()) - EpochOffsetTicks) / ticksPerMilli
}

// Time converts to a UTC time.Time at millisecond precision.
func (ft FileTime) Time() time.Time {
	return time.UnixMilli(ft.UnixMilli()).UTC()
}

// FileTimeFromTicks splits a tick count into its two halves.
func FileTimeFromTicks(ticks uint64) FileTime {
	return FileTime{
		Low:  uint32(ticks),
		High: uint32(ticks >> 32),
	}
}

// FileTimeFromUnixMilli encodes milliseconds since the Unix epoch.
func FileTimeFromUnixMilli(ms int64) FileTime {
	return FileTimeFromTicks(uint64(ms*ticksPerMilli + EpochOffsetTicks))
}
