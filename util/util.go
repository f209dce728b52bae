package util

import (
	"database/sql"
	"math"

	"golang.org/x/exp/constraints"
)

// Helpers for grid math over annotation data. All of these are total:
// missing or malformed input yields the supplied default, never an error.
// Nullable corpus columns travel as database/sql Null types so that
// "absent" stays distinct from zero all the way to the sink.

// NullInt is a literal helper for valid nullable ints.
func NullInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}

// NullFloat is a literal helper for valid nullable floats.
func NullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

// SafeInt coerces a nullable float to int, truncating toward zero.
// Absent or non-numeric values yield the default.
func SafeInt(v sql.NullFloat64, def int) int {
	if !v.Valid || math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
		return def
	}
	return int(v.Float64)
}

// IntFromFloat converts a nullable float to a nullable int, preserving
// absence instead of substituting a default.
func IntFromFloat(v sql.NullFloat64) sql.NullInt64 {
	if !v.Valid || math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
		return sql.NullInt64{}
	}
	return NullInt(int64(v.Float64))
}

// SafeDivide divides num by den, returning def when the denominator is
// zero or either operand is not a number.
func SafeDivide(num, den, def float64) float64 {
	if den == 0 || math.IsNaN(num) || math.IsNaN(den) {
		return def
	}
	return num / den
}

// Clip clamps v into [lo, hi].
func Clip[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
