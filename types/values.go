// Package types provides convenience implementations of the core package's
// Bid and Value capabilities: ready-made bid structs and thin wrappers that
// give built-in numeric types the Add/Sub/Cmp method set.
package types

// Uint64 is an unsigned integer valuation. Subtraction wraps on underflow
// like the underlying type; the engine never subtracts below zero for a
// well-formed auction model.
type Uint64 uint64

func (v Uint64) Add(o Uint64) Uint64 { return v + o }
func (v Uint64) Sub(o Uint64) Uint64 { return v - o }

func (v Uint64) Cmp(o Uint64) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	}
	return 0
}

// Int64 is a signed integer valuation.
type Int64 int64

func (v Int64) Add(o Int64) Int64 { return v + o }
func (v Int64) Sub(o Int64) Int64 { return v - o }

func (v Int64) Cmp(o Int64) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	}
	return 0
}

// Float64 is a floating-point valuation. Approximate arithmetic makes tie
// detection unstable and NaN compares equal to everything; prefer Uint64 or
// decimal.Decimal when exact comparisons matter.
type Float64 float64

func (v Float64) Add(o Float64) Float64 { return v + o }
func (v Float64) Sub(o Float64) Float64 { return v - o }

func (v Float64) Cmp(o Float64) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	}
	return 0
}
