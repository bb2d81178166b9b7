// Package simulation implements combinational equivalence checking by
// partitioned exhaustive simulation.
//
// The input space of the miter of the two networks under comparison is
// partitioned into "split" variables, enumerated bit-parallel inside one
// truth table, and "free" variables, fixed to constants and enumerated
// across sequential rounds. The partition is sized so per-round memory
// stays under a fixed ceiling; covering every round covers the full input
// space exactly once, so the check is exhaustive despite the bound.
package simulation

import (
	"github.com/bits-and-blooms/bitset"
)

// TruthTable is the value of a Boolean function on every assignment of a
// fixed set of variables, stored as a bit vector of length 2^v. Bit b holds
// the function value for the assignment encoded by b's binary
// representation.
//
// Operators allocate a fresh table; a TruthTable is never mutated after
// construction.
type TruthTable struct {
	vars int
	bits *bitset.BitSet
}

// New returns the all-zero table on v variables.
func New(v int) TruthTable {
	return TruthTable{vars: v, bits: bitset.New(1 << v)}
}

// Constant returns the table computing the constant one (if one is true)
// or the constant zero, on v variables.
func Constant(v int, one bool) TruthTable {
	t := New(v)
	if one {
		return t.Not()
	}
	return t
}

// NthVar returns the projection table of variable i on v variables: bit b
// equals bit i of b.
func NthVar(v, i int) TruthTable {
	t := New(v)
	w := uint(1) << v
	block := uint(1) << i
	for start := block; start < w; start += 2 * block {
		t.bits.FlipRange(start, start+block)
	}
	return t
}

// NumVars returns the number of variables the table is defined on.
func (t TruthTable) NumVars() int { return t.vars }

// Len returns the number of bits in the table.
func (t TruthTable) Len() uint { return t.bits.Len() }

// Bit returns the value of the function on the assignment encoded by i.
func (t TruthTable) Bit(i uint) bool { return t.bits.Test(i) }

// Not returns the bitwise complement of t.
func (t TruthTable) Not() TruthTable {
	return TruthTable{vars: t.vars, bits: t.bits.Complement()}
}

// And returns the bitwise conjunction of t and o.
func (t TruthTable) And(o TruthTable) TruthTable {
	return TruthTable{vars: t.vars, bits: t.bits.Intersection(o.bits)}
}

// Or returns the bitwise disjunction of t and o.
func (t TruthTable) Or(o TruthTable) TruthTable {
	return TruthTable{vars: t.vars, bits: t.bits.Union(o.bits)}
}

// Xor returns the bitwise exclusive-or of t and o.
func (t TruthTable) Xor(o TruthTable) TruthTable {
	return TruthTable{vars: t.vars, bits: t.bits.SymmetricDifference(o.bits)}
}

// IsZero reports whether t is the constant-zero table.
func (t TruthTable) IsZero() bool { return t.bits.None() }

// Equal reports whether t and o are defined on the same variables and agree
// on every assignment.
func (t TruthTable) Equal(o TruthTable) bool {
	return t.vars == o.vars && t.bits.Equal(o.bits)
}
