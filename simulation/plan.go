package simulation

// Stats records the simulation plan used by a call to Check.
type Stats struct {
	// SplitVar is the number of input variables enumerated bit-parallel
	// inside a single truth table.
	SplitVar uint32
	// Rounds is the number of simulation rounds, one per assignment of the
	// remaining free variables. Rounds * 2^SplitVar == 2^numPIs.
	Rounds uint64
}

// memoryCeiling bounds the projected per-round truth-table memory, in bytes.
const memoryCeiling = 1 << 29

// nodeOverhead is the projected fixed cost per node, in bytes, on top of
// its truth table.
const nodeOverhead = 32

// computePlan sizes the split-variable set for a network with numPIs
// primary inputs and size nodes. Up to 6 inputs the whole space fits one
// 64-bit table and a single round suffices. Beyond that, the split grows
// from 7 while the projected memory (a 2^(m-3)-byte table plus overhead per
// node, doubled) stays under the ceiling.
//
// The cost model is a historical heuristic; its exact arithmetic is kept
// for compatibility.
func computePlan(numPIs, size int) Stats {
	var st Stats
	if numPIs <= 6 {
		st.SplitVar = uint32(numPIs)
	} else {
		m := 7
		for m < numPIs && (nodeOverhead+uint64(1)<<(m-2))*uint64(size) <= memoryCeiling {
			m++
		}
		st.SplitVar = uint32(m)
	}
	st.Rounds = uint64(1) << (uint32(numPIs) - st.SplitVar)
	return st
}
