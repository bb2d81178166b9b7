package simulation

import (
	"github.com/go-logic/booleq/logic"
)

// Simulate evaluates every node of ntk in topological order under the
// values supplied by stim and returns one truth table per primary output.
// Gate nodes combine their fanins by conjunction, with complemented fanins
// inverted first; this matches the and-inverter semantics of logic.AIG but
// works for any Network whose gates are AND nodes.
func Simulate(ntk logic.Network, stim Stimulus) []TruthTable {
	values := make([]TruthTable, ntk.Size())
	ntk.ForeachNode(func(n logic.Node) bool {
		switch {
		case ntk.IsConstant(n):
			values[n] = stim.Constant(false)
		case ntk.IsPI(n):
			values[n] = stim.Input(ntk.PIIndex(n))
		default:
			first := true
			var acc TruthTable
			ntk.ForeachFanin(n, func(s logic.Signal) bool {
				v := values[ntk.Node(s)]
				if ntk.IsComplemented(s) {
					v = stim.Invert(v)
				}
				if first {
					acc, first = v, false
				} else {
					acc = acc.And(v)
				}
				return true
			})
			values[n] = acc
		}
		return true
	})

	outs := make([]TruthTable, 0, ntk.NumPOs())
	ntk.ForeachPO(func(s logic.Signal) bool {
		v := values[ntk.Node(s)]
		if ntk.IsComplemented(s) {
			v = stim.Invert(v)
		}
		outs = append(outs, v)
		return true
	})
	return outs
}
