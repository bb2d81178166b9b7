package logic

import (
	"errors"
	"fmt"
)

// ErrIncompatible reports that two networks cannot be combined into a miter.
var ErrIncompatible = errors.New("incompatible networks")

// Miter builds the miter of a and b: a network over the same primary inputs
// whose i'th output is the XOR of the i'th outputs of a and b. The miter
// computes constant false on every output if and only if a and b are
// functionally equivalent.
//
// Returns ErrIncompatible when the primary-input or primary-output counts
// differ.
func Miter(a, b *AIG) (*AIG, error) {
	if a.NumPIs() != b.NumPIs() {
		return nil, fmt.Errorf("%w: %d vs %d primary inputs", ErrIncompatible, a.NumPIs(), b.NumPIs())
	}
	if a.NumPOs() != b.NumPOs() {
		return nil, fmt.Errorf("%w: %d vs %d primary outputs", ErrIncompatible, a.NumPOs(), b.NumPOs())
	}

	m := New()
	ins := make([]Signal, a.NumPIs())
	for i := range ins {
		ins[i] = m.Input()
	}
	aOuts := m.compose(a, ins)
	bOuts := m.compose(b, ins)
	for i := range aOuts {
		m.Output(m.Xor(aOuts[i], bOuts[i]))
	}
	return m, nil
}

// compose copies src into m, substituting ins for src's primary inputs, and
// returns src's primary-output signals translated into m. Structural hashing
// in m deduplicates gates shared between the composed networks.
func (m *AIG) compose(src *AIG, ins []Signal) []Signal {
	tr := make([]Signal, len(src.nodes))
	tr[0] = m.False()
	for i := 1; i < len(src.nodes); i++ {
		n := src.nodes[i]
		if n.a == 0 && n.b == 0 {
			tr[i] = ins[src.piPos[Node(i)]]
			continue
		}
		tr[i] = m.And(translate(tr, n.a), translate(tr, n.b))
	}
	outs := make([]Signal, len(src.pos))
	for i, s := range src.pos {
		outs[i] = translate(tr, s)
	}
	return outs
}

func translate(tr []Signal, s Signal) Signal {
	t := tr[s.Node()]
	if s.IsComplemented() {
		t = t.Not()
	}
	return t
}
