// Package logic provides an and-inverter graph (AIG) representation of
// combinational Boolean networks, together with the miter construction used
// for equivalence checking.
//
// An AIG stores two-input AND gates only; inversion is free, carried as a
// complement attribute on signals. Structural hashing guarantees that two
// AND gates with identical fanins share a node.
package logic

type node struct {
	a, b Signal // fanins; both zero for the constant and for inputs
}

// AIG is a combinational and-inverter graph. The zero value is not usable;
// call New.
type AIG struct {
	nodes  []node
	strash map[uint64]Node
	pis    []Node
	piPos  map[Node]int
	pos    []Signal
}

// New creates an empty network holding only the constant-false node.
func New() *AIG {
	return &AIG{
		nodes:  make([]node, 1, 64),
		strash: make(map[uint64]Node),
		piPos:  make(map[Node]int),
	}
}

// False returns the constant-false signal.
func (g *AIG) False() Signal { return MakeSignal(0, false) }

// True returns the constant-true signal.
func (g *AIG) True() Signal { return MakeSignal(0, true) }

// Input appends a new primary input and returns its signal.
func (g *AIG) Input() Signal {
	n := Node(len(g.nodes))
	g.nodes = append(g.nodes, node{})
	g.piPos[n] = len(g.pis)
	g.pis = append(g.pis, n)
	return MakeSignal(n, false)
}

// Output registers s as a primary output.
func (g *AIG) Output(s Signal) {
	g.pos = append(g.pos, s)
}

// And returns a signal computing x AND y. Trivial cases are folded and
// structurally equivalent gates are shared.
func (g *AIG) And(x, y Signal) Signal {
	if x == y {
		return x
	}
	if x == y.Not() {
		return g.False()
	}
	if x > y {
		x, y = y, x
	}
	// x < y, so a constant operand is always x
	if x == g.False() {
		return g.False()
	}
	if x == g.True() {
		return y
	}
	key := uint64(x)<<32 | uint64(y)
	if n, ok := g.strash[key]; ok {
		return MakeSignal(n, false)
	}
	n := Node(len(g.nodes))
	g.nodes = append(g.nodes, node{a: x, b: y})
	g.strash[key] = n
	return MakeSignal(n, false)
}

// Or returns a signal computing x OR y.
func (g *AIG) Or(x, y Signal) Signal {
	return g.And(x.Not(), y.Not()).Not()
}

// Xor returns a signal computing x XOR y.
func (g *AIG) Xor(x, y Signal) Signal {
	return g.Or(g.And(x, y.Not()), g.And(x.Not(), y))
}

// Not returns the complement of s.
func (g *AIG) Not(s Signal) Signal {
	return s.Not()
}

// NumPIs returns the number of primary inputs.
func (g *AIG) NumPIs() int { return len(g.pis) }

// NumPOs returns the number of primary outputs.
func (g *AIG) NumPOs() int { return len(g.pos) }

// Size returns the number of nodes, the constant and inputs included.
func (g *AIG) Size() int { return len(g.nodes) }

// PI returns the signal of the i'th primary input.
func (g *AIG) PI(i int) Signal { return MakeSignal(g.pis[i], false) }

// PO returns the signal of the i'th primary output.
func (g *AIG) PO(i int) Signal { return g.pos[i] }

// Node resolves a signal to its node.
func (g *AIG) Node(s Signal) Node { return s.Node() }

// IsComplemented reports whether s carries the complement attribute.
func (g *AIG) IsComplemented(s Signal) bool { return s.IsComplemented() }

// IsConstant reports whether n is the constant-false node.
func (g *AIG) IsConstant(n Node) bool { return n == 0 }

// IsPI reports whether n is a primary input.
func (g *AIG) IsPI(n Node) bool {
	_, ok := g.piPos[n]
	return ok
}

// PIIndex returns the input position of a primary-input node.
func (g *AIG) PIIndex(n Node) int { return g.piPos[n] }

// ForeachPI calls fn for each primary input in creation order.
func (g *AIG) ForeachPI(fn func(n Node) bool) {
	for _, n := range g.pis {
		if !fn(n) {
			return
		}
	}
}

// ForeachPO calls fn for each primary-output signal in creation order.
func (g *AIG) ForeachPO(fn func(s Signal) bool) {
	for _, s := range g.pos {
		if !fn(s) {
			return
		}
	}
}

// ForeachNode calls fn for each node in topological order.
func (g *AIG) ForeachNode(fn func(n Node) bool) {
	for i := range g.nodes {
		if !fn(Node(i)) {
			return
		}
	}
}

// ForeachFanin calls fn for each fanin of a gate node. Constant and input
// nodes have no fanins.
func (g *AIG) ForeachFanin(n Node, fn func(s Signal) bool) {
	nd := g.nodes[n]
	if nd.a == 0 && nd.b == 0 {
		return
	}
	if !fn(nd.a) {
		return
	}
	fn(nd.b)
}

// Eval computes the Boolean value of every primary output under the given
// input assignment. len(inputs) must equal NumPIs.
func (g *AIG) Eval(inputs []bool) []bool {
	vs := make([]bool, len(g.nodes))
	for i, n := range g.nodes {
		if n.a == 0 && n.b == 0 {
			if pos, ok := g.piPos[Node(i)]; ok {
				vs[i] = inputs[pos]
			}
			continue
		}
		va := vs[n.a.Node()] != n.a.IsComplemented()
		vb := vs[n.b.Node()] != n.b.IsComplemented()
		vs[i] = va && vb
	}
	out := make([]bool, len(g.pos))
	for i, s := range g.pos {
		out[i] = vs[s.Node()] != s.IsComplemented()
	}
	return out
}
