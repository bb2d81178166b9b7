package logic

// Node identifies a node of a network by its position in topological order.
// Node 0 is always the constant-false node.
type Node uint32

// Signal is an edge pointing at a node, with an optional complement
// attribute encoded in the least significant bit.
type Signal uint32

// MakeSignal returns the signal pointing at n, complemented if c is true.
func MakeSignal(n Node, c bool) Signal {
	s := Signal(n) << 1
	if c {
		s |= 1
	}
	return s
}

// Node returns the node the signal points at.
func (s Signal) Node() Node {
	return Node(s >> 1)
}

// IsComplemented reports whether the signal carries the complement
// attribute.
func (s Signal) IsComplemented() bool {
	return s&1 == 1
}

// Not returns the complement of s.
func (s Signal) Not() Signal {
	return s ^ 1
}
