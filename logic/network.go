package logic

// Network is the capability contract required of a logic network by the
// simulation engine. Implementations must enumerate nodes in topological
// order: a node's fanins always precede it in ForeachNode.
//
// Conformance is a compile-time property of the implementing type, never a
// runtime check.
type Network interface {
	// NumPIs returns the number of primary inputs.
	NumPIs() int
	// NumPOs returns the number of primary outputs.
	NumPOs() int
	// Size returns the total number of nodes, constant and inputs included.
	Size() int

	// Node resolves a signal to the node it points at.
	Node(s Signal) Node
	// IsComplemented reports whether a signal carries the complement
	// attribute.
	IsComplemented(s Signal) bool

	// IsConstant reports whether n is the constant node.
	IsConstant(n Node) bool
	// IsPI reports whether n is a primary input.
	IsPI(n Node) bool
	// PIIndex returns the input position of a primary-input node.
	PIIndex(n Node) int

	// ForeachPI calls fn for each primary input; fn returns false to stop.
	ForeachPI(fn func(n Node) bool)
	// ForeachPO calls fn for each primary-output signal; fn returns false
	// to stop.
	ForeachPO(fn func(s Signal) bool)
	// ForeachNode calls fn for each node in topological order; fn returns
	// false to stop.
	ForeachNode(fn func(n Node) bool)
	// ForeachFanin calls fn for each fanin signal of a gate node; fn
	// returns false to stop.
	ForeachFanin(n Node, fn func(s Signal) bool)
}

var _ Network = (*AIG)(nil)
