package logic

import (
	"errors"
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/go-logic/booleq"
)

// ErrInvalidVersion reports that serialized data was written by an
// incompatible booleq version.
var ErrInvalidVersion = errors.New("incompatible booleq version")

// serializedAIG is the on-wire form of an AIG. Nodes are implicit in their
// topological order; each gate packs its two fanin signals into one word.
type serializedAIG struct {
	Version string   `cbor:"version"`
	Nodes   []uint64 `cbor:"nodes"`
	PIs     []uint32 `cbor:"pis"`
	POs     []uint32 `cbor:"pos"`
}

// WriteTo serializes the network using CBOR. The stream starts with the
// booleq version; ReadFrom rejects data from a different major version.
func (g *AIG) WriteTo(w io.Writer) (int64, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	s := serializedAIG{
		Version: booleq.Version.String(),
		Nodes:   make([]uint64, len(g.nodes)),
		PIs:     make([]uint32, len(g.pis)),
		POs:     make([]uint32, len(g.pos)),
	}
	for i, n := range g.nodes {
		s.Nodes[i] = uint64(n.a)<<32 | uint64(n.b)
	}
	for i, n := range g.pis {
		s.PIs[i] = uint32(n)
	}
	for i, po := range g.pos {
		s.POs[i] = uint32(po)
	}
	cw := &countWriter{w: w}
	if err := em.NewEncoder(cw).Encode(s); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// ReadFrom deserializes a network previously written with WriteTo,
// replacing the receiver's contents.
func (g *AIG) ReadFrom(r io.Reader) (int64, error) {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return 0, err
	}
	var s serializedAIG
	cr := &countReader{r: r}
	if err := dm.NewDecoder(cr).Decode(&s); err != nil {
		return cr.n, err
	}
	v, err := semver.Parse(s.Version)
	if err != nil {
		return cr.n, fmt.Errorf("%w: %v", ErrInvalidVersion, err)
	}
	if v.Major != booleq.Version.Major {
		return cr.n, fmt.Errorf("%w: data written by v%s", ErrInvalidVersion, s.Version)
	}
	if err := g.restore(&s); err != nil {
		return cr.n, err
	}
	return cr.n, nil
}

func (g *AIG) restore(s *serializedAIG) error {
	if len(s.Nodes) == 0 || s.Nodes[0] != 0 {
		return errors.New("malformed network: missing constant node")
	}
	nodes := make([]node, len(s.Nodes))
	strash := make(map[uint64]Node)
	for i := 1; i < len(s.Nodes); i++ {
		a := Signal(s.Nodes[i] >> 32)
		b := Signal(s.Nodes[i] & 0xffffffff)
		if a == 0 && b == 0 {
			continue // input node
		}
		if a.Node() >= Node(i) || b.Node() >= Node(i) {
			return fmt.Errorf("malformed network: node %d breaks topological order", i)
		}
		nodes[i] = node{a: a, b: b}
		strash[uint64(a)<<32|uint64(b)] = Node(i)
	}
	pis := make([]Node, len(s.PIs))
	piPos := make(map[Node]int, len(s.PIs))
	for i, raw := range s.PIs {
		n := Node(raw)
		if n == 0 || int(n) >= len(nodes) || nodes[n].a != 0 || nodes[n].b != 0 {
			return fmt.Errorf("malformed network: invalid primary input %d", raw)
		}
		pis[i] = n
		piPos[n] = i
	}
	pos := make([]Signal, len(s.POs))
	for i, raw := range s.POs {
		po := Signal(raw)
		if int(po.Node()) >= len(nodes) {
			return fmt.Errorf("malformed network: invalid primary output %d", raw)
		}
		pos[i] = po
	}
	g.nodes = nodes
	g.strash = strash
	g.pis = pis
	g.piPos = piPos
	g.pos = pos
	return nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

type countReader struct {
	r io.Reader
	n int64
}

func (c *countReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
