package logic

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func buildSample() *AIG {
	g := New()
	a, b, c := g.Input(), g.Input(), g.Input()
	g.Output(g.Or(g.And(a, b.Not()), c))
	g.Output(g.Xor(a, c).Not())
	return g
}

func TestMarshalRoundTrip(t *testing.T) {
	assert := require.New(t)

	g := buildSample()
	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(buf.Len()), n)

	var restored AIG
	n, err = restored.ReadFrom(&buf)
	assert.NoError(err)
	assert.NotZero(n)

	assert.Equal(g.NumPIs(), restored.NumPIs())
	assert.Equal(g.NumPOs(), restored.NumPOs())
	assert.Equal(g.Size(), restored.Size())
	assert.Empty(cmp.Diff(g.pos, restored.pos))

	inputs := make([]bool, g.NumPIs())
	for v := 0; v < 1<<g.NumPIs(); v++ {
		for i := range inputs {
			inputs[i] = v>>i&1 == 1
		}
		assert.Equal(g.Eval(inputs), restored.Eval(inputs), "v=%d", v)
	}

	// the restored strash must keep deduplicating
	size := restored.Size()
	restored.And(restored.PI(0), restored.PI(1).Not())
	assert.Equal(size, restored.Size())
}

func TestMarshalVersionGate(t *testing.T) {
	assert := require.New(t)

	em, err := cbor.CanonicalEncOptions().EncMode()
	assert.NoError(err)

	stale, err := em.Marshal(serializedAIG{Version: "999.0.0", Nodes: []uint64{0}})
	assert.NoError(err)

	var g AIG
	_, err = g.ReadFrom(bytes.NewReader(stale))
	assert.ErrorIs(err, ErrInvalidVersion)

	garbage, err := em.Marshal(serializedAIG{Version: "not-a-version", Nodes: []uint64{0}})
	assert.NoError(err)
	_, err = g.ReadFrom(bytes.NewReader(garbage))
	assert.ErrorIs(err, ErrInvalidVersion)
}

func TestMarshalMalformed(t *testing.T) {
	assert := require.New(t)

	em, err := cbor.CanonicalEncOptions().EncMode()
	assert.NoError(err)

	sample := buildSample()
	var buf bytes.Buffer
	_, err = sample.WriteTo(&buf)
	assert.NoError(err)

	// forward reference breaks topological order
	var s serializedAIG
	dm, err := cbor.DecOptions{}.DecMode()
	assert.NoError(err)
	assert.NoError(dm.Unmarshal(buf.Bytes(), &s))

	s.Nodes = append(s.Nodes, uint64(MakeSignal(Node(len(s.Nodes)+5), false))<<32|uint64(MakeSignal(1, false)))
	bad, err := em.Marshal(s)
	assert.NoError(err)

	var g AIG
	_, err = g.ReadFrom(bytes.NewReader(bad))
	assert.Error(err)

	// an empty node list has no constant node
	empty, err := em.Marshal(serializedAIG{Version: s.Version})
	assert.NoError(err)
	_, err = g.ReadFrom(bytes.NewReader(empty))
	assert.Error(err)
}
