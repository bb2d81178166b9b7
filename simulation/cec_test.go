package simulation_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/go-logic/booleq/logic"
	"github.com/go-logic/booleq/simulation"
)

func andNetwork() *logic.AIG {
	g := logic.New()
	g.Output(g.And(g.Input(), g.Input()))
	return g
}

func orNetwork() *logic.AIG {
	g := logic.New()
	g.Output(g.Or(g.Input(), g.Input()))
	return g
}

func TestCheckEquivalentAnd(t *testing.T) {
	assert := require.New(t)

	var st simulation.Stats
	v := simulation.Check(andNetwork(), andNetwork(), simulation.WithStats(&st))

	assert.Equal(simulation.Equivalent, v.Result)
	assert.Empty(v.Reason)
	assert.Equal(uint32(2), st.SplitVar)
	assert.Equal(uint64(1), st.Rounds)
}

func TestCheckAndVsOr(t *testing.T) {
	assert := require.New(t)

	v := simulation.Check(andNetwork(), orNetwork())
	assert.Equal(simulation.NotEquivalent, v.Result)
}

func TestCheckDeMorgan(t *testing.T) {
	assert := require.New(t)

	// a AND b built directly
	lhs := logic.New()
	lhs.Output(lhs.And(lhs.Input(), lhs.Input()))

	// NOT(NOT a OR NOT b)
	rhs := logic.New()
	a := rhs.Input()
	b := rhs.Input()
	rhs.Output(rhs.Or(a.Not(), b.Not()).Not())

	assert.Equal(simulation.Equivalent, simulation.Check(lhs, rhs).Result)
}

func TestCheckMux(t *testing.T) {
	assert := require.New(t)

	// sel ? a : b as OR of ANDs
	mux1 := logic.New()
	sel, a, b := mux1.Input(), mux1.Input(), mux1.Input()
	mux1.Output(mux1.Or(mux1.And(sel, a), mux1.And(sel.Not(), b)))

	// the same function with the XOR-based decomposition b XOR (sel AND (a XOR b))
	mux2 := logic.New()
	sel2, a2, b2 := mux2.Input(), mux2.Input(), mux2.Input()
	mux2.Output(mux2.Xor(b2, mux2.And(sel2, mux2.Xor(a2, b2))))

	assert.Equal(simulation.Equivalent, simulation.Check(mux1, mux2).Result)
}

func TestCheckTooManyInputs(t *testing.T) {
	assert := require.New(t)

	wide := logic.New()
	s := wide.True()
	for i := 0; i < 41; i++ {
		s = wide.And(s, wide.Input())
	}
	wide.Output(s)

	var st simulation.Stats
	v := simulation.Check(wide, andNetwork(), simulation.WithStats(&st))
	assert.Equal(simulation.Unknown, v.Result)
	assert.Equal(simulation.ReasonTooManyInputs, v.Reason)
	assert.Zero(st, "no plan is computed for an unknown verdict")
}

func TestCheckIncompatible(t *testing.T) {
	assert := require.New(t)

	onePO := andNetwork()

	twoPOs := logic.New()
	a, b := twoPOs.Input(), twoPOs.Input()
	twoPOs.Output(twoPOs.And(a, b))
	twoPOs.Output(twoPOs.Or(a, b))

	v := simulation.Check(onePO, twoPOs)
	assert.Equal(simulation.Unknown, v.Result)
	assert.Equal(simulation.ReasonIncompatibleNetworks, v.Reason)

	threePIs := logic.New()
	threePIs.Input()
	threePIs.Input()
	threePIs.Input()
	threePIs.Output(threePIs.False())

	v = simulation.Check(andNetwork(), threePIs)
	assert.Equal(simulation.Unknown, v.Result)
	assert.Equal(simulation.ReasonIncompatibleNetworks, v.Reason)
}

func TestCheckParallel(t *testing.T) {
	assert := require.New(t)

	v := simulation.Check(andNetwork(), andNetwork(), simulation.WithParallelism(4))
	assert.Equal(simulation.Equivalent, v.Result)

	v = simulation.Check(andNetwork(), orNetwork(), simulation.WithParallelism(4))
	assert.Equal(simulation.NotEquivalent, v.Result)
}

// randomAIG builds a network with numPIs inputs, one output and a random
// gate structure derived from seed.
func randomAIG(numPIs int, gates int, seed uint64) *logic.AIG {
	g := logic.New()
	sigs := make([]logic.Signal, 0, numPIs+gates)
	for i := 0; i < numPIs; i++ {
		sigs = append(sigs, g.Input())
	}
	rnd := seed
	next := func(n int) int {
		// xorshift, deterministic per seed
		rnd ^= rnd << 13
		rnd ^= rnd >> 7
		rnd ^= rnd << 17
		return int(rnd % uint64(n))
	}
	for i := 0; i < gates; i++ {
		x := sigs[next(len(sigs))]
		y := sigs[next(len(sigs))]
		if next(2) == 1 {
			x = x.Not()
		}
		if next(2) == 1 {
			y = y.Not()
		}
		sigs = append(sigs, g.And(x, y))
	}
	g.Output(sigs[len(sigs)-1])
	return g
}

// bruteForceEqual compares two networks by evaluating every assignment.
func bruteForceEqual(a, b *logic.AIG) bool {
	n := a.NumPIs()
	inputs := make([]bool, n)
	for v := 0; v < 1<<n; v++ {
		for i := range inputs {
			inputs[i] = v>>i&1 == 1
		}
		oa := a.Eval(inputs)
		ob := b.Eval(inputs)
		for i := range oa {
			if oa[i] != ob[i] {
				return false
			}
		}
	}
	return true
}

func TestCheckProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("a network is equivalent to itself", prop.ForAll(
		func(numPIs, gates int, seed uint64) bool {
			a := randomAIG(numPIs, gates, seed)
			return simulation.Check(a, a).Result == simulation.Equivalent
		},
		gen.IntRange(1, 8),
		gen.IntRange(1, 30),
		gen.UInt64Range(1, 1<<62),
	))

	properties.Property("the check is symmetric", prop.ForAll(
		func(numPIs, gates int, seedA, seedB uint64) bool {
			a := randomAIG(numPIs, gates, seedA)
			b := randomAIG(numPIs, gates, seedB)
			return simulation.Check(a, b).Result == simulation.Check(b, a).Result
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 20),
		gen.UInt64Range(1, 1<<62),
		gen.UInt64Range(1, 1<<62),
	))

	properties.Property("the verdict matches exhaustive evaluation", prop.ForAll(
		func(numPIs, gates int, seedA, seedB uint64) bool {
			a := randomAIG(numPIs, gates, seedA)
			b := randomAIG(numPIs, gates, seedB)
			want := simulation.Equivalent
			if !bruteForceEqual(a, b) {
				want = simulation.NotEquivalent
			}
			return simulation.Check(a, b).Result == want
		},
		gen.IntRange(1, 5),
		gen.IntRange(1, 20),
		gen.UInt64Range(1, 1<<62),
		gen.UInt64Range(1, 1<<62),
	))

	properties.Property("parallel rounds agree with sequential", prop.ForAll(
		func(numPIs, gates int, seedA, seedB uint64) bool {
			a := randomAIG(numPIs, gates, seedA)
			b := randomAIG(numPIs, gates, seedB)
			seq := simulation.Check(a, b)
			par := simulation.Check(a, b, simulation.WithParallelism(4))
			return seq.Result == par.Result
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 20),
		gen.UInt64Range(1, 1<<62),
		gen.UInt64Range(1, 1<<62),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
