package simulation

// Stimulus supplies truth-table values for the leaves of a network during
// one simulation round. It is the entire contract Simulate requires from a
// value source.
type Stimulus interface {
	// Constant returns the all-one table if one is true, the all-zero
	// table otherwise.
	Constant(one bool) TruthTable
	// Input returns the table driven onto primary input i.
	Input(i int) TruthTable
	// Invert returns the complement of t, realizing a complemented signal.
	Invert(t TruthTable) TruthTable
}

// roundStimulus drives one round of partitioned simulation. Split variables
// (input index < splitVar) get their projection table, so all their
// assignments are enumerated bit-parallel; free variables are pinned to the
// constant encoded by the corresponding bit of the round index.
type roundStimulus struct {
	splitVar int
	round    uint64
}

var _ Stimulus = roundStimulus{}

func newRoundStimulus(splitVar uint32, round uint64) roundStimulus {
	return roundStimulus{splitVar: int(splitVar), round: round}
}

func (s roundStimulus) Constant(one bool) TruthTable {
	return Constant(s.splitVar, one)
}

func (s roundStimulus) Input(i int) TruthTable {
	if i < s.splitVar {
		return NthVar(s.splitVar, i)
	}
	return Constant(s.splitVar, (s.round>>(i-s.splitVar))&1 == 1)
}

func (s roundStimulus) Invert(t TruthTable) TruthTable {
	return t.Not()
}
