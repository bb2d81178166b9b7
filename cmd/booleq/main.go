// Command booleq checks two BENCH netlists for combinational equivalence.
//
// Usage:
//
//	booleq [-p n] [-q] a.bench b.bench
//
// Exit status is 0 when the networks are equivalent, 1 when they are not,
// and 2 when the check could not be attempted or an error occurred.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	booleqio "github.com/go-logic/booleq/io"
	"github.com/go-logic/booleq/logger"
	"github.com/go-logic/booleq/logic"
	"github.com/go-logic/booleq/simulation"
)

var (
	parallelism = flag.Int("p", 1, "number of simulation rounds to evaluate concurrently")
	quiet       = flag.Bool("q", false, "suppress log output")
	debugLog    = flag.Bool("debug", false, "enable debug log output")
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: booleq [-p n] [-q] a.bench b.bench")
		os.Exit(2)
	}

	switch {
	case *quiet:
		logger.Disable()
	case *debugLog:
		logger.Set(logger.Logger().Level(zerolog.DebugLevel))
	default:
		logger.Set(logger.Logger().Level(zerolog.InfoLevel))
	}
	log := logger.Logger()

	ntk1, err := parse(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Str("file", flag.Arg(0)).Msg("cannot read netlist")
		os.Exit(2)
	}
	ntk2, err := parse(flag.Arg(1))
	if err != nil {
		log.Error().Err(err).Str("file", flag.Arg(1)).Msg("cannot read netlist")
		os.Exit(2)
	}

	var st simulation.Stats
	verdict := simulation.Check(ntk1, ntk2,
		simulation.WithStats(&st),
		simulation.WithParallelism(*parallelism),
	)

	switch verdict.Result {
	case simulation.Equivalent:
		log.Info().Uint32("splitVar", st.SplitVar).Uint64("rounds", st.Rounds).Msg("networks are equivalent")
		fmt.Println("equivalent")
	case simulation.NotEquivalent:
		log.Info().Uint32("splitVar", st.SplitVar).Uint64("rounds", st.Rounds).Msg("networks differ")
		fmt.Println("not equivalent")
		os.Exit(1)
	default:
		log.Warn().Str("reason", verdict.Reason).Msg("equivalence unknown")
		fmt.Printf("unknown: %s\n", verdict.Reason)
		os.Exit(2)
	}
}

func parse(path string) (*logic.AIG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return booleqio.ParseBench(f)
}
