// Package booleq implements combinational equivalence checking (CEC) of
// Boolean logic networks by randomized partitioned exhaustive simulation.
//
// Networks are represented as and-inverter graphs (package logic). The
// checker builds a miter of the two networks under comparison and simulates
// it with bit-parallel truth tables (package simulation), partitioning the
// input space so the working set stays under a fixed memory ceiling.
//
// booleq targets networks with at most 40 primary inputs; larger networks
// are reported as undecidable rather than attempted.
package booleq

import (
	"github.com/blang/semver/v4"
)

// Version of the booleq library.
var Version = semver.MustParse("0.1.0")
