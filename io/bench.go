// Package io reads logic networks from netlist files.
//
// The supported input format is ISCAS BENCH: INPUT/OUTPUT declarations and
// gate assignments of the form `g = AND(a, b, ...)`. Only combinational
// gates are accepted; DFF is rejected.
package io

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/go-logic/booleq/logic"
)

// Matches statements of the form:
//
//	V0 = AND(A, X1)
//	V1 = NOT(X1)
//
// capturing the output name, the gate type and the argument list.
var gateRE = regexp.MustCompile(`^(\w+)\s*=\s*(\w+)\s*\(([\w\s,]+)\)$`)

// Matches INPUT(x) / OUTPUT(x) declarations.
var inOutRE = regexp.MustCompile(`^(INPUT|OUTPUT)\s*\((\w+)\)$`)

type benchGate struct {
	kind string
	args []string
	line int
}

// ParseBench reads a BENCH netlist and returns the equivalent and-inverter
// graph. Primary inputs and outputs keep the declaration order of the file.
func ParseBench(r io.Reader) (*logic.AIG, error) {
	g := logic.New()
	signals := make(map[string]logic.Signal)
	gates := make(map[string]benchGate)
	var outputs []string

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if m := inOutRE.FindStringSubmatch(line); m != nil {
			name := m[2]
			if m[1] == "INPUT" {
				if _, ok := signals[name]; ok {
					return nil, fmt.Errorf("line %d: duplicate input %q", lineno, name)
				}
				signals[name] = g.Input()
			} else {
				outputs = append(outputs, name)
			}
			continue
		}
		if m := gateRE.FindStringSubmatch(line); m != nil {
			name := m[1]
			if _, ok := gates[name]; ok {
				return nil, fmt.Errorf("line %d: duplicate gate %q", lineno, name)
			}
			var args []string
			for _, a := range strings.Split(m[3], ",") {
				args = append(args, strings.TrimSpace(a))
			}
			gates[name] = benchGate{kind: strings.ToUpper(m[2]), args: args, line: lineno}
			continue
		}
		return nil, fmt.Errorf("line %d: cannot parse %q", lineno, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	p := &benchResolver{g: g, signals: signals, gates: gates}
	for _, name := range outputs {
		s, err := p.resolve(name)
		if err != nil {
			return nil, err
		}
		g.Output(s)
	}
	return g, nil
}

// benchResolver elaborates gates on demand so that definitions may appear
// in any order in the file.
type benchResolver struct {
	g       *logic.AIG
	signals map[string]logic.Signal
	gates   map[string]benchGate
	stack   []string
}

func (p *benchResolver) resolve(name string) (logic.Signal, error) {
	if s, ok := p.signals[name]; ok {
		return s, nil
	}
	gate, ok := p.gates[name]
	if !ok {
		return 0, fmt.Errorf("undefined signal %q", name)
	}
	for _, seen := range p.stack {
		if seen == name {
			return 0, fmt.Errorf("line %d: combinational cycle through %q", gate.line, name)
		}
	}
	p.stack = append(p.stack, name)
	defer func() { p.stack = p.stack[:len(p.stack)-1] }()

	args := make([]logic.Signal, len(gate.args))
	for i, a := range gate.args {
		s, err := p.resolve(a)
		if err != nil {
			return 0, err
		}
		args[i] = s
	}
	s, err := p.build(gate, args)
	if err != nil {
		return 0, err
	}
	p.signals[name] = s
	return s, nil
}

func (p *benchResolver) build(gate benchGate, args []logic.Signal) (logic.Signal, error) {
	unary := func() (logic.Signal, error) {
		if len(args) != 1 {
			return 0, fmt.Errorf("line %d: %s takes one argument", gate.line, gate.kind)
		}
		return args[0], nil
	}
	switch gate.kind {
	case "AND", "NAND":
		s := p.g.True()
		for _, a := range args {
			s = p.g.And(s, a)
		}
		if gate.kind == "NAND" {
			s = s.Not()
		}
		return s, nil
	case "OR", "NOR":
		s := p.g.False()
		for _, a := range args {
			s = p.g.Or(s, a)
		}
		if gate.kind == "NOR" {
			s = s.Not()
		}
		return s, nil
	case "XOR", "XNOR":
		if len(args) < 2 {
			return 0, fmt.Errorf("line %d: %s takes at least two arguments", gate.line, gate.kind)
		}
		s := args[0]
		for _, a := range args[1:] {
			s = p.g.Xor(s, a)
		}
		if gate.kind == "XNOR" {
			s = s.Not()
		}
		return s, nil
	case "NOT":
		s, err := unary()
		if err != nil {
			return 0, err
		}
		return s.Not(), nil
	case "BUFF", "BUF":
		return unary()
	case "DFF":
		return 0, fmt.Errorf("line %d: DFF is sequential; only combinational networks are supported", gate.line)
	default:
		return 0, fmt.Errorf("line %d: unknown gate type %q", gate.line, gate.kind)
	}
}
