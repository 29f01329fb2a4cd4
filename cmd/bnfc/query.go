package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/bnfgram/grammar"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var errQuit = errors.New("quit")

// querier answers queries about a loaded grammar.
type querier struct {
	g *grammar.Grammar
}

// Eval evaluates a single query line. It returns errQuit for the quit command.
func (q querier) Eval(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	cmd, args := args[0], args[1:]
	tracer().Debugf("query %s %v", cmd, args)
	switch cmd {
	case "quit", "exit":
		return "", errQuit
	case "axiom":
		return q.g.AxiomName()
	case "symbols":
		nts := maps.Values(q.g.NonTerminals())
		ts := maps.Values(q.g.Terminals())
		slices.Sort(nts)
		slices.Sort(ts)
		return fmt.Sprintf("non-terminals: %s\nterminals: %s",
			strings.Join(nts, " "), strings.Join(ts, " ")), nil
	case "hash":
		return q.g.Fingerprint()
	case "nt", "t", "rules":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: %s <name>", cmd)
		}
		return q.lookup(cmd, args[0])
	}
	return "", fmt.Errorf("unknown command '%s'", cmd)
}

func (q querier) lookup(cmd, name string) (string, error) {
	switch cmd {
	case "nt":
		if id, ok := q.g.NonTerminal(name); ok {
			return fmt.Sprintf("%s = %d", name, id), nil
		}
		return "", fmt.Errorf("'%s' is not a non-terminal", name)
	case "t":
		if id, ok := q.g.Terminal(name); ok {
			return fmt.Sprintf("%s = %d", name, id), nil
		}
		return "", fmt.Errorf("'%s' is not a terminal", name)
	}
	alts, ok := q.g.ProductionsOf(name)
	if !ok {
		return "", fmt.Errorf("no rules for '%s'", name)
	}
	lines := make([]string, len(alts))
	for i, alt := range alts {
		lines[i] = fmt.Sprintf("%s -> %s", name, alternativeString(q.g, alt))
	}
	if span, ok := q.g.RuleSpan(name); ok {
		lines = append(lines, fmt.Sprintf("(line %d)", span.From()))
	}
	return strings.Join(lines, "\n"), nil
}
