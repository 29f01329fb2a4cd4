package grammar

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

// Dump is a debugging helper, printing all rules to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	g.EachNonTerminal(func(id SymID, name string) {
		alts, ok := g.rules[id]
		if !ok {
			tracer().Debugf("%3d: [%s] has no rules", id, name)
			return
		}
		for _, alt := range alts {
			tracer().Debugf("%3d: [%s] ::= [%s]", id, name, strings.Join(g.Names(alt), " "))
		}
	})
	tracer().Debugf("-------------------------------------------------------")
}

// Snapshot is a name-resolved view of a grammar, independent of symbol IDs.
type Snapshot struct {
	Axiom        string
	NonTerminals []string // in order of declaration
	Terminals    []string // in order of first occurence
	Rules        []RuleSnapshot
}

// RuleSnapshot is a name-resolved rule.
type RuleSnapshot struct {
	LHS          string
	Alternatives [][]string
}

// Snapshot creates a name-resolved view of the grammar.
func (g *Grammar) Snapshot() Snapshot {
	s := Snapshot{}
	s.Axiom, _ = g.AxiomName()
	g.EachNonTerminal(func(id SymID, name string) {
		s.NonTerminals = append(s.NonTerminals, name)
		alts, ok := g.rules[id]
		if !ok {
			return
		}
		r := RuleSnapshot{LHS: name, Alternatives: make([][]string, len(alts))}
		for i, alt := range alts {
			r.Alternatives[i] = g.Names(alt)
		}
		s.Rules = append(s.Rules, r)
	})
	g.EachTerminal(func(id SymID, name string) {
		s.Terminals = append(s.Terminals, name)
	})
	return s
}

// Fingerprint returns a hash of the grammar's name-resolved snapshot. Grammars
// with identical snapshots have identical fingerprints.
func (g *Grammar) Fingerprint() (string, error) {
	h, err := structhash.Hash(g.Snapshot(), 1)
	if err != nil {
		return "", fmt.Errorf("cannot hash grammar '%s': %w", g.Name, err)
	}
	return h, nil
}
