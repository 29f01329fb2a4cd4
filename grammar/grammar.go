package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/bnfgram"
	"github.com/npillmayer/bnfgram/grammar/scanner"
)

// ErrUndefinedAxiom is returned when asking for the axiom of a grammar without
// non-terminals.
var ErrUndefinedAxiom = errors.New("undefined axiom")

// ErrNotNonTerminal is returned when a name does not denote a non-terminal
// where one is required.
var ErrNotNonTerminal = errors.New("not a non-terminal")

// Grammar is a type for a grammar: a symbol table, an axiom and, for every
// non-terminal, a list of alternatives. Each alternative is a sequence of symbol IDs.
// Create a grammar with New and add rules with AddProduction.
type Grammar struct {
	Name      string
	symbols   *SymbolTable
	axiom     SymID                  // explicitly set axiom, or NoSymbol
	rules     map[SymID][][]SymID    // non-terminal → alternatives
	spans     map[SymID]bnfgram.Span // non-terminal → source lines of its rule
	tokenizer scanner.Factory        // splits right-hand sides
	epsilon   string                 // symbol for an empty alternative, if any
}

// Option configures a grammar.
type Option func(g *Grammar)

// WithTokenizer sets the scanner for right-hand sides. Default is scanner.Spaces.
func WithTokenizer(f scanner.Factory) Option {
	return func(g *Grammar) {
		if f != nil {
			g.tokenizer = f
		}
	}
}

// EpsilonMarker sets a symbol name which stands for the empty word, e.g. "€".
// The marker does not contribute to an alternative and will never
// become a terminal.
func EpsilonMarker(marker string) Option {
	return func(g *Grammar) {
		g.epsilon = marker
	}
}

// New creates an empty grammar.
func New(name string, opts ...Option) *Grammar {
	g := &Grammar{
		Name:      name,
		symbols:   NewSymbolTable(),
		rules:     make(map[SymID][][]SymID),
		spans:     make(map[SymID]bnfgram.Span),
		tokenizer: scanner.Spaces,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// --- Mutation ----------------------------------------------------------------

// AddProduction declares lhs as a non-terminal and replaces its alternatives by
// the ones given in rhs.
//
// The right-hand side is split by its tokenizer. Every symbol name is resolved
// or defined as a new terminal and appended to the current alternative; '|'
// starts a new alternative. The last alternative is always added, even if it is
// empty. Therefore an empty rhs results in a single empty alternative.
//
// An empty lhs is ignored.
//
func (g *Grammar) AddProduction(lhs string, rhs string) {
	g.AddProductionSpan(lhs, rhs, bnfgram.Span{})
}

// AddProductionSpan is like AddProduction, additionally recording the source
// lines the rule has been read from.
func (g *Grammar) AddProductionSpan(lhs string, rhs string, lines bnfgram.Span) {
	left, old := g.symbols.DeclareNonTerminal(lhs)
	if left == nil {
		tracer().Debugf("ignoring rule with empty left-hand side")
		return
	}
	if old != NoSymbol {
		g.rewrite(old, left.id)
	}
	tok := g.tokenizer(rhs)
	alternatives := [][]SymID{}
	current := []SymID{}
	for token := tok.NextToken(); token.TokType() != scanner.EOF; token = tok.NextToken() {
		switch token.TokType() {
		case scanner.Bar:
			alternatives = append(alternatives, current)
			current = []SymID{}
		case scanner.Symbol:
			if g.epsilon != "" && token.Lexeme() == g.epsilon {
				continue
			}
			if sym, _ := g.symbols.ResolveOrDefine(token.Lexeme()); sym != nil {
				current = append(current, sym.id)
			}
		}
	}
	alternatives = append(alternatives, current)
	if _, exists := g.rules[left.id]; exists {
		tracer().Debugf("replacing rules for %s", left)
	}
	g.warnDuplicates(left, alternatives)
	g.rules[left.id] = alternatives
	if lines.IsNull() {
		delete(g.spans, left.id)
	} else {
		g.spans[left.id] = lines
	}
}

// rewrite replaces every reference to a re-classified terminal.
func (g *Grammar) rewrite(from, to SymID) {
	for _, alts := range g.rules {
		for _, alt := range alts {
			for i, id := range alt {
				if id == from {
					alt[i] = to
				}
			}
		}
	}
}

func (g *Grammar) warnDuplicates(left *Symbol, alternatives [][]SymID) {
	seen := make(map[string]struct{}, len(alternatives))
	for _, alt := range alternatives {
		key := fmt.Sprint(alt)
		if _, dup := seen[key]; dup {
			tracer().Infof("rule '%s -> %s' is duplicated", left.Name(), strings.Join(g.Names(alt), " "))
			continue
		}
		seen[key] = struct{}{}
	}
}

// SetAxiom sets the axiom explicitly. name has to be a non-terminal.
func (g *Grammar) SetAxiom(name string) error {
	sym := g.symbols.Resolve(name)
	if sym == nil || !sym.id.IsNonTerminal() {
		return fmt.Errorf("cannot set axiom '%s': %w", name, ErrNotNonTerminal)
	}
	g.axiom = sym.id
	return nil
}

// --- Queries -----------------------------------------------------------------

// Axiom returns the ID of the axiom, or NoSymbol if there are no non-terminals.
func (g *Grammar) Axiom() SymID {
	if g.axiom != NoSymbol {
		return g.axiom
	}
	if g.symbols.NonTerminalCount() == 0 {
		return NoSymbol
	}
	return SymID(-1) // first declared non-terminal
}

// AxiomName returns the name of the axiom. For a grammar without non-terminals
// ErrUndefinedAxiom is returned.
func (g *Grammar) AxiomName() (string, error) {
	axiom := g.Axiom()
	if axiom == NoSymbol {
		return "", fmt.Errorf("grammar '%s': %w", g.Name, ErrUndefinedAxiom)
	}
	return g.symbols.Lookup(axiom).Name(), nil
}

// NonTerminal returns the ID of a non-terminal.
func (g *Grammar) NonTerminal(name string) (SymID, bool) {
	if sym := g.symbols.Resolve(name); sym != nil && sym.id.IsNonTerminal() {
		return sym.id, true
	}
	return NoSymbol, false
}

// Terminal returns the ID of a terminal.
func (g *Grammar) Terminal(name string) (SymID, bool) {
	if sym := g.symbols.Resolve(name); sym != nil && sym.id.IsTerminal() {
		return sym.id, true
	}
	return NoSymbol, false
}

// ProductionsOf returns a copy of the alternatives of a non-terminal.
func (g *Grammar) ProductionsOf(name string) ([][]SymID, bool) {
	id, ok := g.NonTerminal(name)
	if !ok {
		return nil, false
	}
	alts, ok := g.rules[id]
	if !ok {
		return nil, false
	}
	return copyAlternatives(alts), true
}

// RuleSpan returns the source lines the rule for a non-terminal was read from.
func (g *Grammar) RuleSpan(name string) (bnfgram.Span, bool) {
	id, ok := g.NonTerminal(name)
	if !ok {
		return bnfgram.Span{}, false
	}
	span, ok := g.spans[id]
	return span, ok
}

// SymbolName returns the name of a symbol, given its ID.
func (g *Grammar) SymbolName(id SymID) (string, bool) {
	if sym := g.symbols.Lookup(id); sym != nil {
		return sym.Name(), true
	}
	return "", false
}

// Names resolves the IDs of an alternative to symbol names. Unknown IDs are
// rendered as '?'.
func (g *Grammar) Names(alt []SymID) []string {
	names := make([]string, len(alt))
	for i, id := range alt {
		if name, ok := g.SymbolName(id); ok {
			names[i] = name
		} else {
			names[i] = "?"
		}
	}
	return names
}

// NonTerminals returns a map of all non-terminals, ID → name.
func (g *Grammar) NonTerminals() map[SymID]string {
	m := make(map[SymID]string, g.symbols.NonTerminalCount())
	g.symbols.EachNonTerminal(func(sym *Symbol) {
		m[sym.id] = sym.Name()
	})
	return m
}

// Terminals returns a map of all terminals, ID → name.
func (g *Grammar) Terminals() map[SymID]string {
	m := make(map[SymID]string, g.symbols.TerminalCount())
	g.symbols.EachTerminal(func(sym *Symbol) {
		m[sym.id] = sym.Name()
	})
	return m
}

// Rules returns a copy of all rules, non-terminal ID → alternatives.
func (g *Grammar) Rules() map[SymID][][]SymID {
	m := make(map[SymID][][]SymID, len(g.rules))
	for id, alts := range g.rules {
		m[id] = copyAlternatives(alts)
	}
	return m
}

// EachNonTerminal iterates over all non-terminals in order of declaration.
func (g *Grammar) EachNonTerminal(mapper func(id SymID, name string)) {
	g.symbols.EachNonTerminal(func(sym *Symbol) {
		mapper(sym.id, sym.Name())
	})
}

// EachTerminal iterates over all terminals in order of their first occurence.
func (g *Grammar) EachTerminal(mapper func(id SymID, name string)) {
	g.symbols.EachTerminal(func(sym *Symbol) {
		mapper(sym.id, sym.Name())
	})
}

func copyAlternatives(alts [][]SymID) [][]SymID {
	c := make([][]SymID, len(alts))
	for i, alt := range alts {
		c[i] = append([]SymID{}, alt...)
	}
	return c
}
