package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// --- Symbol IDs -------------------------------------------------------

// SymID is the integer handle of a grammar symbol. Terminals have positive IDs,
// non-terminals negative ones.
type SymID int

// NoSymbol is the reserved zero ID.
const NoSymbol SymID = 0

// IsTerminal is true for terminal IDs.
func (id SymID) IsTerminal() bool {
	return id > 0
}

// IsNonTerminal is true for non-terminal IDs.
func (id SymID) IsNonTerminal() bool {
	return id < 0
}

// Kind is the namespace of a symbol.
type Kind int8

// Kinds of symbols
const (
	Unknown Kind = iota
	Terminal
	NonTerminal
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	}
	return "unknown"
}

// Kind returns the namespace an ID belongs to.
func (id SymID) Kind() Kind {
	switch {
	case id > 0:
		return Terminal
	case id < 0:
		return NonTerminal
	}
	return Unknown
}

// --- Symbols ----------------------------------------------------------

// Symbol is an entry of a symbol table. Its kind is encoded in the sign of
// its ID and may change from terminal to non-terminal, but never back.
type Symbol struct {
	name string
	id   SymID
}

// ID gets the symbol's ID.
func (s *Symbol) ID() SymID {
	return s.id
}

// Name gets the symbol's name.
func (s *Symbol) Name() string {
	return s.name
}

// IsTerminal is a predicate for terminal symbols.
func (s *Symbol) IsTerminal() bool {
	return s.id.IsTerminal()
}

// String is a debug Stringer for symbols.
func (s *Symbol) String() string {
	return fmt.Sprintf("<sym '%s':%d>", s.name, s.id)
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store grammar symbols (map-like semantics).
// Symbols are unique by name. Additionally the table keeps an index for
// terminals and non-terminals, each ordered by allocation.
type SymbolTable struct {
	table     map[string]*Symbol
	terminals *treemap.Map // allocation serial → *Symbol
	nonterms  *treemap.Map // allocation serial → *Symbol
	tserial   int          // count of terminal allocations
	nserial   int          // count of non-terminal allocations
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		table:     make(map[string]*Symbol),
		terminals: treemap.NewWith(utils.IntComparator),
		nonterms:  treemap.NewWith(utils.IntComparator),
	}
	return &symtab
}

// Resolve checks for a symbol in the symbol table.
// Returns a symbol or nil.
//
func (t *SymbolTable) Resolve(name string) *Symbol {
	return t.table[name]
}

// Lookup finds a symbol by ID. Returns a symbol or nil.
func (t *SymbolTable) Lookup(id SymID) *Symbol {
	var sym interface{}
	var found bool
	switch id.Kind() {
	case Terminal:
		sym, found = t.terminals.Get(int(id))
	case NonTerminal:
		sym, found = t.nonterms.Get(int(-id))
	}
	if !found {
		return nil
	}
	return sym.(*Symbol)
}

// ResolveOrDefine finds a symbol in the table, inserts a new terminal if not
// found. Existing symbols are returned unchanged, whatever their kind.
// Returns the symbol and a flag, signalling wether the symbol
// has already been present.
//
// Symbol names may not be empty; for an empty name nil is returned.
//
func (t *SymbolTable) ResolveOrDefine(name string) (*Symbol, bool) {
	if len(name) == 0 {
		return nil, false
	}
	if sym := t.Resolve(name); sym != nil {
		return sym, true
	}
	t.tserial++
	sym := &Symbol{name: name, id: SymID(t.tserial)}
	t.table[name] = sym
	t.terminals.Put(t.tserial, sym)
	tracer().Debugf("new terminal %s", sym)
	return sym, false
}

// DeclareNonTerminal makes sure name denotes a non-terminal.
// An existing non-terminal is returned unchanged. An existing terminal is
// re-classified: it receives a fresh non-terminal ID, and its former ID is
// returned as the second return value. Otherwise a new non-terminal is inserted.
//
// Symbol names may not be empty; for an empty name nil is returned.
//
func (t *SymbolTable) DeclareNonTerminal(name string) (*Symbol, SymID) {
	if len(name) == 0 {
		return nil, NoSymbol
	}
	sym := t.Resolve(name)
	if sym != nil && sym.id.IsNonTerminal() {
		return sym, NoSymbol
	}
	old := NoSymbol
	if sym == nil {
		sym = &Symbol{name: name}
		t.table[name] = sym
	} else {
		old = sym.id
		t.terminals.Remove(int(old))
	}
	t.nserial++
	sym.id = SymID(-t.nserial)
	t.nonterms.Put(t.nserial, sym)
	if old != NoSymbol {
		tracer().P("was", old).Debugf("terminal re-classified as %s", sym)
	} else {
		tracer().Debugf("new non-terminal %s", sym)
	}
	return sym, old
}

// Size counts the symbols in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.table)
}

// TerminalCount counts the terminals in a symbol table.
func (t *SymbolTable) TerminalCount() int {
	return t.terminals.Size()
}

// NonTerminalCount counts the non-terminals in a symbol table.
func (t *SymbolTable) NonTerminalCount() int {
	return t.nonterms.Size()
}

// EachTerminal iterates over the terminals in order of allocation.
func (t *SymbolTable) EachTerminal(mapper func(*Symbol)) {
	each(t.terminals, mapper)
}

// EachNonTerminal iterates over the non-terminals in order of allocation.
func (t *SymbolTable) EachNonTerminal(mapper func(*Symbol)) {
	each(t.nonterms, mapper)
}

func each(index *treemap.Map, mapper func(*Symbol)) {
	it := index.Iterator()
	for it.Next() {
		mapper(it.Value().(*Symbol))
	}
}
