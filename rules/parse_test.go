package rules

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/bnfgram/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplitLines(t *testing.T) {
	for i, x := range []struct {
		text  string
		lines []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\rb", []string{"a\rb"}},
		{"\n\n", []string{"", ""}},
		{"a\r", []string{"a\r"}},
	} {
		if lines := SplitLines(x.text); !reflect.DeepEqual(lines, x.lines) {
			t.Errorf("#%d: expected %q, have %q", i, x.lines, lines)
		}
	}
}

func TestSplitOnDelimiter(t *testing.T) {
	for i, x := range []struct {
		line, delim, lhs, rhs string
	}{
		{"A -> x", "->", "A ", " x"},
		{"A -> x -> y", "->", "A ", " x -> y"},
		{"A x", "->", "A x", ""},
		{"A ::= .*", "::=", "A ", " .*"},
		{"A .* x", ".*", "A ", " x"},
	} {
		lhs, rhs := SplitOnDelimiter(x.line, x.delim)
		if lhs != x.lhs || rhs != x.rhs {
			t.Errorf("#%d: expected (%q, %q), have (%q, %q)", i, x.lhs, x.rhs, lhs, rhs)
		}
	}
}

func TestNormalizeDelimiter(t *testing.T) {
	if d := NormalizeDelimiter(" "); d != DefaultDelimiter {
		t.Errorf("expected default delimiter, have %q", d)
	}
	if d := NormalizeDelimiter(" : = "); d != ":=" {
		t.Errorf("expected ':=', have %q", d)
	}
}

func names(g *grammar.Grammar, name string) [][]string {
	alts, ok := g.ProductionsOf(name)
	if !ok {
		return nil
	}
	r := make([][]string, len(alts))
	for i, alt := range alts {
		r[i] = g.Names(alt)
	}
	return r
}

func TestParseReclassifies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.rules")
	defer teardown()
	//
	g := Parse("A -> B\nB -> c")
	if id, ok := g.NonTerminal("B"); !ok || id >= 0 {
		t.Errorf("B should be a non-terminal, is %d", id)
	}
	if id, ok := g.Terminal("c"); !ok || id <= 0 {
		t.Errorf("c should be a terminal, is %d", id)
	}
}

func TestParseLastWriteWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.rules")
	defer teardown()
	//
	g := Parse("A -> x\nA -> y")
	if alts := names(g, "A"); !reflect.DeepEqual(alts, [][]string{{"y"}}) {
		t.Errorf("expected [[y]], have %v", alts)
	}
}

func TestParseAlternation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.rules")
	defer teardown()
	//
	g := Parse("A -> x y | z")
	want := [][]string{{"x", "y"}, {"z"}}
	if alts := names(g, "A"); !reflect.DeepEqual(alts, want) {
		t.Errorf("expected %v, have %v", want, alts)
	}
}

func TestParseSkipsEmptyLHS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.rules")
	defer teardown()
	//
	g := Parse("  -> x\n\n")
	if len(g.NonTerminals()) != 0 || len(g.Terminals()) != 0 || len(g.Rules()) != 0 {
		t.Errorf("expected empty grammar, have %v / %v", g.NonTerminals(), g.Terminals())
	}
}

func TestParseEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.rules")
	defer teardown()
	//
	g := Parse("")
	if _, err := g.AxiomName(); !errors.Is(err, grammar.ErrUndefinedAxiom) {
		t.Errorf("expected ErrUndefinedAxiom, have %v", err)
	}
}

func TestParseMissingDelimiter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.rules")
	defer teardown()
	//
	g := Parse("S a b")
	if _, ok := g.NonTerminal("Sab"); !ok {
		t.Errorf("line without delimiter should declare non-terminal 'Sab'")
	}
	if alts := names(g, "Sab"); !reflect.DeepEqual(alts, [][]string{{}}) {
		t.Errorf("expected a single empty alternative, have %v", alts)
	}
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.rules")
	defer teardown()
	//
	g := Parse("S -> a S b | eps\r\neps -> ")
	if axiom, err := g.AxiomName(); err != nil || axiom != "S" {
		t.Errorf("expected axiom S, have %q (%v)", axiom, err)
	}
	if len(g.NonTerminals()) != 2 || len(g.Terminals()) != 2 {
		t.Errorf("expected 2 non-terminals and 2 terminals, have %v and %v",
			g.NonTerminals(), g.Terminals())
	}
	for _, name := range []string{"a", "b"} {
		if _, ok := g.Terminal(name); !ok {
			t.Errorf("%s should be a terminal", name)
		}
	}
	want := [][]string{{"a", "S", "b"}, {"eps"}}
	if alts := names(g, "S"); !reflect.DeepEqual(alts, want) {
		t.Errorf("expected %v, have %v", want, alts)
	}
	if alts := names(g, "eps"); !reflect.DeepEqual(alts, [][]string{{}}) {
		t.Errorf("expected [[]] for eps, have %v", alts)
	}
	if span, ok := g.RuleSpan("eps"); !ok || span.From() != 2 {
		t.Errorf("expected rule for eps on line 2, have %v", span)
	}
}

func TestParseOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.rules")
	defer teardown()
	//
	text := `# operators
Op ::= "|" | "::=" # two operators
E  ::= Op | €
`
	g := Parse(text, Name("Ops"), Delimiter("::="), CommentMarker("#"),
		QuotedSymbols(true), Epsilon("€"))
	if g.Name != "Ops" {
		t.Errorf("expected grammar name Ops, have %s", g.Name)
	}
	if alts := names(g, "Op"); !reflect.DeepEqual(alts, [][]string{{"|"}, {"::="}}) {
		t.Errorf("unexpected alternatives for Op: %v", alts)
	}
	if alts := names(g, "E"); !reflect.DeepEqual(alts, [][]string{{"Op"}, {}}) {
		t.Errorf("unexpected alternatives for E: %v", alts)
	}
}

func TestParseReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.rules")
	defer teardown()
	//
	g, err := ParseReader(strings.NewReader("S -> x"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.Terminal("x"); !ok {
		t.Errorf("expected terminal x")
	}
	if _, err := ParseReader(iotest.ErrReader(errors.New("boom"))); err == nil {
		t.Errorf("expected read error")
	}
}
