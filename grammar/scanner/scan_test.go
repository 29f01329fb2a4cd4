package scanner

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// collect renders all tokens of a tokenizer as a string, symbols in brackets.
func collect(tok Tokenizer) string {
	var b strings.Builder
	for token := tok.NextToken(); token.TokType() != EOF; token = tok.NextToken() {
		switch token.TokType() {
		case Symbol:
			b.WriteString("[" + token.Lexeme() + "]")
		case Bar:
			b.WriteString("|")
		}
	}
	return b.String()
}

var spaceInputs = []struct {
	input, tokens string
}{
	{"", ""},
	{"   ", ""},
	{"a", "[a]"},
	{" a S b | eps", "[a][S][b]|[eps]"},
	{"x y|z", "[x][y]|[z]"},
	{"x||y", "[x]||[y]"},
	{"x |", "[x]|"},
	{"a\tb c", "[a\tb][c]"},
	{`"a b"`, `["a][b"]`},
}

func TestSpaceTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.scanner")
	defer teardown()
	//
	for i, x := range spaceInputs {
		if tokens := collect(Spaces(x.input)); tokens != x.tokens {
			t.Errorf("#%d: expected %q to scan as %q, have %q", i, x.input, x.tokens, tokens)
		}
	}
}

func TestSpaceTokenizerSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.scanner")
	defer teardown()
	//
	tok := Spaces("ab |cd")
	want := [][2]uint64{{0, 2}, {3, 4}, {4, 6}, {6, 6}}
	for i, w := range want {
		token := tok.NextToken()
		if token.Span().From() != w[0] || token.Span().To() != w[1] {
			t.Errorf("token #%d %q: expected span %v, have %s", i, token.Lexeme(), w, token.Span())
		}
	}
}

var quotedInputs = []struct {
	input, tokens string
}{
	{"", ""},
	{"a S b | eps", "[a][S][b]|[eps]"},
	{`"a b" c`, "[a b][c]"},
	{`"|" | x`, "[|]|[x]"},
	{`\" x`, `["][x]`},
	{`"" x`, "[x]"},
	{"x|y", "[x]|[y]"},
	{`\"x`, `["][x]`},
	{`"abc`, `["][abc]`},
	{`a\b"c`, `[a\b"c]`},
}

func TestLMTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.scanner")
	defer teardown()
	//
	lm, err := NewLMAdapter()
	if err != nil {
		t.Fatal(err)
	}
	for i, x := range quotedInputs {
		if tokens := collect(lm.Tokenizer(x.input)); tokens != x.tokens {
			t.Errorf("#%d: expected %q to scan as %q, have %q", i, x.input, x.tokens, tokens)
		}
	}
}

func TestLMScannerErrorHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bnfgram.scanner")
	defer teardown()
	//
	lm, err := NewLMAdapter()
	if err != nil {
		t.Fatal(err)
	}
	sc, err := lm.Scanner("a b")
	if err != nil {
		t.Fatal(err)
	}
	errs := 0
	sc.SetErrorHandler(func(error) { errs++ })
	if tokens := collect(sc); tokens != "[a][b]" {
		t.Errorf("unexpected tokens %q", tokens)
	}
	if errs != 0 {
		t.Errorf("expected no scanner errors, have %d", errs)
	}
}
