package rules

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bnfgram"
	"github.com/npillmayer/bnfgram/grammar"
	"github.com/npillmayer/bnfgram/grammar/scanner"
)

// DefaultDelimiter separates left-hand side and right-hand side if no
// other delimiter is configured.
const DefaultDelimiter = "->"

// --- Options -----------------------------------------------------------------

type config struct {
	name      string
	delimiter string
	comment   string
	quoted    bool
	epsilon   string
}

// Option configures the rule parser.
type Option func(c *config)

// Name sets the name of the resulting grammar. Default is "G".
func Name(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// Delimiter sets the string separating left-hand side and right-hand side.
// The delimiter is matched literally. An empty delimiter selects DefaultDelimiter.
func Delimiter(delim string) Option {
	return func(c *config) {
		if delim == "" {
			delim = DefaultDelimiter
		}
		c.delimiter = delim
	}
}

// CommentMarker sets a marker for line comments. Everything from the marker to
// the end of a line is discarded before the line is split. Default is no comments.
func CommentMarker(marker string) Option {
	return func(c *config) {
		c.comment = marker
	}
}

// QuotedSymbols switches to a scanner for right-hand sides which understands
// quoted symbols, e.g. "|" or "a b".
func QuotedSymbols(b bool) Option {
	return func(c *config) {
		c.quoted = b
	}
}

// Epsilon sets a symbol name denoting the empty word. See grammar.EpsilonMarker.
func Epsilon(marker string) Option {
	return func(c *config) {
		c.epsilon = marker
	}
}

// NormalizeDelimiter removes spaces from a delimiter entered by a user and
// replaces an empty delimiter by DefaultDelimiter.
func NormalizeDelimiter(delim string) string {
	delim = strings.ReplaceAll(delim, " ", "")
	if delim == "" {
		return DefaultDelimiter
	}
	return delim
}

// --- Parsing -----------------------------------------------------------------

// Parse reads a grammar description, given as text. It never fails; see
// the package documentation for the treatment of malformed lines.
func Parse(text string, opts ...Option) *grammar.Grammar {
	c := &config{name: "G", delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(c)
	}
	gopts := []grammar.Option{grammar.EpsilonMarker(c.epsilon)}
	if c.quoted {
		if lm, err := scanner.NewLMAdapter(); err != nil {
			tracer().Errorf("cannot use quoted symbols: %v", err)
		} else {
			gopts = append(gopts, grammar.WithTokenizer(lm.Tokenizer))
		}
	}
	g := grammar.New(c.name, gopts...)
	for lineno, line := range SplitLines(text) {
		if c.comment != "" {
			if i := strings.Index(line, c.comment); i >= 0 {
				line = line[:i]
			}
		}
		lhs, rhs := SplitOnDelimiter(line, c.delimiter)
		lhs = strings.ReplaceAll(lhs, " ", "")
		if lhs == "" {
			tracer().Debugf("line %d: empty left-hand side, skipped", lineno+1)
			continue
		}
		span := bnfgram.Span{uint64(lineno + 1), uint64(lineno + 2)}
		g.AddProductionSpan(lhs, rhs, span)
		tracer().Debugf("Parsed: %s %s %s", lhs, c.delimiter, rhs)
	}
	return g
}

// ParseReader reads a grammar description from r. See Parse.
func ParseReader(r io.Reader, opts ...Option) (*grammar.Grammar, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar: %w", err)
	}
	return Parse(string(text), opts...), nil
}

// SplitLines splits text into lines. Both "\n" and "\r\n" end a line, a single
// '\r' does not. A last line without line ending is included, empty text has no lines.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		} else if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			lines = append(lines, text[start:i])
			i++
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// SplitOnDelimiter splits a line at the first occurence of delim. If delim
// does not occur, the whole line is returned as lhs.
func SplitOnDelimiter(line, delim string) (lhs string, rhs string) {
	if delim == "" {
		return line, ""
	}
	if i := strings.Index(line, delim); i >= 0 {
		return line[:i], line[i+len(delim):]
	}
	return line, ""
}
