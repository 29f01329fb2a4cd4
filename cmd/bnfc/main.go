package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/bnfgram/grammar"
	"github.com/npillmayer/bnfgram/rules"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// traceKeys are the tracers of all packages of this module.
var traceKeys = []string{"bnfgram.cli", "bnfgram.grammar", "bnfgram.scanner", "bnfgram.rules"}

type options struct {
	delimiter   string
	comment     string
	epsilon     string
	quoted      bool
	interactive bool
	format      string
	trace       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "bnfc [grammar-file]",
		Short: "Load a BNF grammar description and print the grammar",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.delimiter, "delimiter", "d", "", "Delimiter between left and right side (default \"->\")")
	flags.StringVarP(&opts.comment, "comment", "c", "", "Line comment marker, e.g. '#'")
	flags.StringVar(&opts.epsilon, "epsilon", "", "Symbol denoting the empty word, e.g. '€'")
	flags.BoolVarP(&opts.quoted, "quoted", "q", false, "Allow quoted symbols")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "Query the grammar after loading")
	flags.StringVarP(&opts.format, "format", "f", "pretty", "Output format [pretty|table]")
	flags.StringVarP(&opts.trace, "trace", "t", "Info", "Trace level [Debug|Info|Error]")
	return cmd
}

func run(opts *options, args []string) error {
	initDisplay()
	initTracing(opts.trace)
	path, delim := "", opts.delimiter
	if len(args) > 0 {
		path = args[0]
	} else {
		p, err := newPrompter()
		if err != nil {
			return err
		}
		path, delim, err = p.ask(delim)
		p.close()
		if err != nil {
			return err
		}
	}
	g, err := load(path, opts, delim)
	if err != nil {
		return err
	}
	g.Dump() // only visible in debug mode
	switch opts.format {
	case "table":
		writeReport(os.Stdout, g)
	case "pretty":
		showGrammar(g)
	default:
		return fmt.Errorf("unknown output format '%s'", opts.format)
	}
	if opts.interactive {
		return runREPL(g)
	}
	return nil
}

// load reads and parses a grammar file.
func load(path string, opts *options, delim string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file \"%s\" does not exist", path)
		}
		return nil, fmt.Errorf("cannot open grammar file: %w", err)
	}
	defer f.Close()
	delim = rules.NormalizeDelimiter(delim)
	tracer().Infof("Input file is \"%s\"", path)
	tracer().Infof("Delimiter used: \"%s\"", delim)
	g, err := rules.ParseReader(f,
		rules.Name(path),
		rules.Delimiter(delim),
		rules.CommentMarker(opts.comment),
		rules.QuotedSymbols(opts.quoted),
		rules.Epsilon(opts.epsilon),
	)
	if err != nil {
		return nil, err
	}
	tracer().Infof("Parsing completed successfully")
	return g, nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Debugf("Trace level is %s", level)
}
