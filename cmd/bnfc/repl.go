package main

import (
	"errors"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/bnfgram/grammar"
	"github.com/pterm/pterm"
)

// runREPL starts interactive mode.
func runREPL(g *grammar.Grammar) error {
	repl, err := readline.New("bnfc> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	q := querier{g: g}
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		result, err := q.Eval(line)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		pterm.Info.Println(result)
	}
	println("Good bye!")
	return nil
}
