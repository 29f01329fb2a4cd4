package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/bnfgram/rules"
)

// prompter asks the user for input the command line did not supply.
type prompter struct {
	rl *readline.Instance
}

func newPrompter() (*prompter, error) {
	rl, err := readline.New("")
	if err != nil {
		return nil, fmt.Errorf("cannot prompt for input: %w", err)
	}
	return &prompter{rl: rl}, nil
}

// ask prompts for a file path and, if delim is empty, for a delimiter.
func (p *prompter) ask(delim string) (string, string, error) {
	path, err := p.line("Enter the path of the grammar file: ")
	if err != nil {
		return "", "", err
	}
	if path == "" {
		return "", "", fmt.Errorf("no grammar file given")
	}
	if delim == "" {
		d, err := p.line(fmt.Sprintf("Enter the delimiter used (default '%s'): ", rules.DefaultDelimiter))
		if err != nil {
			return "", "", err
		}
		delim = d
	}
	return path, delim, nil
}

func (p *prompter) line(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if err != nil { // io.EOF or interrupt
		return "", fmt.Errorf("input aborted: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) close() {
	p.rl.Close()
}
