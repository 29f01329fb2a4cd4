package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/bnfgram/grammar"
	"github.com/olekukonko/tablewriter"
	"github.com/pterm/pterm"
)

// showGrammar prints a grammar to the terminal, with rules displayed as a tree.
func showGrammar(g *grammar.Grammar) {
	axiom, err := g.AxiomName()
	if err != nil {
		pterm.Error.Println("no grammar loaded: " + err.Error())
		return
	}
	pterm.Info.Println("Axiom: " + axiom)
	pterm.Println("Non-Terminals:")
	pterm.Println("\t" + symbolList(g.EachNonTerminal))
	pterm.Println("Terminals:")
	pterm.Println("\t" + symbolList(g.EachTerminal))
	pterm.Println("Rules:")
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ruleTree(g))).Render()
}

func symbolList(each func(func(grammar.SymID, string))) string {
	var items []string
	each(func(id grammar.SymID, name string) {
		items = append(items, fmt.Sprintf("%s (%d)", name, id))
	})
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

// ruleTree creates a leveled list with a node per non-terminal and a child
// per alternative.
func ruleTree(g *grammar.Grammar) pterm.LeveledList {
	ll := pterm.LeveledList{}
	g.EachNonTerminal(func(id grammar.SymID, name string) {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: name})
		alts, _ := g.ProductionsOf(name)
		for _, alt := range alts {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: alternativeString(g, alt)})
		}
	})
	return ll
}

func alternativeString(g *grammar.Grammar, alt []grammar.SymID) string {
	if len(alt) == 0 {
		return "ε"
	}
	return strings.Join(g.Names(alt), " ")
}

// writeReport writes a grammar as plain tables: symbols first, then rules.
func writeReport(w io.Writer, g *grammar.Grammar) {
	axiom, err := g.AxiomName()
	if err != nil {
		fmt.Fprintf(w, "no grammar loaded: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Axiom: %s\n\n", axiom)
	var data [][]string
	g.EachNonTerminal(func(id grammar.SymID, name string) {
		data = append(data, []string{strconv.Itoa(int(id)), name, grammar.NonTerminal.String()})
	})
	g.EachTerminal(func(id grammar.SymID, name string) {
		data = append(data, []string{strconv.Itoa(int(id)), name, grammar.Terminal.String()})
	})
	table := newTable(w, []string{"ID", "NAME", "KIND"})
	table.AppendBulk(data)
	table.Render()
	fmt.Fprintln(w)
	data = data[:0]
	g.EachNonTerminal(func(id grammar.SymID, name string) {
		alts, _ := g.ProductionsOf(name)
		for _, alt := range alts {
			data = append(data, []string{name, alternativeString(g, alt)})
		}
	})
	table = newTable(w, []string{"LHS", "RHS"})
	table.AppendBulk(data)
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}
