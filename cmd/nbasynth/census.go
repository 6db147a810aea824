// File: census.go
// Role: The census subcommand: per-shape automaton sizes for the corpus.

package main

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pertcj/nba-expression-synthesis/automaton"
)

// censusShapes are the on-disk shape suffixes reported by census.
var censusShapes = []string{"state", "trans", "degen"}

func newCensusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "census",
		Short: "Count states, finals and transitions per automaton shape",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flagConfig)
			if err != nil {
				return err
			}

			return runCensus(cfg)
		},
	}
}

// runCensus writes one row per formula with per-shape size columns.
func runCensus(cfg config) error {
	formulas, err := readFormulas(cfg.Formulas)
	if err != nil {
		return err
	}

	header := []string{"formula_index"}
	for _, shape := range censusShapes {
		header = append(header,
			shape+" states", shape+" accepting_states", shape+" transitions")
	}

	rows := make([][]string, 0, len(formulas))
	for i := range formulas {
		row := []string{strconv.Itoa(i)}
		for _, shape := range censusShapes {
			row = append(row, censusCells(cfg.AutomataDir, i, shape)...)
		}
		rows = append(rows, row)
	}

	return writeCSV(cfg.Output, header, rows)
}

// censusCells sizes one shape of one formula; unavailable or unsupported
// automata leave their cells empty.
func censusCells(dir string, index int, shape string) []string {
	path := shapePath(dir, index, shape)
	if path == "" {
		return []string{"", "", ""}
	}
	a, err := automaton.ParseHOAFile(path)
	if err != nil {
		slog.Warn("census skip", "formula", index, "shape", shape, "err", err)

		return []string{"", "", ""}
	}
	g, err := automaton.ToGraph(a)
	if err != nil {
		slog.Warn("census skip", "formula", index, "shape", shape, "err", err)

		return []string{"", "", ""}
	}

	return []string{
		strconv.Itoa(g.NumStates()),
		strconv.Itoa(len(g.Finals())),
		strconv.Itoa(g.EdgeCount()),
	}
}
