// File: compute.go
// Role: The compute subcommand: run the method matrix over the corpus and
//       write one metrics row per formula.
// Concurrency:
//   - Formulas are processed by an errgroup pool (config worker count);
//     each worker owns its solver invocations outright. Rows land in a
//     slice by index, so the CSV stays in corpus order regardless of
//     completion order.

package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pertcj/nba-expression-synthesis/automaton"
	"github.com/pertcj/nba-expression-synthesis/omega"
	"github.com/pertcj/nba-expression-synthesis/synthesis"
)

// formulaTokens approximates LTL formula length: identifiers, temporal
// operators and connectives.
var formulaTokens = regexp.MustCompile(`\b\w+\b|[GFXUR]|[&|(->)!]`)

func newComputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compute",
		Short: "Run the method matrix and write expression metrics to CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flagConfig)
			if err != nil {
				return err
			}

			return runCompute(cmd.Context(), cfg)
		},
	}
}

// runCompute processes every formula of the corpus and writes the CSV.
func runCompute(ctx context.Context, cfg config) error {
	formulas, err := readFormulas(cfg.Formulas)
	if err != nil {
		return err
	}
	slog.Info("corpus loaded", "formulas", len(formulas), "methods", len(cfg.Methods))

	rows := make([][]string, len(formulas))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.Workers)
	for i, f := range formulas {
		grp.Go(func() error {
			rows[i] = computeRow(gctx, cfg, i, f)

			return gctx.Err()
		})
	}
	if err = grp.Wait(); err != nil {
		return err
	}

	return writeCSV(cfg.Output, computeHeader(cfg.Methods), rows)
}

// computeRow runs every configured method on one formula.
func computeRow(ctx context.Context, cfg config, index int, formula string) []string {
	row := []string{strconv.Itoa(index), strconv.Itoa(len(formulaTokens.FindAllString(formula, -1)))}

	src := automaton.FileSource{
		StatePath:         shapePath(cfg.AutomataDir, index, "state"),
		TransitionPath:    shapePath(cfg.AutomataDir, index, "trans"),
		DegeneralizedPath: shapePath(cfg.AutomataDir, index, "degen"),
	}

	for _, m := range cfg.Methods {
		opts, _ := m.options(cfg.Timeouts) // validated at load time

		expr, times, err := synthesis.Solve(ctx, src, opts)
		if err != nil {
			slog.Warn("method failed", "formula", index, "method", m.name(), "err", err)
		}
		row = append(row, metricCells(expr, times)...)
		slog.Debug("method done", "formula", index, "method", m.name(),
			"regex_time", times.Regex)
	}

	return row
}

// shapePath locates one pre-translated automaton file; missing files leave
// the shape unavailable.
func shapePath(dir string, index int, shape string) string {
	p := filepath.Join(dir, fmt.Sprintf("%d.%s.hoa", index, shape))
	if _, err := os.Stat(p); err != nil {
		return ""
	}

	return p
}

// computeHeader builds the CSV header: index, formula length, then per
// method the three metrics and the three stage times.
func computeHeader(methods []method) []string {
	header := []string{"formula_index", "formula_length"}
	for _, m := range methods {
		for _, metric := range []string{"length", "size", "starheight", "aut_time", "regex_const_time", "simplify_time"} {
			header = append(header, m.name()+" "+metric)
		}
	}

	return header
}

// metricCells renders one method outcome. A nil expression (failure or
// timeout) leaves the metric cells empty; times always appear, with the
// Unreached sentinel rendered as -1.
func metricCells(expr omega.OmegaRegex, times synthesis.Timings) []string {
	cells := make([]string, 0, 6)
	if expr == nil {
		cells = append(cells, "", "", "")
	} else {
		cells = append(cells,
			strconv.Itoa(omega.LengthOmega(expr)),
			strconv.Itoa(omega.SizeOmega(expr)),
			strconv.Itoa(omega.StarHeightOmega(expr)))
	}
	cells = append(cells, secondsCell(times.Aut), secondsCell(times.Regex), secondsCell(times.Simplify))

	return cells
}

// secondsCell renders a stage duration in seconds, Unreached as -1.
func secondsCell(d time.Duration) string {
	if d == synthesis.Unreached {
		return "-1"
	}

	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}

// readFormulas loads the corpus: one formula per line, blank lines and
// %-comments skipped, an LTLSPEC prefix stripped.
func readFormulas(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	defer f.Close()

	var (
		out     []string
		scanner = bufio.NewScanner(f)
		line    string
	)
	for scanner.Scan() {
		line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "LTLSPEC"); ok {
			line = strings.TrimSpace(rest)
		}
		out = append(out, line)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("compute: read %s: %w", path, err)
	}

	return out, nil
}

// writeCSV writes the header and all rows to path.
func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("compute: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(header); err != nil {
		return fmt.Errorf("compute: write %s: %w", path, err)
	}
	for _, row := range rows {
		if err = w.Write(row); err != nil {
			return fmt.Errorf("compute: write %s: %w", path, err)
		}
	}
	w.Flush()

	return w.Error()
}
