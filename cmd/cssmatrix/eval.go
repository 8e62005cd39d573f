package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/cssmatrix"
	"github.com/akeil/cssmatrix/internal/logging"
)

type result struct {
	source string
	matrix cssmatrix.Matrix
	err    error
}

func doEval(s settings, sources []string, path string, asArray, as2D bool) error {
	if path != "" {
		lines, err := readSourceFile(path)
		if err != nil {
			return err
		}
		sources = append(sources, lines...)
	}

	if len(sources) == 0 {
		return fmt.Errorf("no transform given")
	}

	results := evalAll(sources)

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Printf("%v %v\n", crossmark, r.err)
			continue
		}
		fmt.Println(formatResult(r.matrix, asArray, as2D))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d transforms failed", failed, len(results))
	}
	return nil
}

// evalAll parses all sources concurrently.
// Results are returned in input order; a failed source does not stop the
// others.
func evalAll(sources []string) []result {
	results := make([]result, len(sources))

	var group errgroup.Group
	for i, src := range sources {
		i, src := i, src
		group.Go(func() error {
			logging.Debug("Evaluate %q", src)
			m, err := cssmatrix.FromString(src)
			results[i] = result{source: src, matrix: m, err: err}
			return nil
		})
	}
	group.Wait()

	return results
}

// formatResult prints m in CSS syntax, or as an array of 16 values
// (6 with as2D).
func formatResult(m cssmatrix.Matrix, asArray, as2D bool) string {
	if !asArray {
		return m.String()
	}
	parts := make([]string, 0, 16)
	for _, v := range m.ToFloat64Array(as2D) {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func readSourceFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cssmatrix.Wrap(err, "open %q", path)
	}
	defer f.Close()

	lines, err := readSources(f)
	if err != nil {
		return nil, cssmatrix.Wrap(err, "read %q", path)
	}
	return lines, nil
}

// readSources returns the non-empty lines from r.
// Lines starting with '#' are comments.
func readSources(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
