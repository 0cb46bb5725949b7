package ctk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCorpus reads a corpus file. See ReadCorpus for the format.
func LoadCorpus(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	entries, err := ReadCorpus(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// ReadCorpus parses corpus lines of the form
//
//	input<TAB>output<TAB>count
//
// where output and count are optional (count defaults to 1 when an
// output is given). Blank lines and lines starting with "#" are skipped.
// Inputs and outputs are normalized.
func ReadCorpus(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// Columns are positional; an empty leading column stays empty.
		fields := strings.Split(line, "\t")
		e := Entry{Input: Normalize(fields[0])}
		if e.Input == "" {
			return nil, fmt.Errorf("line %d: empty input", lineNo)
		}
		if len(fields) > 1 {
			e.Output = Normalize(fields[1])
			if e.Output != "" {
				e.Count = 1
			}
		}
		if len(fields) > 2 && strings.TrimSpace(fields[2]) != "" {
			n, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: count: %w", lineNo, err)
			}
			e.Count = n
		}
		if len(fields) > 3 && strings.TrimSpace(strings.Join(fields[3:], "")) != "" {
			return nil, fmt.Errorf("line %d: want at most 3 tab-separated fields, got %d", lineNo, len(fields))
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
