// Command ctk builds evaluated OT tableaux for a corpus and writes them
// as a tab-separated violation table.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/cantophon/ctk"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ctk [options] corpus.tsv\n\n")
		fmt.Fprintf(os.Stderr, "ctk generates deletion and epenthesis candidates for every input in\n")
		fmt.Fprintf(os.Stderr, "the corpus and counts their constraint violations.\n\n")
		fmt.Fprintf(os.Stderr, "Corpus lines are input<TAB>output<TAB>count; output and count are optional.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ctk corpus.tsv                   # built-in constraints, TSV to stdout\n")
		fmt.Fprintf(os.Stderr, "  ctk -c set.yaml -o out.tsv c.tsv # custom constraints, write to file\n")
		fmt.Fprintf(os.Stderr, "  ctk --pretty --parsed c.tsv      # styled tables with parsed forms\n")
	}

	setPath := pflag.StringP("constraints", "c", "", "constraint-set YAML file (default: built-in set)")
	outPath := pflag.StringP("output", "o", "", "write the table to this file instead of stdout")
	parsed := pflag.BoolP("parsed", "p", false, "print parsed (dotted) forms")
	header := pflag.Bool("header", false, "start the TSV with a header line")
	pretty := pflag.Bool("pretty", false, "render each tableau as a styled terminal table")
	onlyIncluded := pflag.Bool("included", false, "only print tableaux whose attested outputs were all generated")
	jobs := pflag.IntP("jobs", "j", 0, "tableaux built in parallel (default GOMAXPROCS)")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag || pflag.NArg() != 1 {
		pflag.Usage()
		if !*helpFlag {
			os.Exit(2)
		}
		return
	}

	set := ctk.DefaultConstraintSet()
	if *setPath != "" {
		var err error
		set, err = ctk.LoadConstraintSet(*setPath)
		if err != nil {
			log.Fatalf("failed to load constraints: %v", err)
		}
	}
	p, err := ctk.New(set)
	if err != nil {
		log.Fatalf("failed to compile constraints: %v", err)
	}

	entries, err := ctk.LoadCorpus(pflag.Arg(0))
	if err != nil {
		log.Fatalf("failed to load corpus: %v", err)
	}
	log.Printf("building %d corpus entries with %d constraints", len(entries), len(p.ConstraintNames()))

	tableaux, err := p.BuildCorpus(context.Background(), entries, *jobs)
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}
	if *onlyIncluded {
		tableaux = filterIncluded(tableaux)
	}

	names := p.ConstraintNames()
	err = writeOutput(*outPath, func(w io.Writer) error {
		if *pretty {
			for _, t := range tableaux {
				if _, err := fmt.Fprintln(w, renderTableau(t, names, *parsed)); err != nil {
					return err
				}
			}
			return nil
		}
		return writeTSV(w, tableaux, names, *parsed, *header)
	})
	if err != nil {
		log.Fatalf("write output: %v", err)
	}
}

// writeOutput runs write against stdout, or against the file at path
// when one is given. The file is closed before returning and a failed
// close is reported.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func filterIncluded(tableaux []*ctk.Tableau) []*ctk.Tableau {
	out := tableaux[:0]
	for _, t := range tableaux {
		if incl, set := t.Inclusion(); !set || incl {
			out = append(out, t)
		}
	}
	return out
}

func writeTSV(w io.Writer, tableaux []*ctk.Tableau, names []string, parsed, header bool) error {
	if header {
		cols := append([]string{"input", "output", "freq"}, names...)
		if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}
	for _, t := range tableaux {
		if _, err := io.WriteString(w, t.Format(parsed)); err != nil {
			return err
		}
	}
	return nil
}
