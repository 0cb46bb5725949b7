package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantophon/ctk"
)

func buildCorpus(t *testing.T, entries []ctk.Entry) (*ctk.Pipeline, []*ctk.Tableau) {
	t.Helper()
	p, err := ctk.New(ctk.DefaultConstraintSet())
	require.NoError(t, err)
	tabs, err := p.BuildCorpus(context.Background(), entries, 1)
	require.NoError(t, err)
	return p, tabs
}

func TestWriteTSV(t *testing.T) {
	p, tabs := buildCorpus(t, []ctk.Entry{{Input: "sam1", Output: "sam", Count: 2}})

	var buf bytes.Buffer
	require.NoError(t, writeTSV(&buf, tabs, p.ConstraintNames(), false, true))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 21)
	assert.Equal(t, "input\toutput\tfreq\tOnset\tNoCoda\t*SyllabicNasal\t*NG#\t*ObsObs\tDep-V\tDep-C\tDep-V/C_\tMax-C\tMax-V", lines[0])
	assert.Equal(t, "sam1\tsam\t2\t0\t1\t0\t0\t0\t0\t0\t0\t0\t0", lines[1])

	buf.Reset()
	require.NoError(t, writeTSV(&buf, tabs, p.ConstraintNames(), true, false))
	assert.True(t, strings.HasPrefix(buf.String(), "s.a.m.1\ts.a.m.\t2\t"))
}

func TestFilterIncluded(t *testing.T) {
	_, tabs := buildCorpus(t, []ctk.Entry{
		{Input: "sam1", Output: "sam", Count: 1},
		{Input: "kat1", Output: "xyz", Count: 1},
		{Input: "jat1"},
	})
	kept := filterIncluded(tabs)
	require.Len(t, kept, 2)
	assert.Equal(t, "sam1", kept[0].Input())
	assert.Equal(t, "jat1", kept[1].Input())
}

func TestRenderTableau(t *testing.T) {
	p, tabs := buildCorpus(t, []ctk.Entry{{Input: "sam1", Output: "sam", Count: 1}})
	out := renderTableau(tabs[0], p.ConstraintNames(), false)
	assert.Contains(t, out, "sam1")
	assert.Contains(t, out, "NoCoda")
	assert.Contains(t, out, "sV am")
}

func TestWriteOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	err := writeOutput(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "sam1\tsam\t1\n")
		return err
	})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sam1\tsam\t1\n", string(data))
}

func TestWriteOutputErrors(t *testing.T) {
	errWrite := errors.New("disk full")
	path := filepath.Join(t.TempDir(), "out.tsv")
	err := writeOutput(path, func(io.Writer) error { return errWrite })
	assert.ErrorIs(t, err, errWrite)

	err = writeOutput(filepath.Join(t.TempDir(), "missing", "out.tsv"), func(io.Writer) error { return nil })
	assert.Error(t, err)
}
