package readfiles

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inputFile = []byte(`ZONE i=3, j=2
0.0,0.0
0.5,0.0
1.0,0.1
0.0,1.0
0.5,1.0
1.0,1.1
`)

func TestParseHeader(t *testing.T) {
	{
		headers := []string{"ZONE i=641, j=65", "zone I=641 J=65 F=POINT", "i=641,j=65\r\n", "\tJ=65 , i=641"}
		for _, h := range headers {
			nx, ny, err := parseHeader(h)
			require.NoError(t, err, h)
			assert.Equal(t, 641, nx)
			assert.Equal(t, 65, ny)
		}
	}
	{
		bad := map[string]string{
			"ZONE j=65":      "'i='",
			"ZONE i=641":     "'j='",
			"ZONE i=6x, j=2": "token [i=6x]",
			"ZONE i=1, j=4":  "at least 2",
			"":               "'i='",
			"0.0,0.0":        "'i='",
		}
		for h, reason := range bad {
			_, _, err := parseHeader(h)
			require.Error(t, err, h)
			assert.True(t, errors.Is(err, ErrMalformedHeader))
			assert.Contains(t, err.Error(), reason)
		}
	}
}

func TestParseStructuredGrid(t *testing.T) {
	{ // i varies fastest
		g, err := ParseStructuredGrid(bytes.NewReader(inputFile), IFastest)
		require.NoError(t, err)
		assert.Equal(t, 3, g.Nx)
		assert.Equal(t, 2, g.Ny)
		assert.Equal(t, 0.5, g.X.At(1, 0))
		assert.Equal(t, 1.1, g.Y.At(2, 1))
		assert.Equal(t, 1.0, g.Y.At(0, 1))
	}
	{ // The same lattice written with j varying fastest
		file := []byte("ZONE i=3, j=2\n0,0 0,1\n0.5,0 0.5,1\n1,0.1 1,1.1\n")
		g, err := ParseStructuredGrid(bytes.NewReader(file), JFastest)
		require.NoError(t, err)
		assert.Equal(t, 0.5, g.X.At(1, 0))
		assert.Equal(t, 1.1, g.Y.At(2, 1))
		assert.Equal(t, 1.0, g.Y.At(0, 1))
	}
	{ // Too few pairs
		file := []byte("ZONE i=3, j=2\n0,0\n1,1\n")
		_, err := ParseStructuredGrid(bytes.NewReader(file), IFastest)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDataSizeMismatch))
		var dse *DataSizeMismatchError
		require.True(t, errors.As(err, &dse))
		assert.Equal(t, 6, dse.Expected)
		assert.Equal(t, 2, dse.Actual)
	}
	{ // Too many pairs
		file := append(append([]byte{}, inputFile...), []byte("2.0,2.0\n")...)
		_, err := ParseStructuredGrid(bytes.NewReader(file), IFastest)
		var dse *DataSizeMismatchError
		require.True(t, errors.As(err, &dse))
		assert.Equal(t, 7, dse.Actual)
	}
	{ // Unpaired trailing value
		file := append(append([]byte{}, inputFile...), []byte("2.0\n")...)
		_, err := ParseStructuredGrid(bytes.NewReader(file), IFastest)
		var dse *DataSizeMismatchError
		require.True(t, errors.As(err, &dse))
		assert.True(t, dse.Dangling)
		assert.Contains(t, err.Error(), "unpaired")
	}
	{ // Garbage in the body
		file := []byte("ZONE i=2, j=2\n0,0\n1,zero\n0,1\n1,1\n")
		_, err := ParseStructuredGrid(bytes.NewReader(file), IFastest)
		assert.True(t, errors.Is(err, ErrMalformedData))
	}
	{ // Multibyte runes stay inside their token
		file := []byte("ZONE i=2, j=2\n0,0\n1\u00e01,0\n0,1\n1,1\n")
		_, err := ParseStructuredGrid(bytes.NewReader(file), IFastest)
		assert.True(t, errors.Is(err, ErrMalformedData))
		assert.Contains(t, err.Error(), "[1\u00e01]")
		file = []byte("ZONE i=2, j=2\n0,0\n1\u00850\n0,1\n1,1\n")
		_, err = ParseStructuredGrid(bytes.NewReader(file), IFastest)
		assert.Contains(t, err.Error(), "[1\u00850]")
	}
	{ // NaN coordinates parse as floats but are rejected
		file := []byte("ZONE i=2, j=2\n0,0\n1,NaN\n0,1\n1,1\n")
		_, err := ParseStructuredGrid(bytes.NewReader(file), IFastest)
		assert.True(t, errors.Is(err, ErrMalformedData))
		assert.Contains(t, err.Error(), "NaN")
	}
	{ // Missing header
		_, err := ParseStructuredGrid(strings.NewReader("0,0\n1,0\n"), IFastest)
		assert.True(t, errors.Is(err, ErrMalformedHeader))
	}
}

func TestGridOrdering(t *testing.T) {
	gord, err := NewGridOrdering("J_Fastest")
	require.NoError(t, err)
	assert.Equal(t, JFastest, gord)
	gord, err = NewGridOrdering("")
	require.NoError(t, err)
	assert.Equal(t, IFastest, gord)
	_, err = NewGridOrdering("k")
	assert.Error(t, err)
	assert.Equal(t, "j_fastest", JFastest.String())
}

func TestWriteReadStructuredGrid(t *testing.T) {
	g, err := ParseStructuredGrid(bytes.NewReader(inputFile), IFastest)
	require.NoError(t, err)
	for _, gord := range []GridOrdering{IFastest, JFastest} {
		var buf bytes.Buffer
		require.NoError(t, WriteStructuredGrid(&buf, g, gord))
		gr, err := ParseStructuredGrid(&buf, gord)
		require.NoError(t, err)
		assert.Equal(t, g.X.DataP(), gr.X.DataP())
		assert.Equal(t, g.Y.DataP(), gr.Y.DataP())
	}
	{ // Through the file system
		dir := t.TempDir()
		fname := filepath.Join(dir, "grid.dat")
		require.NoError(t, WriteStructuredGridFile(fname, g, IFastest))
		data, err := os.ReadFile(fname)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "ZONE i=3, j=2\n0,0\n0.5,0\n"))
		gr, err := ReadStructuredGrid(fname, IFastest)
		require.NoError(t, err)
		assert.Equal(t, g.Y.DataP(), gr.Y.DataP())
	}
	{
		_, err := ReadStructuredGrid(filepath.Join(t.TempDir(), "missing.dat"), IFastest)
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
}
