package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/fvgrid/grid2D"
	"github.com/notargets/fvgrid/utils"
)

/*
Structured grid files look like:

	ZONE i=641, j=65
	0.000000,0.000000
	0.015625,0.000000
	...

The header carries the node counts, the body holds Nx*Ny "x,y" pairs.
Commas and whitespace are interchangeable separators.
*/

// GridOrdering says which logical index varies fastest in the file body.
type GridOrdering uint8

const (
	IFastest GridOrdering = iota
	JFastest
)

var GridOrderingNames = map[string]GridOrdering{
	"":          IFastest,
	"i_fastest": IFastest,
	"ifastest":  IFastest,
	"i":         IFastest,
	"j_fastest": JFastest,
	"jfastest":  JFastest,
	"j":         JFastest,
}

func NewGridOrdering(label string) (gord GridOrdering, err error) {
	var ok bool
	if gord, ok = GridOrderingNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown grid ordering [%s], must be i_fastest or j_fastest", label)
	}
	return
}

func (gord GridOrdering) String() string {
	if gord == JFastest {
		return "j_fastest"
	}
	return "i_fastest"
}

func ReadStructuredGrid(filename string, ordering GridOrdering) (g *grid2D.Grid, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open grid file %s: %w", filename, err)
	}
	defer file.Close()
	if g, err = ParseStructuredGrid(file, ordering); err != nil {
		return nil, fmt.Errorf("reading grid file %s: %w", filename, err)
	}
	return
}

func ParseStructuredGrid(r io.Reader, ordering GridOrdering) (g *grid2D.Grid, err error) {
	var (
		reader = bufio.NewReader(r)
		nx, ny int
		header string
	)
	if header, err = reader.ReadString('\n'); err != nil && err != io.EOF {
		return nil, err
	}
	if nx, ny, err = parseHeader(header); err != nil {
		return
	}
	var (
		X, Y   = utils.NewMatrix(nx, ny), utils.NewMatrix(nx, ny)
		npts   = nx * ny
		xD, yD = X.DataP(), Y.DataP()
		count  int
		x      float64
		haveX  bool
	)
	scanner := bufio.NewScanner(reader)
	scanner.Split(scanCoordinates)
	for scanner.Scan() {
		var val float64
		token := scanner.Text()
		if val, err = strconv.ParseFloat(token, 64); err != nil {
			return nil, fmt.Errorf("%w: pair %d, token [%s]", ErrMalformedData, count, token)
		}
		if !haveX {
			x, haveX = val, true
			continue
		}
		if count < npts {
			ind := rowMajorIndex(count, nx, ny, ordering)
			xD[ind], yD[ind] = x, val
		}
		count++
		haveX = false
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	if count != npts || haveX {
		return nil, &DataSizeMismatchError{Nx: nx, Ny: ny, Expected: npts, Actual: count, Dangling: haveX}
	}
	if utils.IsNan(X) || utils.IsNan(Y) {
		return nil, fmt.Errorf("%w: NaN coordinate", ErrMalformedData)
	}
	return grid2D.NewGrid(X, Y)
}

// rowMajorIndex maps the k-th pair in file order to its slot in an nx x ny
// row-major array.
func rowMajorIndex(k, nx, ny int, ordering GridOrdering) int {
	var i, j int
	switch ordering {
	case JFastest:
		i, j = k/ny, k%ny
	default:
		i, j = k%nx, k/nx
	}
	return i*ny + j
}

func parseHeader(header string) (nx, ny int, err error) {
	var (
		haveI, haveJ bool
	)
	header = strings.TrimSpace(header)
	for _, token := range strings.FieldsFunc(header, isSeparatorRune) {
		token = strings.ToLower(token)
		var target *int
		switch {
		case strings.HasPrefix(token, "i="):
			target, haveI = &nx, true
		case strings.HasPrefix(token, "j="):
			target, haveJ = &ny, true
		default:
			continue
		}
		if *target, err = strconv.Atoi(token[2:]); err != nil {
			return 0, 0, &MalformedHeaderError{Header: header,
				Reason: fmt.Sprintf("unable to read number from token [%s]", token)}
		}
	}
	switch {
	case !haveI:
		err = &MalformedHeaderError{Header: header, Reason: "unable to find 'i='"}
	case !haveJ:
		err = &MalformedHeaderError{Header: header, Reason: "unable to find 'j='"}
	case nx < 2 || ny < 2:
		err = &MalformedHeaderError{Header: header,
			Reason: fmt.Sprintf("dimensions i=%d, j=%d must both be at least 2", nx, ny)}
	}
	return
}

// isSeparator only matches ASCII, bytes inside multibyte runes never split.
func isSeparator(c byte) bool {
	return c == ',' || c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isSeparatorRune(r rune) bool { return r < 0x80 && isSeparator(byte(r)) }

// scanCoordinates is a bufio.SplitFunc returning one number per token,
// treating commas like whitespace.
func scanCoordinates(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSeparator(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
