package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/notargets/fvgrid/grid2D"
)

// WriteStructuredGrid writes g in the format read by ParseStructuredGrid,
// with enough digits to read back bit for bit.
func WriteStructuredGrid(w io.Writer, g *grid2D.Grid, ordering GridOrdering) (err error) {
	var (
		bw     = bufio.NewWriter(w)
		npts   = g.Nx * g.Ny
		xD, yD = g.X.DataP(), g.Y.DataP()
		buf    []byte
	)
	if _, err = fmt.Fprintf(bw, "ZONE i=%d, j=%d\n", g.Nx, g.Ny); err != nil {
		return
	}
	for k := 0; k < npts; k++ {
		ind := rowMajorIndex(k, g.Nx, g.Ny, ordering)
		buf = strconv.AppendFloat(buf[:0], xD[ind], 'g', -1, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, yD[ind], 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err = bw.Write(buf); err != nil {
			return
		}
	}
	return bw.Flush()
}

func WriteStructuredGridFile(filename string, g *grid2D.Grid, ordering GridOrdering) (err error) {
	var file *os.File
	if file, err = os.Create(filename); err != nil {
		return fmt.Errorf("unable to create grid file %s: %w", filename, err)
	}
	if err = WriteStructuredGrid(file, g, ordering); err != nil {
		file.Close()
		return fmt.Errorf("writing grid file %s: %w", filename, err)
	}
	return file.Close()
}
