package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/notargets/goslepian/geometry2D"
	"github.com/notargets/goslepian/slepian"
)

var (
	csvFile        string
	radius         = 1.
	spectralRadius = 4.
	numTapers      = 4
	levels         = 5
)

// Convergence study of the 2D concentration eigenvalues of a disc as the
// scan-line quadrature is refined.
func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "optional file receiving the study as CSV")
	radiusPtr := flag.Float64("radius", radius, "disc radius")
	ksPtr := flag.Float64("spectralRadius", spectralRadius, "radius of the wavenumber disc")
	kPtr := flag.Int("k", numTapers, "number of eigenvalues followed")
	levelsPtr := flag.Int("levels", levels, "number of refinement levels, rows double each level")
	flag.Parse()
	csvFile, radius, spectralRadius, numTapers, levels = *csvFilePtr, *radiusPtr, *ksPtr, *kPtr, *levelsPtr

	cs := NewConvergenceStudy(fmt.Sprintf("disc R=%g Ks=%g", radius, spectralRadius), numTapers)
	disc := geometry2D.NewNgon(geometry2D.NewPoint(0, 0), radius, 512)
	for level, nRows := 0, 4; level < levels; level, nRows = level+1, 2*nRows {
		q, err := geometry2D.QuadratureFromCurve(disc, nRows, nRows)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		ts, err := slepian.Solve2D(q, spectralRadius, min(numTapers, q.Len()), slepian.Request{WantEigenvalues: true})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cs.Add(q.Len(), ts.Eigenvalues)
	}
	fmt.Printf("Title = %s, Tapers = %d\n", cs.title, cs.numTapers)
	orders := cs.Orders()
	for i := range cs.numPTS {
		fmt.Printf("%d, %v, observed order %v\n", cs.numPTS[i], cs.eigenvalues[i], orders[i])
	}
	if len(csvFile) != 0 {
		if err := cs.WriteCSV(csvFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

type ConvergenceStudy struct {
	title       string
	numTapers   int
	numPTS      []int
	eigenvalues [][]float64
}

func NewConvergenceStudy(title string, numTapers int) *ConvergenceStudy {
	return &ConvergenceStudy{
		title:     title,
		numTapers: numTapers,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, eigenvalues []float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.eigenvalues = append(cs.eigenvalues, eigenvalues)
}

// Orders estimates the observed order per eigenvalue from three consecutive
// levels, log2 of the ratio of successive differences. NaN until three
// levels exist.
func (cs *ConvergenceStudy) Orders() (orders [][]float64) {
	orders = make([][]float64, len(cs.eigenvalues))
	for i := range orders {
		orders[i] = make([]float64, cs.numTapers)
		for j := range orders[i] {
			orders[i][j] = math.NaN()
			if i < 2 || j >= len(cs.eigenvalues[i]) || j >= len(cs.eigenvalues[i-2]) {
				continue
			}
			d1 := math.Abs(cs.eigenvalues[i-1][j] - cs.eigenvalues[i-2][j])
			d2 := math.Abs(cs.eigenvalues[i][j] - cs.eigenvalues[i-1][j])
			if d1 > 0 && d2 > 0 {
				orders[i][j] = math.Log2(d1 / d2)
			}
		}
	}
	return
}

func (cs *ConvergenceStudy) WriteCSV(file string) (err error) {
	var f *os.File
	if f, err = os.Create(file); err != nil {
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	header := []string{"title", "numPTS"}
	for j := 0; j < cs.numTapers; j++ {
		header = append(header, "lambda"+strconv.Itoa(j))
	}
	if err = w.Write(header); err != nil {
		return
	}
	for i, npts := range cs.numPTS {
		rec := []string{cs.title, strconv.Itoa(npts)}
		for _, lam := range cs.eigenvalues[i] {
			rec = append(rec, strconv.FormatFloat(lam, 'g', -1, 64))
		}
		if err = w.Write(rec); err != nil {
			return
		}
	}
	w.Flush()
	return w.Error()
}
