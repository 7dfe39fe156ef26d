package InputParameters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
)

// DPSSParameters describes an equal-interval taper request
type DPSSParameters struct {
	Title string  `json:"Title"`
	N     int     `json:"N"`  // sequence length
	NW    float64 `json:"NW"` // time-bandwidth product
	K     int     `json:"K"`  // number of tapers
}

func (ip *DPSSParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	if ip.K == 0 {
		ip.K = max(1, int(2*ip.NW)-1)
	}
	return ip.Validate()
}

func (ip *DPSSParameters) Validate() error {
	switch {
	case ip.N < 2:
		return fmt.Errorf("N = %d, need at least 2 samples", ip.N)
	case ip.NW <= 0:
		return fmt.Errorf("NW = %g must be positive", ip.NW)
	case ip.K < 1 || ip.K > ip.N:
		return fmt.Errorf("K = %d must be between 1 and N = %d", ip.K, ip.N)
	}
	return nil
}

func (ip *DPSSParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%d]\t\t\t= N\n", ip.N)
	fmt.Fprintf(w, "%8.5f\t\t= NW\n", ip.NW)
	fmt.Fprintf(w, "[%d]\t\t\t= K\n", ip.K)
}

// GPSSParameters describes a taper request on arbitrary sample times
type GPSSParameters struct {
	Title         string    `json:"Title"`
	Times         []float64 `json:"Times"`
	W             float64   `json:"W"`       // half bandwidth
	Carrier       float64   `json:"Carrier"` // band centre, 0 for low-pass
	Beta          float64   `json:"Beta"`    // analysis half bandwidth of the weight matrix
	K             int       `json:"K"`
	Orthogonalize bool      `json:"Orthogonalize"`
	MissingData   bool      `json:"MissingData"` // identity weight matrix, Times are the surviving indices
}

func (ip *GPSSParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	if ip.Beta == 0 {
		ip.Beta = 0.5
	}
	if ip.K == 0 {
		ip.K = 1
	}
	return ip.Validate()
}

func (ip *GPSSParameters) Validate() error {
	switch {
	case len(ip.Times) < 2:
		return fmt.Errorf("%d sample times, need at least 2", len(ip.Times))
	case ip.W <= 0:
		return fmt.Errorf("W = %g must be positive", ip.W)
	case ip.Carrier < 0:
		return fmt.Errorf("Carrier = %g must be non-negative", ip.Carrier)
	case ip.Beta <= 0:
		return fmt.Errorf("Beta = %g must be positive", ip.Beta)
	case ip.K < 1 || ip.K > len(ip.Times):
		return fmt.Errorf("K = %d must be between 1 and %d", ip.K, len(ip.Times))
	}
	return nil
}

func (ip *GPSSParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%d]\t\t\t= Number of samples\n", len(ip.Times))
	fmt.Fprintf(w, "%8.5f\t\t= W\n", ip.W)
	fmt.Fprintf(w, "%8.5f\t\t= Carrier\n", ip.Carrier)
	fmt.Fprintf(w, "%8.5f\t\t= Beta\n", ip.Beta)
	fmt.Fprintf(w, "[%d]\t\t\t= K\n", ip.K)
	fmt.Fprintf(w, "[%v]\t\t\t= Orthogonalize\n", ip.Orthogonalize)
	fmt.Fprintf(w, "[%v]\t\t\t= MissingData\n", ip.MissingData)
}

// RegionParameters describes a 2D region and its spectral disc. The region
// is either a mask, rows of '0'/'1' (or '.'/'#') characters, or a circle.
type RegionParameters struct {
	Title            string   `json:"Title"`
	Mask             []string `json:"Mask"`
	Contour          bool     `json:"Contour"` // trace the mask at half level instead of cell centres
	Radius           float64  `json:"Radius"`
	CurvePoints      int      `json:"CurvePoints"`
	SpectralRadius   float64  `json:"SpectralRadius"`
	Rows             int      `json:"Rows"`
	NodesPerInterval int      `json:"NodesPerInterval"`
	K                int      `json:"K"`
}

func (ip *RegionParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	if ip.CurvePoints == 0 {
		ip.CurvePoints = 128
	}
	if ip.Rows == 0 {
		ip.Rows = 16
	}
	if ip.NodesPerInterval == 0 {
		ip.NodesPerInterval = 16
	}
	if ip.K == 0 {
		ip.K = 1
	}
	return ip.Validate()
}

func (ip *RegionParameters) Validate() (err error) {
	switch {
	case len(ip.Mask) == 0 && ip.Radius <= 0:
		return fmt.Errorf("need a Mask or a positive Radius")
	case ip.SpectralRadius <= 0:
		return fmt.Errorf("SpectralRadius = %g must be positive", ip.SpectralRadius)
	case ip.Rows < 1 || ip.NodesPerInterval < 1:
		return fmt.Errorf("Rows = %d and NodesPerInterval = %d must be positive", ip.Rows, ip.NodesPerInterval)
	case ip.CurvePoints < 3:
		return fmt.Errorf("CurvePoints = %d, need at least 3", ip.CurvePoints)
	case ip.K < 1:
		return fmt.Errorf("K = %d must be positive", ip.K)
	}
	_, err = ip.MaskGrid()
	return
}

// MaskGrid converts the Mask rows, nil when the region is a circle
func (ip *RegionParameters) MaskGrid() (mask [][]bool, err error) {
	if len(ip.Mask) == 0 {
		return
	}
	mask = make([][]bool, len(ip.Mask))
	for i, row := range ip.Mask {
		row = strings.TrimSpace(row)
		mask[i] = make([]bool, len(row))
		for j, c := range row {
			switch c {
			case '1', '#':
				mask[i][j] = true
			case '0', '.':
			default:
				return nil, fmt.Errorf("mask row %d column %d: unexpected character %q", i, j, c)
			}
		}
	}
	return
}

func (ip *RegionParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	if len(ip.Mask) != 0 {
		fmt.Fprintf(w, "[%dx%d]\t\t\t= Mask\n", len(ip.Mask), len(ip.Mask[0]))
	} else {
		fmt.Fprintf(w, "%8.5f\t\t= Radius\n", ip.Radius)
		fmt.Fprintf(w, "[%d]\t\t\t= CurvePoints\n", ip.CurvePoints)
	}
	fmt.Fprintf(w, "%8.5f\t\t= SpectralRadius\n", ip.SpectralRadius)
	fmt.Fprintf(w, "[%d]\t\t\t= Rows\n", ip.Rows)
	fmt.Fprintf(w, "[%d]\t\t\t= NodesPerInterval\n", ip.NodesPerInterval)
	fmt.Fprintf(w, "[%d]\t\t\t= K\n", ip.K)
}
