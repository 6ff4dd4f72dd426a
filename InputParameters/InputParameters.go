package InputParameters

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ghodss/yaml"
)

const (
	DefaultGamma = 1.4
	DefaultR     = 287.0  // [J/kg K]
	DefaultCp    = 1005.0 // [J/kg K]
)

// Parameters obtained from the YAML input conditions file
type InputParametersFV struct {
	Title        string            `json:"Title"`
	Gamma        float64           `json:"Gamma"`
	R            float64           `json:"R"`
	Cp           float64           `json:"Cp"`
	Pinf         float64           `json:"Pinf"`
	Tinf         float64           `json:"Tinf"`
	Minf         float64           `json:"Minf"`
	InflowMode   string            `json:"InflowMode"`
	GridOrdering string            `json:"GridOrdering"`
	BCs          map[string]string `json:"BCs"` // Edge name (IMin, IMax, JMin, JMax) to BC name
}

func NewInputParametersFV() *InputParametersFV {
	return &InputParametersFV{
		Gamma: DefaultGamma,
		R:     DefaultR,
		Cp:    DefaultCp,
	}
}

// Parse overlays the YAML in data onto ip, keys that are absent keep their
// current values.
func (ip *InputParametersFV) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func ReadInputParametersFV(filename string) (ip *InputParametersFV, err error) {
	var data []byte
	if data, err = os.ReadFile(filename); err != nil {
		return nil, fmt.Errorf("unable to read input parameters file %s: %w", filename, err)
	}
	ip = NewInputParametersFV()
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing input parameters file %s: %w", filename, err)
	}
	if err = ip.Validate(); err != nil {
		return nil, fmt.Errorf("input parameters file %s: %w", filename, err)
	}
	return
}

func (ip *InputParametersFV) Validate() (err error) {
	switch {
	case ip.Gamma <= 1:
		err = fmt.Errorf("Gamma must be greater than 1, have %g", ip.Gamma)
	case ip.R <= 0:
		err = fmt.Errorf("R must be positive, have %g", ip.R)
	case ip.Pinf <= 0:
		err = fmt.Errorf("Pinf must be positive, have %g", ip.Pinf)
	case ip.Tinf <= 0:
		err = fmt.Errorf("Tinf must be positive, have %g", ip.Tinf)
	case ip.Minf < 0:
		err = fmt.Errorf("Minf must not be negative, have %g", ip.Minf)
	}
	return
}

func (ip *InputParametersFV) Fprint(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Fprintf(w, "%8.3f\t\t= R\n", ip.R)
	fmt.Fprintf(w, "%8.3f\t\t= Cp\n", ip.Cp)
	fmt.Fprintf(w, "%8.3f\t\t= Pinf\n", ip.Pinf)
	fmt.Fprintf(w, "%8.3f\t\t= Tinf\n", ip.Tinf)
	fmt.Fprintf(w, "%8.5f\t\t= Minf\n", ip.Minf)
	fmt.Fprintf(w, "[%s]\t\t= Inflow Mode\n", ip.InflowMode)
	fmt.Fprintf(w, "[%s]\t\t= Grid Ordering\n", ip.GridOrdering)
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "BCs[%s] = %v\n", key, ip.BCs[key])
	}
}
