// Command gocuba runs the Cuba demo integrand through all four routines:
// sin(x)·cos(y)·exp(z) over the unit cube, analytic value ≈ 0.664669.
package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/numkit/gocuba/pkg/cuba"
)

func main() {
	log.Printf("gocuba version: %s (Cuba %s)", cuba.Version, cuba.UpstreamVersion)

	if err := cuba.Available(); err != nil {
		var le *cuba.LoadError
		switch {
		case errors.As(err, &le):
			log.Fatalf("libcuba not found: %v", err)
		case errors.Is(err, cuba.ErrNotBuilt), errors.Is(err, cuba.ErrCGONotEnabled):
			fmt.Printf("native bindings unavailable on this build: %v\n", err)
			return
		default:
			log.Fatalf("unexpected failure loading libcuba: %v", err)
		}
	}
	log.Printf("libcuba source: %s", cuba.LibrarySource())

	verbose := 2
	if v, err := strconv.Atoi(os.Getenv("CUBAVERBOSE")); err == nil {
		verbose = v
	}

	base := cuba.Params{
		NDim:  3,
		Flags: verbose,
		Integrand: func(ndim, ncomp int, x, f []float64, _ any) error {
			f[0] = math.Sin(x[0]) * math.Cos(x[1]) * math.Exp(x[2])
			return nil
		},
	}

	vr, err := cuba.Vegas(cuba.VegasParams{Params: base})
	if err != nil {
		log.Fatalf("Vegas: %v", err)
	}
	printResult("Vegas", *vr, -1)

	suave := base
	suave.Flags = verbose | cuba.FlagLastSamples
	sr, err := cuba.Suave(cuba.SuaveParams{Params: suave})
	if err != nil {
		log.Fatalf("Suave: %v", err)
	}
	printResult("Suave", sr.Result, sr.NRegions)

	dr, err := cuba.Divonne(cuba.DivonneParams{
		Params:       base,
		Key1:         47,
		Key2:         1,
		Key3:         1,
		MaxPass:      5,
		Border:       0,
		MaxChisq:     10,
		MinDeviation: 0.25,
	})
	if err != nil {
		log.Fatalf("Divonne: %v", err)
	}
	printResult("Divonne", dr.Result, dr.NRegions)

	cuhre := base
	cuhre.Flags = verbose | cuba.FlagLastSamples
	cr, err := cuba.Cuhre(cuba.CuhreParams{Params: cuhre})
	if err != nil {
		log.Fatalf("Cuhre: %v", err)
	}
	printResult("Cuhre", cr.Result, cr.NRegions)
}

// printResult mirrors the Cuba demo output. nregions < 0 means the routine
// has no region concept (Vegas).
func printResult(name string, r cuba.Result, nregions int) {
	status := fmt.Sprintf("%s status:\tneval %d\tfail %d", name, r.NEval, r.Fail)
	if nregions >= 0 {
		status += fmt.Sprintf("\tnregions %d", nregions)
	}
	fmt.Println(status)
	for _, c := range r.Components {
		fmt.Printf("%s result:\t%.5f +- %.5e\tp = %.5f\n", name, c.Integral, c.Error, c.Prob)
	}
	fmt.Println()
}
