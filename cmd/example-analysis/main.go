// example-analysis evaluates the placeholder catenary over the usual span
// and the example mooring line, printing the computed ranges.
package main

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/floats"

	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/calc/catenary"
	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/calc/mooring"
)

func main() {
	x := floats.Span(make([]float64, 201), -5, 5)
	y := catenary.Profile(x, catenary.Params{HorizontalTensionKN: 10.0, WeightKNPerM: 2.0})

	res, err := mooring.Calculate(mooring.Input{LengthM: 100.0, AxialStiffnessKN: 1e6})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Catenary y-range:", floats.Min(y), "to", floats.Max(y))
	fmt.Println("Example mooring stiffness:", res.StiffnessKNPerM)
}
