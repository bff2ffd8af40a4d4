// Package InputParameters parses the "smoother" sub-dictionary of the input
// dictionary, mirroring gocfd's InputParameters package: a struct with tags,
// a Parse(data []byte) error method backed by ghodss/yaml, and a Print
// method for a human-readable dump.
package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// SmootherParameters holds the parameters consumed by the getme smoothing
// core, keyed exactly as spec.md 6 documents them.
type SmootherParameters struct {
	FactorQualityMin               float64 `json:"factorQualityMin"`
	FactorQualityMax               float64 `json:"factorQualityMax"`
	Relaxation                     float64 `json:"relaxation"`
	AverageMultipleCells           float64 `json:"averageMultipleCells"`
	MaxSimultaneousIter            int     `json:"maxSimultaneousIter"`
	SequentialTransformationParam  float64 `json:"sequentialTransformationParam"`
	SequentialRelaxationParam      float64 `json:"sequentialRelaxationParam"`
	SequentialMinimalChange        float64 `json:"sequentialMinimalChange"`
	DeltaPiI                       float64 `json:"deltaPiI"`
	DeltaPiR                       float64 `json:"deltaPiR"`
	DeltaPiS                       float64 `json:"deltaPiS"`
}

// MeshDict is the top-level input dictionary; only the "smoother"
// sub-dictionary is consumed by this repo's core. Everything else in a real
// blockMeshDict (vertices, blocks, edges, boundary) belongs to the external
// block-topology parser.
type MeshDict struct {
	Smoother *SmootherParameters `json:"smoother"`
}

// Parse unmarshals a YAML input dictionary. Absence of the "smoother" key
// leaves Smoother nil rather than a zero-valued struct, so callers can gate
// both smoothing phases on its presence (spec.md 9, Open Question 1).
func (d *MeshDict) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, d); err != nil {
		return fmt.Errorf("InputParameters: parse mesh dictionary: %w", err)
	}
	return nil
}

// Parse unmarshals just the "smoother" sub-dictionary on its own, for
// callers that have already located it (e.g. via viper.Sub).
func (sp *SmootherParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, sp); err != nil {
		return fmt.Errorf("InputParameters: parse smoother dictionary: %w", err)
	}
	return nil
}

// Print writes a human-readable dump of the smoother parameters, in the
// style of gocfd's InputParameters2D.Print.
func (sp *SmootherParameters) Print() {
	fmt.Printf("%8.5f\t\t= factorQualityMin\n", sp.FactorQualityMin)
	fmt.Printf("%8.5f\t\t= factorQualityMax\n", sp.FactorQualityMax)
	fmt.Printf("%8.5f\t\t= relaxation\n", sp.Relaxation)
	fmt.Printf("%8.5f\t\t= averageMultipleCells\n", sp.AverageMultipleCells)
	fmt.Printf("%8d\t\t\t= maxSimultaneousIter\n", sp.MaxSimultaneousIter)
	fmt.Printf("%8.5f\t\t= sequentialTransformationParam\n", sp.SequentialTransformationParam)
	fmt.Printf("%8.5f\t\t= sequentialRelaxationParam\n", sp.SequentialRelaxationParam)
	fmt.Printf("%8.5f\t\t= sequentialMinimalChange\n", sp.SequentialMinimalChange)
	fmt.Printf("%8.5f\t\t= deltaPiI\n", sp.DeltaPiI)
	fmt.Printf("%8.5f\t\t= deltaPiR\n", sp.DeltaPiR)
	fmt.Printf("%8.5f\t\t= deltaPiS\n", sp.DeltaPiS)
}
