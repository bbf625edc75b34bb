package parameters

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AnkushinDaniil/emfield/entity/format"
	"github.com/AnkushinDaniil/emfield/entity/mode"
)

type Parameters struct {
	Mode   mode.Mode     `yaml:"-"`
	Format format.Format `yaml:"-"`

	Charge   float64 `yaml:"charge"`   // coulombs
	Current  float64 `yaml:"current"`  // amperes
	Distance float64 `yaml:"distance"` // meters

	SweepFrom  float64 `yaml:"sweep_from"` // meters
	SweepTo    float64 `yaml:"sweep_to"`   // meters
	SweepSteps int     `yaml:"sweep_steps"`
}

func Default() *Parameters {
	return &Parameters{
		Mode:       mode.Demo,
		Format:     format.HTML,
		Charge:     1e-6,
		Current:    10,
		Distance:   0.1,
		SweepFrom:  0.01,
		SweepTo:    1,
		SweepSteps: 100,
	}
}

// Decode overlays the YAML document read from r onto p. Keys missing from the
// document keep their current values.
func (p *Parameters) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	return p.Validate()
}

func (p *Parameters) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open parameters file: %w", err)
	}
	defer f.Close()
	return p.Decode(f)
}

// Validate checks the sweep range. Demo inputs are passed to the formulas as is.
func (p *Parameters) Validate() error {
	if p.SweepSteps < 2 {
		return fmt.Errorf("sweep_steps must be at least 2, got %d", p.SweepSteps)
	}
	if p.SweepFrom <= 0 {
		return fmt.Errorf("sweep_from must be positive, got %g", p.SweepFrom)
	}
	if p.SweepTo <= p.SweepFrom {
		return fmt.Errorf("sweep_to (%g) must be greater than sweep_from (%g)", p.SweepTo, p.SweepFrom)
	}
	return nil
}

// Distances returns SweepSteps evenly spaced points from SweepFrom to SweepTo inclusive.
func (p *Parameters) Distances() []float64 {
	step := (p.SweepTo - p.SweepFrom) / float64(p.SweepSteps-1)
	d := make([]float64, p.SweepSteps)
	for i := range d {
		d[i] = p.SweepFrom + float64(i)*step
	}
	d[len(d)-1] = p.SweepTo
	return d
}
