package entity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/emfield/entity/parameters"
)

type Series struct {
	name string
	data []opts.LineData
}

func NewSeries(name string, capacity int) (*Series, error) {
	if name == "" {
		return nil, errors.New("name is empty")
	}
	return &Series{name: name, data: make([]opts.LineData, 0, capacity)}, nil
}

func (s *Series) Name() string {
	return s.name
}

func (s *Series) Data() []opts.LineData {
	return s.data
}

func (s *Series) Len() int {
	return len(s.data)
}

// Value returns the i-th point. Points are always stored as float64.
func (s *Series) Value(i int) float64 {
	return s.data[i].Value.(float64)
}

func (s *Series) append(v float64) {
	s.data = append(s.data, opts.LineData{Value: v})
}

type SweepResult struct {
	Distances []float64
	Electric  *Series
	Magnetic  *Series
}

type sample struct {
	distance float64
	electric float64
	magnetic float64
}

// Sweep evaluates both field formulas over the parameters' distance range.
func Sweep(ctx context.Context, params *parameters.Parameters) (*SweepResult, error) {
	timestamp := time.Now()
	defer func() {
		log.WithField("time", time.Since(timestamp)).Debug("Sweep finished")
	}()

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sweep parameters: %w", err)
	}
	distances := params.Distances()

	electric, err := NewSeries(fmt.Sprintf("E, Q = %s C", FormatValue(params.Charge)), len(distances))
	if err != nil {
		return nil, fmt.Errorf("failed to create series: %w", err)
	}
	magnetic, err := NewSeries(fmt.Sprintf("B, I = %s A", FormatValue(params.Current)), len(distances))
	if err != nil {
		return nil, fmt.Errorf("failed to create series: %w", err)
	}

	distanceChan := make(chan float64, 1<<10)
	sampleChan := make(chan sample, 1<<10)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer close(distanceChan)
		defer wg.Done()
		for _, d := range distances {
			select {
			case distanceChan <- d:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer close(sampleChan)
		defer wg.Done()
		calculateSamples(ctx, params, distanceChan, sampleChan)
	}()

	result := &SweepResult{
		Distances: make([]float64, 0, len(distances)),
		Electric:  electric,
		Magnetic:  magnetic,
	}
	var sampleErr error
	for s := range sampleChan {
		if sampleErr == nil {
			sampleErr = s.check()
		}
		result.Distances = append(result.Distances, s.distance)
		result.Electric.append(s.electric)
		result.Magnetic.append(s.magnetic)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sweep interrupted: %w", err)
	}
	if sampleErr != nil {
		return nil, sampleErr
	}
	log.WithField("points", len(result.Distances)).Debug("Sweep calculated")
	return result, nil
}

// ErrNotFinite is returned when a swept magnitude overflows to Inf or is NaN.
var ErrNotFinite = errors.New("field magnitude is not finite")

func (s sample) check() error {
	if math.IsInf(s.electric, 0) || math.IsNaN(s.electric) {
		return fmt.Errorf("electric field at r = %g m: %w", s.distance, ErrNotFinite)
	}
	if math.IsInf(s.magnetic, 0) || math.IsNaN(s.magnetic) {
		return fmt.Errorf("magnetic field at r = %g m: %w", s.distance, ErrNotFinite)
	}
	return nil
}

func calculateSamples(
	ctx context.Context,
	params *parameters.Parameters,
	distanceChan <-chan float64,
	sampleChan chan<- sample,
) {
	for d := range distanceChan {
		s := sample{
			distance: d,
			electric: GaussField(params.Charge, d),
			magnetic: AmpereField(params.Current, d),
		}
		select {
		case sampleChan <- s:
		case <-ctx.Done():
			return
		}
	}
}
