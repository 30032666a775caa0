package chart

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoDatasets     = errors.New("chart: no datasets")
	ErrDuplicateKey   = errors.New("chart: duplicate dataset key")
	ErrSampleCount    = errors.New("chart: dataset length differs from sample count")
	ErrInvalidValue   = errors.New("chart: sample value is not finite")
	ErrUnknownDataset = errors.New("chart: unknown dataset")
)

// Sample is one labelled value of a dataset.
type Sample struct {
	Label string
	Value float64
}

// Dataset is one selectable series, e.g. a year of monthly values.
// Sample order is temporal order.
type Dataset struct {
	Key     string
	Samples []Sample
}

func (d Dataset) Len() int { return len(d.Samples) }

func (d Dataset) clone() Dataset {
	d.Samples = append([]Sample(nil), d.Samples...)
	return d
}

func cloneDatasets(sets []Dataset) []Dataset {
	out := make([]Dataset, len(sets))
	for i, d := range sets {
		out[i] = d.clone()
	}
	return out
}

// Stats summarizes a dataset for the header cards.
type Stats struct {
	Highest float64
	Lowest  float64
	Average float64
}

func (d Dataset) Stats() Stats {
	if len(d.Samples) == 0 {
		return Stats{}
	}
	st := Stats{Highest: d.Samples[0].Value, Lowest: d.Samples[0].Value}
	sum := 0.0
	for _, s := range d.Samples {
		st.Highest = math.Max(st.Highest, s.Value)
		st.Lowest = math.Min(st.Lowest, s.Value)
		sum += s.Value
	}
	st.Average = math.Round(sum / float64(len(d.Samples)))
	return st
}

func validateDatasets(sets []Dataset) (sampleCount int, err error) {
	if len(sets) == 0 {
		return 0, ErrNoDatasets
	}
	sampleCount = len(sets[0].Samples)
	seen := make(map[string]bool, len(sets))
	for _, d := range sets {
		if d.Key == "" || seen[d.Key] {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateKey, d.Key)
		}
		seen[d.Key] = true
		if len(d.Samples) != sampleCount {
			return 0, fmt.Errorf("%w: %q has %d samples, want %d", ErrSampleCount, d.Key, len(d.Samples), sampleCount)
		}
		for i, s := range d.Samples {
			if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
				return 0, fmt.Errorf("%w: %q[%d]", ErrInvalidValue, d.Key, i)
			}
		}
	}
	return sampleCount, nil
}
