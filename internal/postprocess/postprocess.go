package postprocess

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/dataset"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoTransition = errors.New("no LED transition")
)

// LEDTransitions returns the first and last sample index where the trigger
// signal is high (> 0). Everything between them is the active part of the
// recording, including any dropouts inside.
func LEDTransitions(led []float64) (rise, fall int, err error) {
	rise, fall = -1, -1
	for i, v := range led {
		if v > 0 {
			if rise < 0 {
				rise = i
			}
			fall = i
		}
	}
	if rise < 0 {
		return 0, 0, ErrNoTransition
	}
	return rise, fall, nil
}

// ActiveWindow locates the trigger window on the conventional LED channel.
func ActiveWindow(d *dataset.Dataset) (rise, fall int, err error) {
	led, err := d.Channel(dataset.LEDChannel)
	if err != nil {
		return 0, 0, err
	}
	return LEDTransitions(led)
}

// Tare removes the still-water offset from a channel: the mean over the
// time window [startS, endS) is subtracted from every sample. Window edges
// snap to the nearest time sample and the end is exclusive. Returns the
// tared copy and the subtracted value; the input is not modified.
func Tare(t, samples []float64, startS, endS float64) ([]float64, float64, error) {
	if len(t) == 0 || len(t) != len(samples) {
		return nil, 0, fmt.Errorf("time and samples disagree (%d vs %d): %w", len(t), len(samples), ErrInvalidInput)
	}
	i0 := floats.NearestIdx(t, startS)
	i1 := floats.NearestIdx(t, endS)
	if i1 <= i0 {
		return nil, 0, fmt.Errorf("empty tare window [%g s, %g s): %w", startS, endS, ErrInvalidInput)
	}

	value := stat.Mean(samples[i0:i1], nil)
	tared := make([]float64, len(samples))
	for i, v := range samples {
		tared[i] = v - value
	}
	return tared, value, nil
}
