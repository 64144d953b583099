package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Channel names conventionally present in basin recordings.
const (
	TimeChannel = "Time"
	LEDChannel  = "LED-chan100"
)

var (
	ErrEmptyName        = errors.New("empty channel name")
	ErrDuplicateChannel = errors.New("duplicate channel")
	ErrLengthMismatch   = errors.New("channel length mismatch")
	ErrNoChannel        = errors.New("channel not found")
)

// Dataset is one recording held in memory: named sample channels sharing a
// common time base, plus the test properties captured alongside them.
// Channel order is insertion order and survives interchange round trips.
type Dataset struct {
	Name       string
	Properties TestProperties

	order    []string
	channels map[string][]float64
}

func New(name string) *Dataset {
	return &Dataset{
		Name:     name,
		channels: make(map[string][]float64),
	}
}

// AddChannel appends a channel. Every channel must match the length of the
// first one added.
func (d *Dataset) AddChannel(name string, samples []float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := d.channels[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrDuplicateChannel)
	}
	if len(d.order) > 0 && len(samples) != d.Len() {
		return fmt.Errorf("%q has %d samples, want %d: %w", name, len(samples), d.Len(), ErrLengthMismatch)
	}
	d.order = append(d.order, name)
	d.channels[name] = samples
	return nil
}

// SetChannel replaces the samples of an existing channel, keeping its
// position. Used by postprocessing steps such as taring.
func (d *Dataset) SetChannel(name string, samples []float64) error {
	if _, ok := d.channels[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNoChannel)
	}
	if len(samples) != d.Len() {
		return fmt.Errorf("%q has %d samples, want %d: %w", name, len(samples), d.Len(), ErrLengthMismatch)
	}
	d.channels[name] = samples
	return nil
}

func (d *Dataset) Channel(name string) ([]float64, error) {
	samples, ok := d.channels[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNoChannel)
	}
	return samples, nil
}

// Channels returns the channel names in insertion order.
func (d *Dataset) Channels() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len is the shared channel length, 0 for an empty dataset.
func (d *Dataset) Len() int {
	if len(d.order) == 0 {
		return 0
	}
	return len(d.channels[d.order[0]])
}

// Window copies the dataset restricted to the sample range [i0, i1], both
// ends inclusive. The copy shares nothing with the receiver.
func (d *Dataset) Window(i0, i1 int) (*Dataset, error) {
	if i0 < 0 || i1 < i0 || i1 >= d.Len() {
		return nil, fmt.Errorf("window [%d, %d] outside 0..%d", i0, i1, d.Len()-1)
	}
	w := New(d.Name)
	w.Properties = d.Properties
	for _, name := range d.order {
		samples := make([]float64, i1-i0+1)
		copy(samples, d.channels[name][i0:i1+1])
		w.order = append(w.order, name)
		w.channels[name] = samples
	}
	return w, nil
}

// Fingerprint hashes channel names and raw sample bits in channel order.
// Two datasets with the same fingerprint hold the same recording.
func (d *Dataset) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, name := range d.order {
		_, _ = h.WriteString(name)
		for _, v := range d.channels[name] {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = h.Write(buf[:])
		}
	}
	return h.Sum64()
}

// Headers renders the banner-style listing of the recording layout.
func (d *Dataset) Headers() string {
	var b strings.Builder
	b.WriteString("=== Listing headers ===\n")
	fmt.Fprintf(&b, "Top-level keys: %v\n", d.order)
	for _, name := range d.order {
		fmt.Fprintf(&b, "   - %s: %d samples\n", name, len(d.channels[name]))
	}
	fmt.Fprintf(&b, "Fingerprint: %016x\n", d.Fingerprint())
	b.WriteString("=== End of headers ===\n")
	return b.String()
}
