package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset(t *testing.T) *Dataset {
	t.Helper()
	d := New("run-001")
	require.NoError(t, d.AddChannel(TimeChannel, []float64{0, 0.1, 0.2, 0.3, 0.4}))
	require.NoError(t, d.AddChannel(LEDChannel, []float64{0, 1, 1, 1, 0}))
	require.NoError(t, d.AddChannel("WP-chan1", []float64{10, 20, 30, 40, 50}))
	return d
}

func TestAddChannel(t *testing.T) {
	d := sampleDataset(t)

	assert.Equal(t, []string{TimeChannel, LEDChannel, "WP-chan1"}, d.Channels())
	assert.Equal(t, 5, d.Len())

	err := d.AddChannel("WP-chan1", []float64{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, ErrDuplicateChannel)

	err = d.AddChannel("short", []float64{1})
	require.ErrorIs(t, err, ErrLengthMismatch)

	err = d.AddChannel("", []float64{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, ErrEmptyName)

	assert.Equal(t, 3, len(d.Channels()), "failed adds must not register")
}

func TestChannel(t *testing.T) {
	d := sampleDataset(t)

	wp, err := d.Channel("WP-chan1")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40, 50}, wp)

	_, err = d.Channel("WP-chan99")
	require.ErrorIs(t, err, ErrNoChannel)
}

func TestSetChannel(t *testing.T) {
	d := sampleDataset(t)

	require.NoError(t, d.SetChannel("WP-chan1", []float64{1, 2, 3, 4, 5}))
	wp, err := d.Channel("WP-chan1")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, wp)
	assert.Equal(t, []string{TimeChannel, LEDChannel, "WP-chan1"}, d.Channels(), "order is kept")

	err = d.SetChannel("WP-chan99", []float64{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, ErrNoChannel)

	err = d.SetChannel("WP-chan1", []float64{1})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestLenEmpty(t *testing.T) {
	assert.Equal(t, 0, New("empty").Len())
}

func TestWindow(t *testing.T) {
	d := sampleDataset(t)
	d.Properties.TestName = "run-001"

	w, err := d.Window(1, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, w.Len())
	assert.Equal(t, d.Channels(), w.Channels())
	assert.Equal(t, "run-001", w.Properties.TestName)

	tc, err := w.Channel(TimeChannel)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, tc)

	wp, err := w.Channel("WP-chan1")
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 30, 40}, wp)

	// The window is a copy, not a view.
	wp[0] = -1
	orig, err := d.Channel("WP-chan1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, orig[1])
}

func TestWindowBounds(t *testing.T) {
	d := sampleDataset(t)

	_, err := d.Window(3, 1)
	require.Error(t, err)
	_, err = d.Window(-1, 2)
	require.Error(t, err)
	_, err = d.Window(0, 5)
	require.Error(t, err)

	w, err := d.Window(2, 2)
	require.NoError(t, err, "single-sample window is valid")
	assert.Equal(t, 1, w.Len())
}

func TestFingerprint(t *testing.T) {
	a := sampleDataset(t)
	b := sampleDataset(t)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "identical recordings match")

	require.NoError(t, b.SetChannel("WP-chan1", []float64{10, 20, 30, 40, 51}))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint(), "one sample flips the hash")

	c := New("run-001")
	require.NoError(t, c.AddChannel(TimeChannel, []float64{0, 0.1, 0.2, 0.3, 0.4}))
	require.NoError(t, c.AddChannel(LEDChannel, []float64{0, 1, 1, 1, 0}))
	require.NoError(t, c.AddChannel("WP-chan2", []float64{10, 20, 30, 40, 50}))
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint(), "channel names are part of the identity")
}

func TestHeaders(t *testing.T) {
	d := sampleDataset(t)
	h := d.Headers()

	assert.Contains(t, h, "=== Listing headers ===")
	assert.Contains(t, h, "Top-level keys: [Time LED-chan100 WP-chan1]")
	assert.Contains(t, h, "   - Time: 5 samples")
	assert.Contains(t, h, "   - WP-chan1: 5 samples")
	assert.Contains(t, h, "Fingerprint: ")
	assert.Contains(t, h, "=== End of headers ===")
}
