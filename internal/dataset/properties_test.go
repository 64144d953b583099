package dataset

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProperties() TestProperties {
	return TestProperties{
		TestName:         "run-042",
		TestType:         "irregular",
		RepeatType:       "none",
		UseTest:          "yes",
		SamplingHz:       128,
		CalibrationFile:  "cal-2025-03.xlsx",
		DepthAtWM:        0.73,
		DepthAtMPL:       0.75,
		AirGapAtMPL:      0.167,
		WaveType:         "focused",
		WaveAmplitude:    0.05,
		WavePeriod:       1.6,
		FocusingLocation: 5.2,
		Remarks:          "north paddle bank only",
	}
}

func TestSummaryGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "properties_summary", []byte(fullProperties().Summary()))
}

func TestRowsSkipUnsetFields(t *testing.T) {
	p := TestProperties{TestName: "decay-01", SamplingHz: 100}

	assert.Equal(t, [][2]string{
		{"testName", "decay-01"},
		{"fSampling", "100"},
	}, p.Rows())

	assert.Empty(t, TestProperties{}.Rows())
}

func TestSetRow(t *testing.T) {
	var p TestProperties

	require.NoError(t, p.SetRow("testName", "run-007"))
	require.NoError(t, p.SetRow("fSampling", "128"))
	require.NoError(t, p.SetRow("waveAmplitude", "0.05"))
	assert.Equal(t, "run-007", p.TestName)
	assert.Equal(t, 128.0, p.SamplingHz)
	assert.Equal(t, 0.05, p.WaveAmplitude)

	require.NoError(t, p.SetRow("allAttributes", "whatever"), "unknown keys pass through")
	require.Error(t, p.SetRow("fSampling", "not-a-number"))
}

func TestRowsSetRowRoundTrip(t *testing.T) {
	want := fullProperties()

	var got TestProperties
	for _, kv := range want.Rows() {
		require.NoError(t, got.SetRow(kv[0], kv[1]))
	}
	assert.Equal(t, want, got)
}
