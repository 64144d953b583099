package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// TestProperties carries the metadata recorded with every basin test. Keys
// keep the camelCase spelling used by the acquisition side so interchange
// files stay readable there.
type TestProperties struct {
	TestName         string  `json:"testName" yaml:"testName"`
	TestType         string  `json:"testType" yaml:"testType"`
	RepeatType       string  `json:"repeatType" yaml:"repeatType"`
	UseTest          string  `json:"useTest" yaml:"useTest"`
	SamplingHz       float64 `json:"fSampling" yaml:"fSampling"`
	CalibrationFile  string  `json:"calibrationFile" yaml:"calibrationFile"`
	DepthAtWM        float64 `json:"depthAtWM" yaml:"depthAtWM"`
	DepthAtMPL       float64 `json:"depthAtMPL" yaml:"depthAtMPL"`
	AirGapAtMPL      float64 `json:"airGapAtMPL" yaml:"airGapAtMPL"`
	WaveType         string  `json:"waveType" yaml:"waveType"`
	WaveAmplitude    float64 `json:"waveAmplitude" yaml:"waveAmplitude"`
	WavePeriod       float64 `json:"wavePeriod" yaml:"wavePeriod"`
	FocusingLocation float64 `json:"focusingLocation" yaml:"focusingLocation"`
	Remarks          string  `json:"remarks" yaml:"remarks"`
}

// Rows returns key/value pairs for every recorded field in the conventional
// report order. Unset fields are skipped.
func (p TestProperties) Rows() [][2]string {
	ordered := []struct {
		key   string
		value any
	}{
		{"testName", p.TestName},
		{"testType", p.TestType},
		{"repeatType", p.RepeatType},
		{"useTest", p.UseTest},
		{"fSampling", p.SamplingHz},
		{"calibrationFile", p.CalibrationFile},
		{"depthAtWM", p.DepthAtWM},
		{"depthAtMPL", p.DepthAtMPL},
		{"airGapAtMPL", p.AirGapAtMPL},
		{"waveType", p.WaveType},
		{"waveAmplitude", p.WaveAmplitude},
		{"wavePeriod", p.WavePeriod},
		{"focusingLocation", p.FocusingLocation},
		{"remarks", p.Remarks},
	}

	var rows [][2]string
	for _, f := range ordered {
		switch v := f.value.(type) {
		case string:
			if v != "" {
				rows = append(rows, [2]string{f.key, v})
			}
		case float64:
			if v != 0 {
				rows = append(rows, [2]string{f.key, strconv.FormatFloat(v, 'g', -1, 64)})
			}
		}
	}
	return rows
}

// SetRow assigns one key/value pair parsed from an interchange row. Keys
// this side does not track (allAttributes and friends) are ignored.
func (p *TestProperties) SetRow(key, value string) error {
	switch key {
	case "testName":
		p.TestName = value
	case "testType":
		p.TestType = value
	case "repeatType":
		p.RepeatType = value
	case "useTest":
		p.UseTest = value
	case "calibrationFile":
		p.CalibrationFile = value
	case "waveType":
		p.WaveType = value
	case "remarks":
		p.Remarks = value
	case "fSampling", "depthAtWM", "depthAtMPL", "airGapAtMPL",
		"waveAmplitude", "wavePeriod", "focusingLocation":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("property %s: %w", key, err)
		}
		switch key {
		case "fSampling":
			p.SamplingHz = v
		case "depthAtWM":
			p.DepthAtWM = v
		case "depthAtMPL":
			p.DepthAtMPL = v
		case "airGapAtMPL":
			p.AirGapAtMPL = v
		case "waveAmplitude":
			p.WaveAmplitude = v
		case "wavePeriod":
			p.WavePeriod = v
		case "focusingLocation":
			p.FocusingLocation = v
		}
	}
	return nil
}

// Summary renders the banner-style property listing.
func (p TestProperties) Summary() string {
	var b strings.Builder
	b.WriteString("=== Test Properties ===\n")
	for _, kv := range p.Rows() {
		fmt.Fprintf(&b, "   - %s: %s\n", kv[0], kv[1])
	}
	b.WriteString("=== End of Test Properties ===\n")
	return b.String()
}
