package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/calc/catenary"
)

// Config drives one analysis run. Data points at a single workbook or a
// glob pattern; the optional calc blocks switch those sections on.
type Config struct {
	Data              string        `json:"data" yaml:"data"`
	OutputDir         string        `json:"output_dir" yaml:"output_dir"`
	DefaultSamplingHz float64       `json:"default_sampling_hz" yaml:"default_sampling_hz"`
	UseLEDWindow      bool          `json:"use_led_window" yaml:"use_led_window"`
	Tare              []TareSpec    `json:"tare" yaml:"tare"`
	Spectrum          SpectrumSpec  `json:"spectrum" yaml:"spectrum"`
	Catenary          *CatenarySpec `json:"catenary" yaml:"catenary"`
	Mooring           *MooringSpec  `json:"mooring" yaml:"mooring"`
}

type TareSpec struct {
	Channel string  `json:"channel" yaml:"channel"`
	StartS  float64 `json:"start_s" yaml:"start_s"`
	EndS    float64 `json:"end_s" yaml:"end_s"`
}

type SpectrumSpec struct {
	Channels []string `json:"channels" yaml:"channels"`
}

type CatenarySpec struct {
	HorizontalTensionKN float64 `json:"horizontal_tension_kn" yaml:"horizontal_tension_kn"`
	WeightKNPerM        float64 `json:"weight_kn_per_m" yaml:"weight_kn_per_m"`
	XMinM               float64 `json:"x_min_m" yaml:"x_min_m"`
	XMaxM               float64 `json:"x_max_m" yaml:"x_max_m"`
	Points              int     `json:"points" yaml:"points"`
}

type MooringSpec struct {
	LengthM          float64 `json:"length_m" yaml:"length_m"`
	AxialStiffnessKN float64 `json:"axial_stiffness_kn" yaml:"axial_stiffness_kn"`
}

// Load reads a YAML config file and fills in defaults. Call Validate after
// any command-line or environment overrides.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := &Config{}
	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Catenary != nil {
		// A fully omitted parameter pair means the unit line. A partially
		// set pair is taken literally so zero weight stays reachable.
		if c.Catenary.HorizontalTensionKN == 0 && c.Catenary.WeightKNPerM == 0 {
			p := catenary.DefaultParams()
			c.Catenary.HorizontalTensionKN = p.HorizontalTensionKN
			c.Catenary.WeightKNPerM = p.WeightKNPerM
		}
		if c.Catenary.XMinM == 0 && c.Catenary.XMaxM == 0 {
			c.Catenary.XMinM, c.Catenary.XMaxM = -5, 5
		}
		if c.Catenary.Points == 0 {
			c.Catenary.Points = 201
		}
	}
}

// ApplyEnv overlays environment overrides on top of the file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SKYBOX_DATA"); v != "" {
		c.Data = v
	}
	if v := os.Getenv("SKYBOX_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
}

func (c *Config) Validate() error {
	if c.Data == "" {
		return fmt.Errorf("data path or pattern is required")
	}
	for _, ta := range c.Tare {
		if ta.Channel == "" {
			return fmt.Errorf("tare: channel is required")
		}
		if ta.EndS <= ta.StartS {
			return fmt.Errorf("tare %s: end_s must be after start_s", ta.Channel)
		}
	}
	if c.Catenary != nil {
		if c.Catenary.XMaxM <= c.Catenary.XMinM {
			return fmt.Errorf("catenary: x_max_m must be greater than x_min_m")
		}
		if c.Catenary.Points < 2 {
			return fmt.Errorf("catenary: need at least two points")
		}
	}
	return nil
}
