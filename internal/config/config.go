package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHalfSize   = 70.0 // pc
	DefaultResolution = 64
	DefaultWavelength = 0.21 // m
	DefaultGamma      = 3.0
	DefaultB          = 5.0 // uG
)

// Config describes one synthetic observation: the grid, the field and
// electron models filling it, and the observation parameters.
type Config struct {
	Field          string         `yaml:"field"`     // uniform | helical
	Electrons      string         `yaml:"electrons"` // constant | shell
	Grid           GridConfig     `yaml:"grid"`
	Wavelength     float64        `yaml:"wavelength"` // m; 0 = no Faraday rotation
	Gamma          float64        `yaml:"gamma"`
	BeamSD         float64        `yaml:"beam_sd"` // pixels; 0 = pencil beam
	FieldParams    FieldConfig    `yaml:"field_params"`
	ElectronParams ElectronConfig `yaml:"electron_params"`
}

// GridConfig is a cube of the given half-size (pc) and per-axis resolution.
type GridConfig struct {
	HalfSize   float64 `yaml:"half_size"` // pc
	Resolution int     `yaml:"resolution"`
}

type FieldConfig struct {
	B      float64 `yaml:"b"`      // uG
	Alpha  float64 `yaml:"alpha"`  // rad
	Beta   float64 `yaml:"beta"`   // rad
	Gamma  float64 `yaml:"gamma"`  // rad
	Period float64 `yaml:"period"` // pc (helical)
}

type ElectronConfig struct {
	Density     float64 `yaml:"density"` // cm^-3, thermal
	Radius      float64 `yaml:"radius"`  // pc (shell)
	Compression float64 `yaml:"compression"`
	Sharpness   float64 `yaml:"sharpness"`
	CRDensity   float64 `yaml:"cr_density"` // cm^-3, cosmic-ray
}

func DefaultConfig() *Config {
	return &Config{
		Field:      "uniform",
		Electrons:  "constant",
		Grid:       GridConfig{HalfSize: DefaultHalfSize, Resolution: DefaultResolution},
		Wavelength: DefaultWavelength,
		Gamma:      DefaultGamma,
		FieldParams: FieldConfig{
			B:      DefaultB,
			Period: DefaultHalfSize,
		},
		ElectronParams: ElectronConfig{
			Density:     0.01,
			Radius:      35,
			Compression: 12,
			Sharpness:   10,
			CRDensity:   1e-4,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Field {
	case "uniform", "helical":
	default:
		return fmt.Errorf("unknown field model %q", c.Field)
	}
	switch c.Electrons {
	case "constant", "shell":
	default:
		return fmt.Errorf("unknown electron model %q", c.Electrons)
	}
	if c.Grid.HalfSize <= 0 {
		return fmt.Errorf("grid half_size must be positive, got %g", c.Grid.HalfSize)
	}
	if c.Grid.Resolution < 2 {
		return fmt.Errorf("grid resolution must be at least 2, got %d", c.Grid.Resolution)
	}
	if c.Wavelength < 0 {
		return fmt.Errorf("wavelength must be non-negative, got %g", c.Wavelength)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("gamma must be positive, got %g", c.Gamma)
	}
	if c.Field == "helical" && c.FieldParams.Period == 0 {
		return fmt.Errorf("helical field needs a non-zero period")
	}
	return nil
}
