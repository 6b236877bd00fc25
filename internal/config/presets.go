package config

// Presets are ready-made observation setups, keyed by field model then
// preset name.
var Presets = map[string]map[string]*Config{
	"uniform": {
		"pencil": {
			Field: "uniform", Electrons: "constant",
			Grid:       GridConfig{HalfSize: 70, Resolution: 64},
			Wavelength: 0.21, Gamma: 3.0,
			FieldParams:    FieldConfig{B: 5, Beta: 0.3, Gamma: 0.8},
			ElectronParams: ElectronConfig{Density: 0.01, CRDensity: 1e-4},
		},
		"smoothed": {
			Field: "uniform", Electrons: "constant",
			Grid:       GridConfig{HalfSize: 70, Resolution: 64},
			Wavelength: 0.21, Gamma: 3.0, BeamSD: 2.5,
			FieldParams:    FieldConfig{B: 5, Beta: 0.3, Gamma: 0.8},
			ElectronParams: ElectronConfig{Density: 0.01, CRDensity: 1e-4},
		},
		"unrotated": {
			Field: "uniform", Electrons: "constant",
			Grid:       GridConfig{HalfSize: 70, Resolution: 64},
			Wavelength: 0, Gamma: 3.0,
			FieldParams:    FieldConfig{B: 5, Gamma: 0.8},
			ElectronParams: ElectronConfig{Density: 0.01, CRDensity: 1e-4},
		},
	},
	"helical": {
		"tight": {
			Field: "helical", Electrons: "constant",
			Grid:       GridConfig{HalfSize: 70, Resolution: 64},
			Wavelength: 0.21, Gamma: 3.0,
			FieldParams:    FieldConfig{B: 5, Period: 35},
			ElectronParams: ElectronConfig{Density: 0.01, CRDensity: 1e-4},
		},
		"shell": {
			Field: "helical", Electrons: "shell",
			Grid:       GridConfig{HalfSize: 70, Resolution: 96},
			Wavelength: 0.21, Gamma: 3.0, BeamSD: 2.5,
			FieldParams:    FieldConfig{B: 5, Period: 70, Beta: 0.2},
			ElectronParams: ElectronConfig{Density: 0.01, Radius: 35, Compression: 12, Sharpness: 10, CRDensity: 1e-4},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
