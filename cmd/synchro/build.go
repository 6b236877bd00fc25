package main

import (
	"fmt"

	"github.com/san-kum/synchro/internal/config"
	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/model"
	"github.com/san-kum/synchro/internal/units"
)

// inputs is everything the kernel needs for one observation.
type inputs struct {
	grid *model.Grid
	b    *field.Vector3D
	ne   *field.Scalar3D
	ncr  *field.Scalar3D
}

// buildInputs assembles the volumetric fields described by a config.
func buildInputs(cfg *config.Config) (*inputs, error) {
	L := cfg.Grid.HalfSize
	n := cfg.Grid.Resolution
	grid, err := model.NewUniformGrid(
		[3]float64{-L, -L, -L}, [3]float64{L, L, L}, n, n, n, units.Parsec)
	if err != nil {
		return nil, err
	}

	var b *field.Vector3D
	switch cfg.Field {
	case "uniform":
		gen := &model.UniformField{
			B:     cfg.FieldParams.B,
			Beta:  cfg.FieldParams.Beta,
			Gamma: cfg.FieldParams.Gamma,
		}
		b, err = gen.Generate(grid)
	case "helical":
		gen := &model.HelicalField{
			B:      cfg.FieldParams.B,
			Alpha:  cfg.FieldParams.Alpha,
			Beta:   cfg.FieldParams.Beta,
			Period: cfg.FieldParams.Period,
		}
		b, err = gen.Generate(grid)
	default:
		return nil, fmt.Errorf("unknown field model %q", cfg.Field)
	}
	if err != nil {
		return nil, err
	}

	var ne *field.Scalar3D
	switch cfg.Electrons {
	case "constant":
		ne = (&model.ConstantDensity{N: cfg.ElectronParams.Density}).Generate(grid)
	case "shell":
		ne = (&model.ShellDensity{
			N0:          cfg.ElectronParams.Density,
			Radius:      cfg.ElectronParams.Radius,
			Compression: cfg.ElectronParams.Compression,
			Sharpness:   cfg.ElectronParams.Sharpness,
		}).Generate(grid)
	default:
		return nil, fmt.Errorf("unknown electron model %q", cfg.Electrons)
	}

	ncr := (&model.ConstantDensity{N: cfg.ElectronParams.CRDensity}).Generate(grid)

	return &inputs{grid: grid, b: b, ne: ne, ncr: ncr}, nil
}
