package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/synchro/internal/config"
	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/observables"
	"github.com/san-kum/synchro/internal/storage"
	"github.com/san-kum/synchro/internal/tui"
	"github.com/san-kum/synchro/internal/units"
	"github.com/san-kum/synchro/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	fieldName  string
	wavelength float64
	gamma      float64
	beamSD     float64
	resolution int
	halfSize   float64
	showMaps   bool
	profileRow int

	logger *zap.SugaredLogger
)

func main() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zl.Sync()
	logger = zl.Sugar()

	// Legacy calling conventions warn but never fail.
	field.DeprecationHandler = func(msg string) { logger.Warn(msg) }

	rootCmd := &cobra.Command{
		Use:   "synchro",
		Short: "synthetic synchrotron and Faraday rotation observables",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".synchro", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute and store I/Q/U, Faraday depth and Psi maps",
		RunE:  runObservation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "preset name (see 'presets')")
	runCmd.Flags().StringVar(&fieldName, "field", "", "field model (uniform|helical)")
	runCmd.Flags().Float64Var(&wavelength, "lambda", -1, "observing wavelength in m (0 = no rotation)")
	runCmd.Flags().Float64Var(&gamma, "gamma", -1, "cosmic-ray spectral index")
	runCmd.Flags().Float64Var(&beamSD, "beam", -1, "beam kernel standard deviation in pixels")
	runCmd.Flags().IntVar(&resolution, "res", 0, "grid resolution per axis")
	runCmd.Flags().Float64Var(&halfSize, "half-size", 0, "grid half size in pc")
	runCmd.Flags().BoolVar(&showMaps, "show", false, "render heatmaps after the run")
	runCmd.Flags().IntVar(&profileRow, "profile", -1, "plot a row profile of the I map")

	fdCmd := &cobra.Command{
		Use:   "fd",
		Short: "compute the total Faraday depth map only",
		RunE:  runFaradayDepth,
	}
	fdCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	fdCmd.Flags().StringVar(&preset, "preset", "", "preset name")
	fdCmd.Flags().BoolVar(&showMaps, "show", false, "render the heatmap")

	rmCmd := &cobra.Command{
		Use:   "rm [run_id_1] [run_id_2]",
		Short: "estimate rotation measure from two stored runs",
		Args:  cobra.ExactArgs(2),
		RunE:  runRotationMeasure,
	}
	rmCmd.Flags().BoolVar(&showMaps, "show", false, "render the heatmap")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "browse a run's maps interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.View(storage.New(dataDir), args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tPRESET")
			for model := range config.Presets {
				for _, name := range config.ListPresets(model) {
					fmt.Fprintf(w, "%s\t%s\n", model, name)
				}
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, fdCmd, rmCmd, listCmd, exportCmd, viewCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file and explicit flags.
func resolveConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		model := fieldName
		if model == "" {
			model = cfg.Field
		}
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %s/%s", model, preset)
		}
		c := *p
		cfg = &c
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if fieldName != "" {
		cfg.Field = fieldName
	}
	if wavelength >= 0 {
		cfg.Wavelength = wavelength
	}
	if gamma > 0 {
		cfg.Gamma = gamma
	}
	if beamSD >= 0 {
		cfg.BeamSD = beamSD
	}
	if resolution > 0 {
		cfg.Grid.Resolution = resolution
	}
	if halfSize > 0 {
		cfg.Grid.HalfSize = halfSize
	}

	return cfg, cfg.Validate()
}

func runObservation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	logger.Infow("building fields",
		"field", cfg.Field, "electrons", cfg.Electrons,
		"resolution", cfg.Grid.Resolution)
	in, err := buildInputs(cfg)
	if err != nil {
		return err
	}

	lam := units.Q(cfg.Wavelength, units.Metre)
	maps, err := observables.Stokes(in.grid.Depth(), lam, in.b, in.ne, in.ncr, cfg.Gamma, cfg.BeamSD)
	if err != nil {
		return err
	}
	fd, err := observables.FaradayDepth(in.grid.Depth(), in.b.Z, in.ne, cfg.BeamSD)
	if err != nil {
		return err
	}
	psi, err := observables.Psi(maps.Q, maps.U)
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(storage.RunMetadata{
		Field:      cfg.Field,
		Electrons:  cfg.Electrons,
		Wavelength: cfg.Wavelength,
		Gamma:      cfg.Gamma,
		BeamSD:     cfg.BeamSD,
		Resolution: cfg.Grid.Resolution,
		HalfSize:   cfg.Grid.HalfSize,
	}, map[string]*field.Map{
		"I": maps.I, "Q": maps.Q, "U": maps.U, "fd": fd, "psi": psi,
	})
	if err != nil {
		return err
	}
	logger.Infow("run stored", "id", runID)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MAP\tMIN\tMAX\tUNIT")
	for _, nm := range []struct {
		name string
		m    *field.Map
	}{{"I", maps.I}, {"Q", maps.Q}, {"U", maps.U}, {"fd", fd}, {"psi", psi}} {
		lo, hi := mapRange(nm.m)
		fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%s\n", nm.name, lo, hi, nm.m.Unit().Symbol())
	}
	w.Flush()

	if showMaps {
		fmt.Println(viz.Titled("Stokes I", viz.Heatmap(maps.I)))
		fmt.Println(viz.Titled("Faraday depth", viz.Heatmap(fd)))
	}
	if profileRow >= 0 {
		plot, err := viz.RowProfile(maps.I, profileRow, 12)
		if err != nil {
			return err
		}
		fmt.Println(plot)
	}
	return nil
}

func runFaradayDepth(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	in, err := buildInputs(cfg)
	if err != nil {
		return err
	}

	fd, err := observables.FaradayDepth(in.grid.Depth(), in.b.Z, in.ne, cfg.BeamSD)
	if err != nil {
		return err
	}

	lo, hi := mapRange(fd)
	logger.Infow("faraday depth computed", "min", lo, "max", hi, "unit", fd.Unit().Symbol())
	if showMaps {
		fmt.Println(viz.Titled("Faraday depth", viz.Heatmap(fd)))
	}
	return nil
}

func runRotationMeasure(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)

	meta1, maps1, err := store.Load(args[0])
	if err != nil {
		return err
	}
	meta2, maps2, err := store.Load(args[1])
	if err != nil {
		return err
	}

	psi1, err := observables.Psi(maps1["Q"], maps1["U"])
	if err != nil {
		return err
	}
	psi2, err := observables.Psi(maps2["Q"], maps2["U"])
	if err != nil {
		return err
	}

	rm, err := observables.RM(psi1, psi2,
		units.Q(meta1.Wavelength, units.Metre),
		units.Q(meta2.Wavelength, units.Metre))
	if err != nil {
		return err
	}

	lo, hi := mapRange(rm)
	logger.Infow("rotation measure estimated",
		"lambda1", meta1.Wavelength, "lambda2", meta2.Wavelength,
		"min", lo, "max", hi)
	if showMaps {
		fmt.Println(viz.Titled("Rotation measure", viz.Heatmap(rm)))
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIELD\tELECTRONS\tLAMBDA\tGAMMA\tBEAM\tRES")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\t%d\n",
			r.ID, r.Field, r.Electrons, r.Wavelength, r.Gamma, r.BeamSD, r.Resolution)
	}
	return w.Flush()
}

type exportData struct {
	Meta storage.RunMetadata  `json:"meta"`
	Maps map[string][]float64 `json:"maps"`
}

func exportRun(cmd *cobra.Command, args []string) error {
	meta, maps, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}

	data := exportData{Meta: meta, Maps: make(map[string][]float64, len(maps))}
	for name, m := range maps {
		data.Maps[name] = m.Values()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func mapRange(m *field.Map) (lo, hi float64) {
	lo, hi = m.Values()[0], m.Values()[0]
	for _, v := range m.Values() {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
