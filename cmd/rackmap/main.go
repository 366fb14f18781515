package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/braunma/rackmap/pkg/config"
	"github.com/braunma/rackmap/pkg/engine"
	"github.com/braunma/rackmap/pkg/export"
	"github.com/braunma/rackmap/pkg/loader"
	"github.com/braunma/rackmap/pkg/models"
	"github.com/braunma/rackmap/pkg/ports"
	"github.com/braunma/rackmap/pkg/utils"
)

var (
	verbose    bool
	configFile string
	dataDir    string

	outputFormat string
	outputPath   string
	deviceRef    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "rackmap",
		Short:        "Rack topology layout engine",
		Long:         `Deterministic rack, device and cable layout for data-center schematics`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Layout configuration file (default: ./rackmap.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "Base directory for relative catalog paths")

	layoutCmd := &cobra.Command{
		Use:   "layout <catalog>...",
		Short: "Compute the layout of one or more catalogs",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLayout,
	}
	layoutCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json, yaml or svg")
	layoutCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output file (a directory when several catalogs are given)")
	layoutCmd.Flags().StringVar(&deviceRef, "device", "", "Only keep cables of this device, e.g. server:3")

	rootCmd.AddCommand(layoutCmd, newValidateCmd(), newLanesCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newLogger writes everything to stderr so stdout stays free for layout output
func newLogger() *utils.Logger {
	return utils.NewLoggerTo(os.Stderr, verbose)
}

// setup loads the configuration and prepares a catalog loader
func setup(logger *utils.Logger) (config.Config, *loader.DataLoader, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger.Debug("Layout config: %+v", cfg)
	return cfg, loader.NewDataLoader(dataDir, logger), nil
}

func runLayout(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	format, err := export.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	var selected *models.Ref
	if deviceRef != "" {
		ref, err := models.ParseRef(deviceRef)
		if err != nil {
			return err
		}
		selected = &ref
	}

	cfg, dataLoader, err := setup(logger)
	if err != nil {
		return err
	}

	// =========================================================================
	// PHASE 1: LOAD
	// =========================================================================
	logger.Info("═══════════════════════════════════════════════════════")
	logger.Info("Phase 1: Load catalogs")
	logger.Info("═══════════════════════════════════════════════════════")

	catalogs := make([]*models.Catalog, 0, len(args))
	for _, path := range args {
		catalog, err := dataLoader.LoadCatalog(path)
		if err != nil {
			logger.Error("Failed to load catalog", err)
			return err
		}
		if err := loader.Validate(catalog); err != nil {
			logger.Warning("%s: %v", path, err)
		}
		for _, issue := range loader.CheckReferences(catalog) {
			logger.Warning("%s: %s", path, issue)
		}
		catalogs = append(catalogs, catalog)
	}

	// =========================================================================
	// PHASE 2: LAYOUT
	// =========================================================================
	logger.Info("═══════════════════════════════════════════════════════")
	logger.Info("Phase 2: Layout")
	logger.Info("═══════════════════════════════════════════════════════")

	results, err := engine.LayoutAll(cmd.Context(), catalogs, engine.Options{Config: cfg, Logger: logger})
	if err != nil {
		logger.Error("Layout interrupted", err)
		return err
	}

	for i, result := range results {
		for _, o := range result.Overlaps {
			logger.Warning("%s: power backup %s overlaps %s in rack %d", args[i], o.PowerBackup, o.Device, o.RackID)
		}
		logger.Info("%s: %d racks, %d devices, %d cables routed, %d skipped",
			args[i], len(result.Racks), len(result.Devices), len(result.Cables), len(result.Skipped))
		if selected != nil {
			results[i] = result.Select(*selected)
			logger.Info("%s: %d cables and %d ports attached to %s", args[i],
				len(results[i].Cables), len(ports.ForDevice(results[i].Ports, *selected)), *selected)
		}
	}

	// =========================================================================
	// PHASE 3: EXPORT
	// =========================================================================
	if err := writeResults(args, results, format, logger); err != nil {
		logger.Error("Failed to write output", err)
		return err
	}

	logger.Success("LAYOUT COMPLETE: %d catalog(s)", len(results))
	return nil
}

// writeResults writes to stdout, to a single file, or to one file per catalog in a directory
func writeResults(args []string, results []*engine.Result, format export.Format, logger *utils.Logger) error {
	if outputPath == "" {
		for _, result := range results {
			if err := export.Write(os.Stdout, result, format); err != nil {
				return err
			}
		}
		return nil
	}

	if len(results) == 1 {
		return writeFile(outputPath, results[0], format, logger)
	}

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for i, result := range results {
		name := utils.Slugify(strings.TrimSuffix(filepath.Base(args[i]), filepath.Ext(args[i])))
		if name == "" {
			name = fmt.Sprintf("catalog-%d", i+1)
		}
		name += "." + string(format)
		if err := writeFile(filepath.Join(outputPath, name), result, format, logger); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, result *engine.Result, format export.Format, logger *utils.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := export.Write(f, result, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("Wrote %s", path)
	return nil
}

// loadOne loads, checks and lays out a single catalog
func loadOne(ctx context.Context, path string, logger *utils.Logger) (*models.Catalog, *engine.Result, error) {
	cfg, dataLoader, err := setup(logger)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := dataLoader.LoadCatalog(path)
	if err != nil {
		return nil, nil, err
	}
	results, err := engine.LayoutAll(ctx, []*models.Catalog{catalog}, engine.Options{Config: cfg, Logger: logger})
	if err != nil {
		return nil, nil, err
	}
	return catalog, results[0], nil
}
