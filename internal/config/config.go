// =============================================================================
// Picking List Generator - Configuration
// =============================================================================
//
// Configuration covers the parts of a run that vary per installation: where
// the two master catalogs live (file, sheet, header names), where results are
// written, and how logging behaves.
//
// The matrix column layout, the part-number patterns and the legacy-sheet
// schema are fixed document contracts and are deliberately NOT configurable;
// they live as constants next to the code that uses them.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "config.yaml"

// =============================================================================
// STRUCTURES
// =============================================================================

// Config is the root configuration.
type Config struct {
	// Master locates the two master catalogs.
	Master MasterConfig `yaml:"master"`

	// OutputDir is where result workbooks are written. Created on demand.
	OutputDir string `yaml:"output_dir"`

	// OutputSuffix is inserted into the result file name:
	// {inputBase}_{suffix}_{timestamp}.xlsx
	OutputSuffix string `yaml:"output_suffix"`

	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`
}

// MasterConfig locates both master catalogs.
type MasterConfig struct {
	CM     CMCatalogConfig     `yaml:"cm"`
	AParts APartsCatalogConfig `yaml:"a_parts"`
}

// CMCatalogConfig locates the CM master catalog.
type CMCatalogConfig struct {
	File    string        `yaml:"file"`
	Sheet   string        `yaml:"sheet"`
	Columns CMColumnNames `yaml:"columns"`
}

// CMColumnNames are the header names of the CM catalog sheet.
type CMColumnNames struct {
	PartNumber      string `yaml:"part_number"`
	BoxCode         string `yaml:"box_code"`
	BoxName         string `yaml:"box_name"`
	StorageLocation string `yaml:"storage_location"`
}

// APartsCatalogConfig locates the A-parts master catalog.
type APartsCatalogConfig struct {
	File    string            `yaml:"file"`
	Sheet   string            `yaml:"sheet"`
	Columns APartsColumnNames `yaml:"columns"`
}

// APartsColumnNames are the header names of the A-parts catalog sheet.
type APartsColumnNames struct {
	PartNumber      string `yaml:"part_number"`
	PartName        string `yaml:"part_name"`
	StorageLocation string `yaml:"storage_location"`
	Rack            string `yaml:"rack"`
	QuantityPerBox  string `yaml:"quantity_per_box"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file, applies defaults and validates the
// result. When path is the default location and no file exists there, the
// built-in defaults are used as-is; an explicitly given path must exist.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultPath:
		// Run on defaults.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyDefaults fills every unset option.
func applyDefaults(cfg *Config) {
	if cfg.Master.CM.File == "" {
		cfg.Master.CM.File = "data/master/cm_master.xlsx"
	}
	if cfg.Master.CM.Sheet == "" {
		cfg.Master.CM.Sheet = "CM Master"
	}
	cmCols := &cfg.Master.CM.Columns
	if cmCols.PartNumber == "" {
		cmCols.PartNumber = "Part Number"
	}
	if cmCols.BoxCode == "" {
		cmCols.BoxCode = "Box Code"
	}
	if cmCols.BoxName == "" {
		cmCols.BoxName = "Box Name"
	}
	if cmCols.StorageLocation == "" {
		cmCols.StorageLocation = "Storage Location"
	}

	if cfg.Master.AParts.File == "" {
		cfg.Master.AParts.File = "data/master/a_parts_master.xlsx"
	}
	if cfg.Master.AParts.Sheet == "" {
		cfg.Master.AParts.Sheet = "A-Parts Master"
	}
	aCols := &cfg.Master.AParts.Columns
	if aCols.PartNumber == "" {
		aCols.PartNumber = "Part Number"
	}
	if aCols.PartName == "" {
		aCols.PartName = "Part Name"
	}
	if aCols.StorageLocation == "" {
		aCols.StorageLocation = "Storage Location"
	}
	if aCols.Rack == "" {
		aCols.Rack = "Rack"
	}
	if aCols.QuantityPerBox == "" {
		aCols.QuantityPerBox = "Qty Per Box"
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "data/output"
	}
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = "result"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

// validate rejects configurations the pipeline cannot run with. Master
// catalog files are not required to exist yet; their absence surfaces as a
// master-catalog error at run time.
func validate(cfg *Config) error {
	if cfg.Logging.Format != "console" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", cfg.Logging.Format)
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", cfg.Logging.Level)
	}
	return nil
}
