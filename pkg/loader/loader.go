package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/braunma/rackmap/internal/constants"
	"github.com/braunma/rackmap/pkg/models"
	"github.com/braunma/rackmap/pkg/utils"
)

// ErrUnsupportedFormat is returned for catalog files that are neither YAML nor TOML
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Format is a catalog document encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the document format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// DataLoader handles loading catalog documents
type DataLoader struct {
	basePath string
	logger   *utils.Logger
}

// NewDataLoader creates a new data loader
func NewDataLoader(basePath string, logger *utils.Logger) *DataLoader {
	return &DataLoader{
		basePath: basePath,
		logger:   logger,
	}
}

// resolve joins relative paths onto the base path
func (dl *DataLoader) resolve(path string) string {
	if filepath.IsAbs(path) || dl.basePath == "" {
		return path
	}
	return filepath.Join(dl.basePath, path)
}

// LoadCatalog loads a catalog from a single file or from a folder of partial documents.
// Folder documents are merged in lexical path order.
func (dl *DataLoader) LoadCatalog(path string) (*models.Catalog, error) {
	target := dl.resolve(path)

	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog %s: %w", target, err)
	}

	if !info.IsDir() {
		catalog, err := dl.loadFile(target)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", target, err)
		}
		dl.logCatalog(catalog, target)
		return catalog, nil
	}

	files, err := dl.findCatalogFiles(target)
	if err != nil {
		return nil, fmt.Errorf("failed to find catalog files in %s: %w", target, err)
	}

	catalog := &models.Catalog{}
	if len(files) == 0 {
		dl.logger.Warning("No catalog files found in %s", path)
		return catalog, nil
	}

	for _, file := range files {
		part, err := dl.loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		catalog.Merge(part)
	}
	dl.logCatalog(catalog, target)
	return catalog, nil
}

func (dl *DataLoader) logCatalog(c *models.Catalog, source string) {
	dl.logger.Debug("Loaded %d racks, %d devices and %d cables from %s",
		len(c.Racks), len(c.Devices()), len(c.Cables), source)
}

// loadFile decodes one catalog document
func (dl *DataLoader) loadFile(path string) (*models.Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Decode(content, format)
}

// Decode parses a catalog document in the given format
func Decode(content []byte, format Format) (*models.Catalog, error) {
	var catalog models.Catalog

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &catalog); err != nil {
			return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(content), &catalog); err != nil {
			return nil, fmt.Errorf("failed to unmarshal TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return &catalog, nil
}

// findCatalogFiles recursively finds all catalog documents in a directory
func (dl *DataLoader) findCatalogFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			ext := strings.ToLower(filepath.Ext(path))
			if slices.Contains(constants.CatalogExtensions, ext) {
				files = append(files, path)
			}
		}

		return nil
	})

	slices.Sort(files)
	return files, err
}
