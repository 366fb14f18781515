package loader

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braunma/rackmap/pkg/models"
	"github.com/braunma/rackmap/pkg/utils"
)

const yamlCatalog = `
racks:
  - id: 1
    name: Core
  - id: 2
    name: Edge
    size: compact
routers:
  - id: 1
    name: edge-router
    rack_id: 1
    order: 1
switches:
  - id: 1
    name: core-switch
    rack_id: 1
    priority: 2
ups:
  - id: 1
    name: ups-a
    rack_id: 2
cables:
  - id: 1
    label: uplink
    origin_kind: router
    origin_id: 1
    destination_kind: switch
    destination_id: 1
    color: "#ff0000"
`

const tomlCatalog = `
[[racks]]
id = 1
name = "Core"

[[racks]]
id = 2
name = "Edge"
size = "compact"

[[routers]]
id = 1
name = "edge-router"
rack_id = 1
order = 1

[[switches]]
id = 1
name = "core-switch"
rack_id = 1
priority = 2

[[ups]]
id = 1
name = "ups-a"
rack_id = 2

[[cables]]
id = 1
label = "uplink"
origin_kind = "router"
origin_id = 1
destination_kind = "switch"
destination_id = 1
color = "#ff0000"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDataLoaderInitialization(t *testing.T) {
	logger := utils.NewLoggerTo(io.Discard, true)
	loader := NewDataLoader("/test/path", logger)

	if loader == nil {
		t.Fatal("NewDataLoader() returned nil")
	}

	if loader.logger == nil {
		t.Error("DataLoader logger is nil")
	}
}

func TestYAMLAndTOMLAgree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "site.yaml", yamlCatalog)
	writeFile(t, dir, "site.toml", tomlCatalog)

	loader := NewDataLoader(dir, utils.Discard())
	fromYAML, err := loader.LoadCatalog("site.yaml")
	require.NoError(t, err)
	fromTOML, err := loader.LoadCatalog("site.toml")
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
	require.Len(t, fromYAML.Racks, 2)
	assert.True(t, fromYAML.Racks[1].IsCompact())
	require.Len(t, fromYAML.Routers, 1)
	require.NotNil(t, fromYAML.Routers[0].Order)
	assert.Equal(t, 1, *fromYAML.Routers[0].Order)
	assert.Nil(t, fromYAML.Routers[0].Priority)

	devices := fromYAML.Devices()
	require.Len(t, devices, 3)
	assert.Equal(t, models.KindUPS, devices[2].Kind)
}

func TestLoadCatalogMergesFolder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b/cables.yml", `
cables:
  - id: 7
    label: second
    origin_kind: server
    origin_id: 1
    destination_kind: server
    destination_id: 2
`)
	writeFile(t, dir, "a/racks.toml", `
[[racks]]
id = 1
name = "Only"

[[servers]]
id = 1
name = "one"
rack_id = 1

[[servers]]
id = 2
name = "two"
rack_id = 1
`)
	writeFile(t, dir, "README.md", "not a catalog")

	catalog, err := NewDataLoader("", utils.Discard()).LoadCatalog(dir)
	require.NoError(t, err)

	assert.Len(t, catalog.Racks, 1)
	assert.Len(t, catalog.Servers, 2)
	require.Len(t, catalog.Cables, 1)
	assert.Equal(t, "second", catalog.Cables[0].Label)
}

func TestLoadCatalogEmptyFolder(t *testing.T) {
	catalog, err := NewDataLoader("", utils.Discard()).LoadCatalog(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, catalog.Racks)
}

func TestLoadCatalogErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "catalog.json", "{}")
	writeFile(t, dir, "broken.yaml", "racks: [")

	loader := NewDataLoader(dir, utils.Discard())

	tests := []struct {
		name        string
		path        string
		unsupported bool
	}{
		{name: "missing file", path: "nope.yaml"},
		{name: "unsupported extension", path: "catalog.json", unsupported: true},
		{name: "broken yaml", path: "broken.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadCatalog(tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.unsupported, errors.Is(err, ErrUnsupportedFormat))
		})
	}
}

func TestValidate(t *testing.T) {
	valid, err := Decode([]byte(yamlCatalog), FormatYAML)
	require.NoError(t, err)
	assert.NoError(t, Validate(valid))

	missingLabel, err := Decode([]byte(`
cables:
  - id: 3
    origin_kind: server
    origin_id: 1
    destination_kind: switch
    destination_id: 1
`), FormatYAML)
	require.NoError(t, err)

	err = Validate(missingLabel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cables[0].Label")

	assert.Error(t, Validate(nil))
}

func TestCheckReferences(t *testing.T) {
	catalog, err := Decode([]byte(`
racks:
  - id: 1
    name: Core
servers:
  - id: 1
    name: good
    rack_id: 1
  - id: 2
    name: lost
    rack_id: 9
  - id: 3
    name: floating
    rack_id: null
cables:
  - id: 1
    label: fine
    origin_kind: server
    origin_id: 1
    destination_kind: server
    destination_id: 2
  - id: 2
    label: dangling
    origin_kind: server
    origin_id: 1
    destination_kind: switch
    destination_id: 5
  - id: 3
    label: odd
    origin_kind: toaster
    origin_id: 1
    destination_kind: server
    destination_id: 1
  - id: 4
    label: bolted
    origin_kind: rack
    origin_id: 1
    destination_kind: server
    destination_id: 1
`), FormatYAML)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"device server:2 (lost) references unknown rack 9",
		"device server:3 (floating) has no rack",
		`cable 2 (dangling) references unknown destination switch:5`,
		`cable 3 (odd) has unknown origin kind "toaster"`,
	}, CheckReferences(catalog))
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{path: "a.yaml", expected: FormatYAML},
		{path: "a.YML", expected: FormatYAML},
		{path: "a.toml", expected: FormatTOML},
		{path: "a.json", wantErr: true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("FormatFromPath(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}
