// internal/defs/loader.go
package defs

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var builtin embed.FS

const catalogFile = "data/units.yaml"

// ParseStage decodes a stage from YAML, applies defaults and validates it.
func ParseStage(data []byte) (*StageDefinition, error) {
	var stage StageDefinition
	if err := yaml.Unmarshal(data, &stage); err != nil {
		return nil, fmt.Errorf("failed to parse stage YAML: %w", err)
	}
	applyStageDefaults(&stage)
	if err := validateStage(&stage); err != nil {
		return nil, fmt.Errorf("invalid stage %q: %w", stage.ID, err)
	}
	stage.expandWaves()
	return &stage, nil
}

// LoadStage reads a stage definition file.
func LoadStage(filepath string) (*StageDefinition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage file %s: %w", filepath, err)
	}
	stage, err := ParseStage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	log.Debug("stage loaded", "id", stage.ID, "waves", len(stage.Waves), "spawns", stage.SpawnCount())
	return stage, nil
}

// ParseCatalog decodes a unit catalog from YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse unit catalog YAML: %w", err)
	}
	if len(catalog.Units) == 0 {
		return nil, fmt.Errorf("unit catalog cannot be empty")
	}
	seen := make(map[string]bool, len(catalog.Units))
	for i := range catalog.Units {
		def := &catalog.Units[i]
		applyUnitDefaults(def)
		if err := validateUnit(def); err != nil {
			return nil, err
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("duplicate unit id %s", def.ID)
		}
		seen[def.ID] = true
	}
	return &catalog, nil
}

// LoadCatalog reads the unit catalog file.
func LoadCatalog(filepath string) (*Catalog, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit catalog %s: %w", filepath, err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	log.Debug("unit catalog loaded", "units", len(catalog.Units))
	return catalog, nil
}

// DefaultCatalog returns the built-in unit catalog.
func DefaultCatalog() (*Catalog, error) {
	data, err := builtin.ReadFile(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in catalog: %w", err)
	}
	return ParseCatalog(data)
}

// BuiltinStage returns one of the embedded stages by ID.
func BuiltinStage(id string) (*StageDefinition, error) {
	data, err := builtin.ReadFile(path.Join("data", "stage_"+id+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown stage %q", id)
	}
	return ParseStage(data)
}

// BuiltinStageIDs lists the embedded stage IDs in order.
func BuiltinStageIDs() []string {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		return nil
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "stage_") && strings.HasSuffix(name, ".yaml") {
			ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, "stage_"), ".yaml"))
		}
	}
	sort.Strings(ids)
	return ids
}

// ResolveStage treats ref as a file path when it names an existing file and
// as a built-in stage ID otherwise.
func ResolveStage(ref string) (*StageDefinition, error) {
	if _, err := os.Stat(ref); err == nil {
		return LoadStage(ref)
	}
	return BuiltinStage(ref)
}
