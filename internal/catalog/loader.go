package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/logger"
	"github.com/osse101/MineRewards_Go/internal/validation"
)

type catalogFile struct {
	Version int                   `json:"version"`
	Entries []domain.CatalogEntry `json:"entries"`
}

type distributionFile struct {
	Tiers []domain.RarityTierConfig `yaml:"tiers"`
}

// Loader reads catalog and distribution files, validating them against their schemas first.
type Loader struct {
	validator              validation.SchemaValidator
	catalogSchemaPath      string
	distributionSchemaPath string
}

// NewLoader creates a loader using the default schema paths.
func NewLoader(v validation.SchemaValidator) *Loader {
	return &Loader{
		validator:              v,
		catalogSchemaPath:      SchemaPathCatalog,
		distributionSchemaPath: SchemaPathDistribution,
	}
}

// LoadCatalog reads, validates and builds the reward catalog at path.
func (l *Loader) LoadCatalog(ctx context.Context, path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextReadFile, path, err)
	}
	if err := l.validator.ValidateBytes(data, l.catalogSchemaPath); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrConfigurationDefect, ErrContextSchema, path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrConfigurationDefect, ErrContextDecode, path, err)
	}

	c, err := New(file.Entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, LogFieldPath, path, LogFieldEntries, c.Size())
	return c, nil
}

// LoadDistribution reads, validates and builds the power distribution at path.
func (l *Loader) LoadDistribution(ctx context.Context, path string) (*Distribution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextReadFile, path, err)
	}
	if err := l.validator.ValidateYAML(data, l.distributionSchemaPath); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrConfigurationDefect, ErrContextSchema, path, err)
	}

	var file distributionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrConfigurationDefect, ErrContextDecode, path, err)
	}

	d, err := NewDistribution(file.Tiers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.FromContext(ctx).Info(LogMsgDistributionLoaded, LogFieldPath, path, LogFieldTiers, len(file.Tiers))
	return d, nil
}
