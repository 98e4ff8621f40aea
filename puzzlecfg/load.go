package puzzlecfg

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gridforge/tilepuzzle/board"
	"github.com/gridforge/tilepuzzle/generator"
)

// yamlDoc mirrors the recognized configuration-file keys. Every field's
// zero value means "not set" — every
// valid value for these fields is >= 1 (or, for grid_type, a documented
// enum starting at 0, handled separately below), so a plain zero-value
// struct can double as "nothing was set" without ambiguity, unlike
// generator.Config's Seed.
type yamlDoc struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	GridType *int `yaml:"grid_type"`

	MinShapeSize int `yaml:"min_shape_size"`
	MaxShapeSize int `yaml:"max_shape_size"`

	MinBundleArea int `yaml:"min_bundle_area"`
	MaxBundleArea int `yaml:"max_bundle_area"`
}

// Documented defaults applied to any key a configuration file omits.
const (
	defaultWidth, defaultHeight                = 10, 10
	defaultMinShapeSize, defaultMaxShapeSize   = 3, 5
	defaultMinBundleArea, defaultMaxBundleArea = 15, 25
)

// Load reads a YAML generator configuration from path, filling in the
// documented defaults for any key the file omits.
func Load(path string) (generator.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return generator.Config{}, errors.Wrapf(err, "puzzlecfg: reading %s", path)
	}

	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return generator.Config{}, errors.Wrapf(err, "puzzlecfg: parsing %s", path)
	}

	cfg := generator.Config{
		Kind:          board.Square,
		Width:         orDefault(doc.Width, defaultWidth),
		Height:        orDefault(doc.Height, defaultHeight),
		MinShapeSize:  orDefault(doc.MinShapeSize, defaultMinShapeSize),
		MaxShapeSize:  orDefault(doc.MaxShapeSize, defaultMaxShapeSize),
		MinBundleArea: orDefault(doc.MinBundleArea, defaultMinBundleArea),
		MaxBundleArea: orDefault(doc.MaxBundleArea, defaultMaxBundleArea),
	}
	if doc.GridType != nil {
		cfg.Kind = board.Kind(*doc.GridType)
	}

	if err := validateGridType(cfg.Kind); err != nil {
		return generator.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return generator.Config{}, errors.Wrapf(err, "puzzlecfg: %s", path)
	}
	if cfg.Width < 2 || cfg.Height < 2 || cfg.MinBundleArea < cfg.MinShapeSize {
		return generator.Config{}, errors.Wrapf(generator.ErrBadConfig, "puzzlecfg: %s", path)
	}
	return cfg, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func validateGridType(k board.Kind) error {
	switch k {
	case board.Square, board.Hexagon, board.Triangle:
		return nil
	default:
		return errors.Errorf("puzzlecfg: unknown grid_type %d", int(k))
	}
}
