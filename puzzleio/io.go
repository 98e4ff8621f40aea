package puzzleio

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/gridforge/tilepuzzle/shapekit"
)

// Load reads a Puzzle file from path, tolerating the legacy "neighbors"
// key and missing bundle_id/figure_id tags.
func Load(path string) (*shapekit.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "puzzleio: reading %s", path)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "puzzleio: parsing %s", path)
	}

	p, err := fromDocument(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "puzzleio: decoding %s", path)
	}
	return p, nil
}

// Save validates p, then writes it to path as a Puzzle file document.
func Save(path string, p *shapekit.Puzzle) error {
	if err := p.Validate(); err != nil {
		return errors.Wrap(err, "puzzleio: refusing to save an inconsistent puzzle")
	}

	data, err := json.MarshalIndent(toDocument(p), "", "  ")
	if err != nil {
		return errors.Wrap(err, "puzzleio: encoding puzzle")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "puzzleio: writing %s", path)
	}
	return nil
}
