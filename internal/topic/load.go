package topic

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDataset is wrapped by every error returned from Validate.
var ErrInvalidDataset = errors.New("invalid dataset")

//go:embed starter.yaml
var starterData []byte

// Starter returns the bundled starter dataset written by `onissues init`.
func Starter() []byte {
	out := make([]byte, len(starterData))
	copy(out, starterData)
	return out
}

// Parse decodes a YAML (or JSON) dataset document.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return &ds, nil
}

// Load reads and parses the dataset at path. It does not validate it.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// LoadStore loads and validates the dataset at path and wraps it in a Store.
func LoadStore(path string) (*Store, error) {
	ds, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(ds); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewStore(*ds), nil
}

// Save writes ds to path as YAML.
func Save(ds *Dataset, path string) error {
	data, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("marshalling dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dataset to %s: %w", path, err)
	}
	return nil
}

// Validate checks the dataset at the load boundary: every topic needs a name,
// identifiers must be unique, and keyword lists may not contain blank entries.
// All problems are reported together.
func Validate(ds *Dataset) error {
	if ds == nil {
		return fmt.Errorf("%w: no document", ErrInvalidDataset)
	}
	var problems []error
	if len(ds.Topics) == 0 {
		problems = append(problems, errors.New("no topics defined"))
	}

	seen := make(map[string]string, len(ds.Topics))
	for i, r := range ds.Topics {
		if strings.TrimSpace(r.Name) == "" {
			problems = append(problems, fmt.Errorf("topics[%d]: name is required", i))
			continue
		}
		id := r.ID()
		if prev, ok := seen[id]; ok {
			problems = append(problems, fmt.Errorf("topics[%d] %q: identifier %q already used by %q", i, r.Name, id, prev))
		} else {
			seen[id] = r.Name
		}
		for _, side := range Sides {
			op := r.Opinions(side)
			if blankEntry(op.Keywords) {
				problems = append(problems, fmt.Errorf("topics[%d] %q: %s keywords contain a blank entry", i, r.Name, side))
			}
			if blankEntry(op.ExcludedKeywords) {
				problems = append(problems, fmt.Errorf("topics[%d] %q: %s excluded_keywords contain a blank entry", i, r.Name, side))
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(problems...))
}

func blankEntry(list []string) bool {
	for _, s := range list {
		if strings.TrimSpace(s) == "" {
			return true
		}
	}
	return false
}
