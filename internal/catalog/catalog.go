// Package catalog loads the winery table. The default catalog is compiled into
// the binary; operators can point the service at their own file instead.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/S4ng4/winery-resolver/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed wineries.yaml
var defaultCatalog []byte

// ErrEmptyCatalog is returned when a catalog document holds no entries.
var ErrEmptyCatalog = errors.New("catalog has no entries")

// record is one catalog document entry: the canonical key plus the winery fields.
type record struct {
	Key           string `yaml:"key"`
	domain.Winery `yaml:",inline"`
}

// Default returns the table bundled with the binary.
func Default() (*domain.Table, error) {
	table, err := Decode(bytes.NewReader(defaultCatalog))
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return table, nil
}

// LoadFile decodes a catalog from a YAML file on disk.
func LoadFile(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	table, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return table, nil
}

// Load returns the catalog at path, or the embedded catalog when path is empty.
func Load(path string) (*domain.Table, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Decode reads a YAML sequence of winery records and builds the table in
// document order. Unknown fields, duplicate keys and empty documents are errors.
func Decode(r io.Reader) (*domain.Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var records []record
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	entries := make([]domain.TableEntry, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("entry %d (%q): name is required", i, rec.Key)
		}
		entries[i] = domain.TableEntry{Key: rec.Key, Winery: rec.Winery}
	}
	return domain.NewTable(entries)
}
