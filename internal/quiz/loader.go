package quiz

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML layout of a catalog.
type catalogFile struct {
	Name   string  `yaml:"name"`
	Topics []Topic `yaml:"topics"`
}

// Parse builds a catalog from YAML data. fallbackName is used when the
// document does not name itself.
func Parse(data []byte, fallbackName string) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("quiz: cannot parse catalog %s: %w", fallbackName, err)
	}
	name := f.Name
	if name == "" {
		name = fallbackName
	}
	return NewCatalog(name, f.Topics)
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quiz: cannot read catalog %s: %w", path, err)
	}
	return Parse(data, path)
}

// Resolve opens a registered catalog by name, or loads nameOrPath from disk
// when no catalog with that name is registered.
func Resolve(nameOrPath string) (*Catalog, error) {
	if Exists(nameOrPath) {
		return Open(nameOrPath)
	}
	return LoadFile(nameOrPath)
}
