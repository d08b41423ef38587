package element

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed elements.toml
var canonical []byte

// document is the on-disk shape of a dataset file.
type document struct {
	Elements []Element `koanf:"elements"`
}

// bytesProvider feeds an in-memory TOML document to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) { return b, nil }

func (b bytesProvider) Read() (map[string]any, error) {
	return nil, errors.New("bytes provider requires a parser")
}

// Default returns the canonical 118-element dataset embedded in the binary.
func Default() ([]Element, error) {
	return decode(bytesProvider(canonical))
}

// Load reads a dataset from a TOML file with the same schema as the
// embedded one.
func Load(path string) ([]Element, error) {
	elements, err := decode(file.Provider(path))
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return elements, nil
}

func decode(p koanf.Provider) ([]Element, error) {
	k := koanf.New(".")
	if err := k.Load(p, toml.Parser()); err != nil {
		return nil, err
	}
	var doc document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, err
	}
	return doc.Elements, nil
}

// Find looks an element up by atomic number, symbol or name.
// Symbol and name comparisons are case-insensitive.
func Find(elements []Element, query string) (Element, bool) {
	query = strings.TrimSpace(query)
	if n, err := strconv.Atoi(query); err == nil {
		for _, e := range elements {
			if e.Number == n {
				return e, true
			}
		}
		return Element{}, false
	}
	for _, e := range elements {
		if strings.EqualFold(e.Symbol, query) || strings.EqualFold(e.Name, query) {
			return e, true
		}
	}
	return Element{}, false
}
