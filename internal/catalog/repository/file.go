package repository

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Materials []Material `yaml:"materials"`
}

// LoadFile builds a repository from a YAML catalog file of the form
//
//	materials:
//	  - id: MAT001
//	    name: Clipsal Double GPO 10A
//	    sku: CL-GPO-10A
//	    base_cost: 12.50
//	    category: Power Points
//	    keywords: [gpo, outlet]
func LoadFile(path string) (*StaticRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML catalog. Unknown fields are rejected.
func Decode(r io.Reader) (*StaticRepository, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogFile
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Materials) == 0 {
		return nil, fmt.Errorf("decode catalog: no materials")
	}
	return New(doc.Materials)
}
