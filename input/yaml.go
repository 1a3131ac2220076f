package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/wick/operator"
	"gopkg.in/yaml.v3"
)

// docValidate checks YAML documents after decoding.
var docValidate = validator.New()

// yamlDoc is the on-disk YAML shape.
type yamlDoc struct {
	Indices   yamlIndices    `yaml:"indices"`
	Operators []yamlOperator `yaml:"operators" validate:"required,min=1,dive"`
	Tasks     [][]string     `yaml:"tasks" validate:"dive,min=1,dive,required"`
}

type yamlIndices struct {
	Holes     []string `yaml:"holes" validate:"dive,required,excludesall=+{}"`
	Particles []string `yaml:"particles" validate:"dive,required,excludesall=+{}"`
	Any       []string `yaml:"any" validate:"dive,required,excludesall=+{}"`
}

type yamlOperator struct {
	Name   string   `yaml:"name" validate:"required"`
	Factor *float64 `yaml:"factor"`
	Ops    []string `yaml:"ops" validate:"required,min=1,dive,required"`
}

// ParseYAML reads the YAML format and builds the table.
// A missing factor defaults to 1.
func ParseYAML(r io.Reader) (*Input, error) {
	var raw yamlDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := docValidate.Struct(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	doc := Document{
		Classes: operator.IndexClasses{
			Holes:     raw.Indices.Holes,
			Particles: raw.Indices.Particles,
			Any:       raw.Indices.Any,
		},
	}
	for _, op := range raw.Operators {
		factor := 1.0
		if op.Factor != nil {
			factor = *op.Factor
		}
		doc.Declarations = append(doc.Declarations, operator.Declaration{Name: op.Name, Factor: factor, Symbols: op.Ops})
	}
	for _, task := range raw.Tasks {
		doc.Tasks = append(doc.Tasks, operator.Task(task))
	}

	tbl, err := doc.Build()
	if err != nil {
		return nil, err
	}
	return &Input{Document: doc, Table: tbl}, nil
}

// ParseFile opens path and picks the reader by extension:
// .yaml/.yml use ParseYAML, everything else the native format.
func ParseFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return Parse(f)
	}
}
