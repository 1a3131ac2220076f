package operator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for operator declarations and lookups.
var (
	// ErrEmptyName indicates a declaration without an operator name.
	ErrEmptyName = errors.New("operator: name is empty")

	// ErrDuplicateOperator indicates the same operator name was declared twice.
	ErrDuplicateOperator = errors.New("operator: duplicate operator")

	// ErrUnknownIndex indicates an index letter that belongs to no class.
	ErrUnknownIndex = errors.New("operator: unknown type (hole/particle/any) for index")

	// ErrAmbiguousIndex indicates an index letter listed in two classes.
	ErrAmbiguousIndex = errors.New("operator: index listed in more than one class")

	// ErrUnknownOperator indicates a task refers to an undeclared operator.
	ErrUnknownOperator = errors.New("operator: unknown operator")

	// ErrBadSymbol indicates a malformed elementary-operator symbol.
	ErrBadSymbol = errors.New("operator: malformed elementary operator symbol")
)

// Reserved operator names for the reference-determinant excitations.
const (
	Bra = "bra"
	Ket = "ket"
)

// IsReference reports whether name denotes the bra or ket excitation operator.
func IsReference(name string) bool {
	return name == Bra || name == Ket
}

// Kind distinguishes creation from annihilation operators.
type Kind int

const (
	// Creation operator, written with a trailing '+' (p+).
	Creation Kind = iota

	// Annihilation operator, written as the bare index (q).
	Annihilation
)

// String returns "+" for Creation and "-" for Annihilation.
func (k Kind) String() string {
	if k == Creation {
		return "+"
	}
	return "-"
}

// ParseKind is the inverse of Kind.String; "c"/"a" are accepted too.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "+", "c", "creation":
		return Creation, nil
	case "-", "a", "annihilation":
		return Annihilation, nil
	}
	return 0, fmt.Errorf("%w: kind %q", ErrBadSymbol, s)
}

// Domain is the orbital space an index ranges over.
type Domain int

const (
	// Hole indices run over occupied orbitals.
	Hole Domain = iota

	// Particle indices run over virtual orbitals.
	Particle

	// Any indices run over the full orbital space.
	Any
)

// String returns the one-letter tag: "h", "p" or "a".
func (d Domain) String() string {
	switch d {
	case Hole:
		return "h"
	case Particle:
		return "p"
	default:
		return "a"
	}
}

// ParseDomain maps the tags "h", "p", "a" (or the words hole, particle, any).
func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(s) {
	case "h", "hole", "holes":
		return Hole, nil
	case "p", "particle", "particles":
		return Particle, nil
	case "a", "any":
		return Any, nil
	}
	return 0, fmt.Errorf("%w: domain %q", ErrUnknownIndex, s)
}

// Elementary is a single creation or annihilation operator.
//
// Owner is the name of the normal-ordered Operator it was declared in;
// two elementaries with the same Owner are never contracted together.
type Elementary struct {
	Index  string
	Kind   Kind
	Domain Domain
	Owner  string
}

// String renders p+ for creation and q for annihilation.
func (e Elementary) String() string {
	if e.Kind == Creation {
		return e.Index + "+"
	}
	return e.Index
}

// Operator is a normal-ordered product of elementary operators.
type Operator struct {
	// Name identifies the operator inside a Table.
	Name string

	// Factor is the numeric prefactor in front of the sum.
	Factor float64

	// Elems are the elementary operators in declared order.
	Elems []Elementary
}

// IsReference reports whether the operator is the bra or ket excitation.
func (o *Operator) IsReference() bool { return IsReference(o.Name) }

// String renders "1 f {p+ q }" or "{i+ a }" for bra/ket.
func (o *Operator) String() string {
	var sb strings.Builder
	if !o.IsReference() {
		sb.WriteString(FormatFactor(o.Factor))
		sb.WriteByte(' ')
		sb.WriteString(o.Name)
		sb.WriteByte(' ')
	}
	sb.WriteByte('{')
	for _, e := range o.Elems {
		sb.WriteString(e.String())
		sb.WriteByte(' ')
	}
	sb.WriteByte('}')
	return sb.String()
}

// FormatFactor prints a prefactor with the shortest exact representation.
func FormatFactor(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Task is an ordered list of operator names: <bra| op1 … opk |ket>.
type Task []string

// String joins the operator names with spaces.
func (t Task) String() string { return strings.Join(t, " ") }

// Declaration is a validated operator declaration handed over by a reader.
//
// Symbols use the input notation: "p+" for creation, "q" for annihilation.
type Declaration struct {
	Name    string
	Factor  float64
	Symbols []string
}

// IndexClasses lists which index letters denote holes, particles or any orbital.
type IndexClasses struct {
	Holes     []string
	Particles []string
	Any       []string
}
