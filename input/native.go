package input

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/wick/operator"
)

// Parse reads the native line format and builds the table.
func Parse(r io.Reader) (*Input, error) {
	doc, err := ParseDocument(r)
	if err != nil {
		return nil, err
	}
	tbl, err := doc.Build()
	if err != nil {
		return nil, err
	}
	return &Input{Document: *doc, Table: tbl}, nil
}

// ParseDocument reads the native line format without building the table.
func ParseDocument(r io.Reader) (*Document, error) {
	doc := &Document{}
	known := make(map[string]bool)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "?") {
			task := operator.Task(strings.Fields(strings.TrimPrefix(line, "?")))
			if len(task) == 0 {
				return nil, fmt.Errorf("%w %d: empty task", ErrMalformedLine, lineNo)
			}
			doc.Tasks = append(doc.Tasks, task)
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "holes":
			doc.Classes.Holes = appendNew(doc.Classes.Holes, fields[1:], known)
		case "particles":
			doc.Classes.Particles = appendNew(doc.Classes.Particles, fields[1:], known)
		case "any":
			doc.Classes.Any = appendNew(doc.Classes.Any, fields[1:], known)
		case "operator":
			decl, err := parseOperator(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			for _, sym := range decl.Symbols {
				idx, _, err := operator.ParseSymbol(sym)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				if !known[idx] {
					return nil, fmt.Errorf("line %d: %w %q", lineNo, operator.ErrUnknownIndex, idx)
				}
			}
			doc.Declarations = append(doc.Declarations, decl)
		default:
			return nil, fmt.Errorf("%w %d: %q", ErrUnknownDirective, lineNo, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	return doc, nil
}

// parseOperator handles "operator <name> <factor> { sym ... }".
func parseOperator(line string) (operator.Declaration, error) {
	open := strings.Index(line, "{")
	closing := strings.LastIndex(line, "}")
	if open < 0 || closing < open || strings.TrimSpace(line[closing+1:]) != "" {
		return operator.Declaration{}, fmt.Errorf("%w: operator needs { ... }: %q", ErrMalformedLine, line)
	}

	head := strings.Fields(line[:open])
	if len(head) != 3 {
		return operator.Declaration{}, fmt.Errorf("%w: want 'operator <name> <factor> {...}': %q", ErrMalformedLine, line)
	}
	factor, err := strconv.ParseFloat(head[2], 64)
	if err != nil {
		return operator.Declaration{}, fmt.Errorf("%w: factor %q: %v", ErrMalformedLine, head[2], err)
	}
	syms := strings.Fields(line[open+1 : closing])
	if len(syms) == 0 {
		return operator.Declaration{}, fmt.Errorf("%w: operator %q has no elementary operators", ErrMalformedLine, head[1])
	}

	return operator.Declaration{Name: head[1], Factor: factor, Symbols: syms}, nil
}

// appendNew adds names not yet present in dst and marks them known.
// A name listed under two classes is kept in both; operator.Build rejects it.
func appendNew(dst, names []string, known map[string]bool) []string {
	for _, nm := range names {
		if !slices.Contains(dst, nm) {
			dst = append(dst, nm)
		}
		known[nm] = true
	}
	return dst
}
