package report_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/wick/engine"
	"github.com/katalvlaran/wick/input"
	"github.com/katalvlaran/wick/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singlesSrc = `
holes i j
particles a b
any p q
operator bra 1.0 { i+ a }
operator f   1.0 { p+ q }
operator ket 1.0 { b+ j }
? bra f ket
? f f
`

// evaluate parses src and evaluates every task.
func evaluate(t *testing.T) []*engine.Result {
	t.Helper()
	in, err := input.Parse(bytes.NewBufferString(singlesSrc))
	require.NoError(t, err)
	res, err := engine.New().EvaluateAll(context.Background(), in.Table, in.Tasks)
	require.NoError(t, err)
	return res
}

// TestWriter_Full checks the main sections of the verbose listing.
func TestWriter_Full(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Write(evaluate(t)))
	out := buf.String()

	assert.Contains(t, out, "Begin task:  bra f ket")
	assert.Contains(t, out, "Matrix element expression: <0|{i+ a }1 f {p+ q }{b+ j }|0>")
	assert.Contains(t, out, "Elementary operators string:  [i+ a p+ q b+ j]")
	assert.Contains(t, out, "( 0)  i+ a  p+ q  b+ j  \n      1  2  3  1  2  3  \n")
	assert.Contains(t, out, "Total number of possible contractions: 2")
	assert.Contains(t, out, "- 1 f [ p q ] d_iq d_ab d_jp => - 1 f [ j i ] d_ab")
	assert.Contains(t, out, "(1) + 1 f [ a b ] d_ij")
	assert.Contains(t, out, "No fully contracted terms possible, matrix element will be zero!")
}

// TestWriter_Quiet prints only expressions and merged terms.
func TestWriter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.New(&buf, report.WithQuiet()).Write(evaluate(t)))

	want := "<0|{i+ a }1 f {p+ q }{b+ j }|0>\n" +
		"(0) - 1 f [ j i ] d_ab\n" +
		"(1) + 1 f [ a b ] d_ij\n" +
		"<0|1 f {p+ q }1 f {p+ q }|0>\n" +
		"  0\n"
	assert.Equal(t, want, buf.String())
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWriter_Error keeps the first write error.
func TestWriter_Error(t *testing.T) {
	err := report.New(failWriter{}).Write(evaluate(t))
	assert.EqualError(t, err, "disk full")
}
