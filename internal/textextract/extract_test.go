package textextract

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

func TestExtractInvokesPdftotextWithLayout(t *testing.T) {
	stub := &stubRunner{stdout: []byte("page one\fpage two")}
	e := NewExtractor(Config{}, slog.Default()).WithRunner(stub)

	res, err := e.Extract(context.Background(), "/reports/482913.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdftotext", stub.gotName)
	assert.Equal(t, []string{"-layout", "-enc", "UTF-8", "-eol", "unix", "/reports/482913.pdf", "-"}, stub.gotArgs)
	assert.Equal(t, "page one\fpage two", res.Text)
	assert.Equal(t, 2, res.Pages)
}

func TestExtractBinaryOverride(t *testing.T) {
	stub := &stubRunner{stdout: []byte("x")}
	e := NewExtractor(Config{Pdftotext: "/opt/poppler/bin/pdftotext"}, nil).WithRunner(stub)

	_, err := e.Extract(context.Background(), "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/opt/poppler/bin/pdftotext", stub.gotName)
}

func TestExtractToolFailure(t *testing.T) {
	stub := &stubRunner{stderr: []byte("Syntax Error: couldn't read xref table"), err: errors.New("exit status 1")}
	e := NewExtractor(Config{}, slog.Default()).WithRunner(stub)

	_, err := e.Extract(context.Background(), "broken.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionTool)
	assert.Contains(t, err.Error(), "xref table")
}

func TestExtractMissingBinary(t *testing.T) {
	stub := &stubRunner{err: errors.New(`exec: "pdftotext": executable file not found in $PATH`)}
	e := NewExtractor(Config{}, slog.Default()).WithRunner(stub)

	_, err := e.Extract(context.Background(), "a.pdf")
	assert.ErrorIs(t, err, ErrExtractionTool)
}
