package application

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/dictmap"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	DictmapFunc      func(opts ...dictmap.Option) (dictmap.Dictmap, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	OutputFunc       func() (io.WriteCloser, error)
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Dictmap returns an instance using the mock function or the defaults.
func (m *Mock) Dictmap(opts ...dictmap.Option) (dictmap.Dictmap, error) {
	if m.DictmapFunc != nil {
		return m.DictmapFunc(opts...)
	}
	return dictmap.New(opts...)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Output returns the destination using the mock function or stdout.
func (m *Mock) Output() (io.WriteCloser, error) {
	if m.OutputFunc != nil {
		return m.OutputFunc()
	}
	return nopCloser{os.Stdout}, nil
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builder using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}

// BufferOutput returns an OutputFunc writing into w.
func BufferOutput(w io.Writer) func() (io.WriteCloser, error) {
	return func() (io.WriteCloser, error) {
		return nopCloser{w}, nil
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
