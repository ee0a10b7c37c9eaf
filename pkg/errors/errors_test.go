package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/dictmap/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "schema",
			ID:       "Study-Output",
		}
		assert.Equal(t, "schema Study-Output not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("entity", "Study")
		wrapped := fmt.Errorf("loading: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("multiplicity", "2..1", "min exceeds max")
		assert.Equal(t, "validation failed for field multiplicity: min exceeds max", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad model"}
		assert.Equal(t, "validation failed: bad model", err.Error())
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapValidation("name", nil))
	})
}

func TestSourceError(t *testing.T) {
	err := pkgerrors.NewSourceError("uml", "USDM_UML.xmi", pkgerrors.ErrEmptySource)
	assert.Equal(t, "uml source USDM_UML.xmi: empty source", err.Error())
	assert.True(t, pkgerrors.IsEmptySource(err))

	noPath := pkgerrors.WrapSource("api", "", errors.New("boom"))
	require.Error(t, noPath)
	assert.Equal(t, "api source: boom", noPath.Error())
	assert.NoError(t, pkgerrors.WrapSource("api", "x", nil))
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("align", "terminology path is required", pkgerrors.ErrMissingInput)
	assert.Contains(t, err.Error(), "align")
	assert.True(t, pkgerrors.IsMissingInput(err))
}

func TestParseAndIOErrors(t *testing.T) {
	base := errors.New("unexpected EOF")

	parseErr := pkgerrors.WrapParse("xmi", "model.xmi", base)
	require.Error(t, parseErr)
	assert.Equal(t, "parse error in xmi file model.xmi: unexpected EOF", parseErr.Error())
	assert.ErrorIs(t, parseErr, base)

	withLine := &pkgerrors.ParseError{Format: "csv", File: "ct.csv", Line: 4, Message: "wrong field count"}
	assert.Equal(t, "parse error in csv at ct.csv:4: wrong field count", withLine.Error())

	ioErr := pkgerrors.WrapIO("read", "/tmp/x", base)
	assert.Equal(t, "IO error during read of /tmp/x: unexpected EOF", ioErr.Error())
	assert.ErrorIs(t, ioErr, base)
	assert.NoError(t, pkgerrors.WrapIO("read", "", nil))
}
