package validate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dictmap/cmd/application"
	"github.com/agentstation/dictmap/cmd/dictmap/cmd/validate"
	"github.com/agentstation/dictmap/internal/cmd/emoji"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/model"
)

const testdata = "../../../../testdata/"

func run(t *testing.T, args ...string) (out, stderr string, err error) {
	t.Helper()
	var buf, errBuf bytes.Buffer
	app := &application.Mock{
		OutputFormatFunc: func() string { return "json" },
		OutputFunc:       application.BufferOutput(&buf),
	}
	cmd := validate.NewCommand(app)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(append([]string{
		"--uml", testdata + "current/USDM_UML.xmi",
		"--terminology", testdata + "USDM_CT.csv",
		"--cardinalities", testdata + "cardinalities.yaml",
	}, args...))
	err = cmd.ExecuteContext(context.Background())
	return buf.String(), errBuf.String(), err
}

func TestValidate(t *testing.T) {
	out, stderr, err := run(t)
	require.NoError(t, err)

	var warnings []model.Warning
	require.NoError(t, json.Unmarshal([]byte(out), &warnings))
	assert.Len(t, warnings, 4)
	assert.Contains(t, stderr, emoji.Warning+" 4 classes, 4 warnings")
}

func TestValidateStrict(t *testing.T) {
	_, _, err := run(t, "--strict")
	assert.True(t, errors.IsValidationError(err))
}

func TestValidateLoadError(t *testing.T) {
	_, stderr, err := run(t, "--uml", testdata+"missing.xmi")
	require.Error(t, err)
	assert.Contains(t, stderr, emoji.Error)
}
