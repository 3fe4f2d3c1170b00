package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/modelspec/model"
)

func sampleResult() *model.Result {
	return &model.Result{
		RunID: "run-1",
		Root:  "/repo/models",
		Diagnostics: []model.Diagnostic{
			{Path: "/repo/models/a.yaml", Message: "broken", Severity: model.SeverityError},
			{Path: "/repo/models/b.yaml", Message: "suspicious", Severity: model.SeverityWarning},
			{Path: "/repo/models/c.yaml", Message: "note", Severity: model.SeverityInfo},
		},
	}
}

func TestFormat_IsValid(t *testing.T) {
	assert.True(t, FormatText.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.False(t, Format("xml").IsValid())
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, sampleResult(), Format("xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var decoded model.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.Diagnostics, 3)
	assert.Equal(t, "/repo/models/a.yaml", decoded.Diagnostics[0].Path)
	assert.Equal(t, "broken", decoded.Diagnostics[0].Message)
	assert.Equal(t, model.SeverityError, decoded.Diagnostics[0].Severity)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "/repo/models/a.yaml: broken")
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "1 error(s), 1 warning(s), 1 info")
}

func TestWriteText_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, &model.Result{RunID: "run-2"}))

	assert.Equal(t, "No findings.\n", buf.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, ExitCode(sampleResult()))
	assert.Equal(t, 0, ExitCode(&model.Result{
		Diagnostics: []model.Diagnostic{
			{Path: "x", Message: "m", Severity: model.SeverityWarning},
		},
	}))
	assert.Equal(t, 0, ExitCode(&model.Result{}))
}
