package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsCollect(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddWarning("missing_type", "property has no type", "Customer", "email")
	d.AddInfo("note", "just saying", "", "")
	assert.False(t, d.HasErrors())

	d.AddError("duplicate_property", `duplicate property "name"`, "Customer", "name")
	require.True(t, d.HasErrors())
	assert.Equal(t, []string{"duplicate_property", "missing_type", "note"}, d.Codes())
	assert.EqualError(t, d.Error(), `[Customer] name: [duplicate_property] duplicate property "name"`)
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "M", "")
	b.AddWarning("z", "third", "", "p")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, "[M]: [y] second", a.Errors[1].String())
	assert.Equal(t, "p: [z] third", a.Warnings[0].String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
