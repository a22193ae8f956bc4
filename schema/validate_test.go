package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleanFile(t *testing.T) {
	f, err := Parse([]byte(customerYAML))
	require.NoError(t, err)

	diags := Validate(f)
	assert.False(t, diags.HasErrors(), "%v", diags.Error())
	// Account is referenced but not declared in the file.
	assert.Equal(t, []string{"unknown_relation_model"}, diags.Codes())
}

func TestValidateNil(t *testing.T) {
	diags := Validate(nil)
	assert.Equal(t, []string{"file_is_nil"}, diags.Codes())
}

func TestValidateProblems(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected []string
	}{
		{
			name:     "duplicate model",
			yaml:     "models:\n  - name: A\n  - name: A\n",
			expected: []string{"duplicate_model"},
		},
		{
			name:     "missing model name",
			yaml:     "models:\n  - properties: []\n",
			expected: []string{"missing_model_name"},
		},
		{
			name: "duplicate property",
			yaml: `
models:
  - name: A
    properties:
      - {name: x, type: String}
      - {name: x, type: Number}
`,
			expected: []string{"duplicate_property"},
		},
		{
			name: "missing type",
			yaml: `
models:
  - name: A
    properties:
      - {name: x}
`,
			expected: []string{"missing_type"},
		},
		{
			name: "unknown type",
			yaml: `
models:
  - name: A
    properties:
      - {name: x, type: [Ghost]}
`,
			expected: []string{"unknown_type"},
		},
		{
			name: "bad strict and default fn",
			yaml: `
models:
  - name: A
    strict: maybe
    properties:
      - {name: x, type: Date, default_fn: yesterday}
`,
			expected: []string{"invalid_strict", "unknown_default_fn"},
		},
		{
			name: "relation problems",
			yaml: `
models:
  - name: A
    properties:
      - {name: b, type: Number}
    relations:
      - {name: b, model: A, key_from: nope}
      - {name: c, model: A, key_from: b, key_to: id}
      - {name: c, model: A, key_from: b, key_to: id}
`,
			expected: []string{"relation_shadows_property", "unknown_key_from", "missing_key_to", "duplicate_relation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			assert.Equal(t, tt.expected, Validate(f).Codes())
		})
	}
}
