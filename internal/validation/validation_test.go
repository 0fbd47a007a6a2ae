package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Count int    `validate:"min=1"`
	Low   int
	High  int `validate:"gtefield=Low"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(sample{Name: "a", Count: 1, Low: 1, High: 2}))

	err := Struct(sample{Count: 0, Low: 3, High: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.name: is required")
	assert.Contains(t, err.Error(), "sample.count: must be at least 1")
	assert.Contains(t, err.Error(), "sample.high: must be >= low")
}

func TestSchemaValidator_Catalogue(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid catalogue",
			data: `
name: blaze
entries:
  - {item: blaze_rod, weight: 1, min_count: 0, max_count: 1}
`,
		},
		{
			name:      "zero weight",
			data:      "name: x\nentries:\n  - {item: a, weight: 0, min_count: 0, max_count: 1}\n",
			wantError: true,
			errorMsg:  "minimum",
		},
		{
			name:      "missing entries",
			data:      "name: x\n",
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "unknown field",
			data:      "name: x\nentries:\n  - {item: a, weight: 1, min_count: 0, max_count: 1, chance: 2}\n",
			wantError: true,
			errorMsg:  "additionalProperties",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SchemaCatalogue)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_Goals(t *testing.T) {
	v := NewSchemaValidator()

	assert.NoError(t, v.ValidateBytes([]byte("streams:\n  - [{ranged: 10, binary: 7}]\n"), SchemaGoals))
	assert.Error(t, v.ValidateBytes([]byte("streams: []\n"), SchemaGoals))
	assert.Error(t, v.ValidateBytes([]byte("streams:\n  - [{ranged: -1}]\n"), SchemaGoals))
	assert.Error(t, v.ValidateBytes([]byte("not: [valid"), SchemaGoals))
}
