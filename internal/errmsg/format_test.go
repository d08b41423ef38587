package errmsg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpThemeSave,
			expected: "",
		},
		{
			name:     "dataset load",
			op:       OpDatasetLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load element dataset: file not found",
		},
		{
			name:     "strict table build",
			op:       OpTableBuild,
			err:      errors.New("2 element(s) could not be placed on the table: 200, 3"),
			expected: "Failed to build periodic table: 2 element(s) could not be placed on the table: 200, 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.op, tt.err))
		})
	}
}

func TestFormatWith(t *testing.T) {
	err := errors.New("no such element")

	assert.Empty(t, FormatWith(OpElementFind, "Xx", nil))
	assert.Equal(t, "Failed to find element 'Xx': no such element", FormatWith(OpElementFind, "Xx", err))
	assert.Equal(t, Format(OpElementFind, err), FormatWith(OpElementFind, "", err))
}
