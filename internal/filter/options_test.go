package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsFor(t *testing.T) {
	opts := OptionsFor(canonical(t))

	assert.Equal(t, All, opts.Groups[0])
	assert.Equal(t, "1", opts.Groups[1])
	assert.Equal(t, "Actinide", opts.Groups[len(opts.Groups)-1])
	assert.Equal(t, []string{All, "Gas", "Liquid", "Solid", "Unknown"}, opts.States)
	assert.Equal(t, All, opts.Categories[0])
	assert.Contains(t, opts.Categories, "Noble Gas")
	assert.Len(t, opts.Categories, 12)

	assert.Equal(t, opts.Groups, opts.For(FieldGroup))
	assert.Equal(t, opts.States, opts.For(FieldState))
	assert.Equal(t, opts.Categories, opts.For(FieldCategory))
	assert.Nil(t, opts.For(Field("x")))
}
