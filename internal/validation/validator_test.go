package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string  `validate:"required"`
	Score float64 `validate:"gte=0,lte=10"`
	Kind  string  `validate:"oneof=a b"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "x", Score: 0, Kind: "a"}))

	err := Struct(sample{Score: 11, Kind: "c"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Name is required")
		assert.Contains(t, err.Error(), "Score must be at most 10")
		assert.Contains(t, err.Error(), "Kind must be one of [a b]")
	}
}
