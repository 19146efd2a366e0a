package tensor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError(t *testing.T) {
	err := NewDomainError("linspace", "number of samples must be positive, got %d", -1)

	assert.Equal(t, "linspace: number of samples must be positive, got -1", err.Error())

	var domainErr *DomainError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &domainErr))
	assert.Equal(t, "linspace", domainErr.Op)
}

func TestShapeError(t *testing.T) {
	err := NewShapeError("vander", 1, 3)

	assert.Equal(t, "vander: expected rank 1 input, got rank 3", err.Error())

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 1, shapeErr.WantRank)
	assert.Equal(t, 3, shapeErr.GotRank)
}

func TestErrorTypesAreDistinct(t *testing.T) {
	var domainErr *DomainError
	var shapeErr *ShapeError

	assert.False(t, errors.As(NewShapeError("diag", 1, 2), &domainErr))
	assert.False(t, errors.As(NewDomainError("arange", "step must be nonzero"), &shapeErr))
}
