package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	backend := NewMockBackend()

	got := Identity[float64](3, backend)

	assert.Equal(t, Shape{3, 3}, got.Shape())
	assert.Equal(t, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}, got.Data())
}

func TestEyeOffset(t *testing.T) {
	backend := NewMockBackend()

	got := Eye[float64](3, 4, 1, backend)

	assert.Equal(t, Shape{3, 4}, got.Shape())
	assert.Equal(t, []float64{
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}, got.Data())
}

func TestEyeNegativeOffset(t *testing.T) {
	backend := NewMockBackend()

	got := Eye[int32](3, 3, -1, backend)

	assert.Equal(t, []int32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	}, got.Data())
}

func TestTri(t *testing.T) {
	backend := NewMockBackend()

	got := Tri[int32](3, 3, 0, backend)

	assert.Equal(t, []int32{
		1, 0, 0,
		1, 1, 0,
		1, 1, 1,
	}, got.Data())
}

func TestTriOffset(t *testing.T) {
	backend := NewMockBackend()

	got := Tri[int32](3, 3, 1, backend)

	assert.Equal(t, []int32{
		1, 1, 0,
		1, 1, 1,
		1, 1, 1,
	}, got.Data())
}

func TestDiag(t *testing.T) {
	backend := NewMockBackend()

	v, err := FromSlice([]float64{1, 2, 3}, Shape{3}, backend)
	require.NoError(t, err)

	got, err := Diag(v, 0)
	require.NoError(t, err)

	assert.Equal(t, Shape{3, 3}, got.Shape())
	assert.Equal(t, []float64{
		1, 0, 0,
		0, 2, 0,
		0, 0, 3,
	}, got.Data())
}

func TestDiagOffsetConsumesPrefix(t *testing.T) {
	backend := NewMockBackend()

	v, err := FromSlice([]float64{1, 2, 3}, Shape{3}, backend)
	require.NoError(t, err)

	// A shifted diagonal has fewer cells; the cursor still consumes
	// source elements strictly left to right.
	got, err := Diag(v, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{
		0, 1, 0,
		0, 0, 2,
		0, 0, 0,
	}, got.Data())
}

func TestDiagRejectsMatrix(t *testing.T) {
	backend := NewMockBackend()

	m, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}, backend)
	require.NoError(t, err)

	_, err = Diag(m, 0)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 1, shapeErr.WantRank)
	assert.Equal(t, 2, shapeErr.GotRank)
}

func TestVanderDecreasing(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float64{1, 2, 3}, Shape{3}, backend)
	require.NoError(t, err)

	got, err := Vander(x, 0, false)
	require.NoError(t, err)

	assert.Equal(t, Shape{3, 3}, got.Shape())
	assert.Equal(t, []float64{
		1, 1, 1,
		4, 2, 1,
		9, 3, 1,
	}, got.Data())
}

func TestVanderIncreasing(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float64{1, 2, 3}, Shape{3}, backend)
	require.NoError(t, err)

	got, err := Vander(x, 0, true)
	require.NoError(t, err)

	assert.Equal(t, []float64{
		1, 1, 1,
		1, 2, 4,
		1, 3, 9,
	}, got.Data())
}

func TestVanderExplicitColumns(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float64{2, 3}, Shape{2}, backend)
	require.NoError(t, err)

	got, err := Vander(x, 4, true)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 4}, got.Shape())
	assert.Equal(t, []float64{
		1, 2, 4, 8,
		1, 3, 9, 27,
	}, got.Data())
}

func TestVanderInt(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]int64{1, 2, 3}, Shape{3}, backend)
	require.NoError(t, err)

	got, err := Vander(x, 0, false)
	require.NoError(t, err)

	assert.Equal(t, []int64{
		1, 1, 1,
		4, 2, 1,
		9, 3, 1,
	}, got.Data())
}

func TestVanderRejectsMatrix(t *testing.T) {
	backend := NewMockBackend()

	m, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}, backend)
	require.NoError(t, err)

	_, err = Vander(m, 0, false)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "vander", shapeErr.Op)
}

func TestStructuralIdempotent(t *testing.T) {
	backend := NewMockBackend()

	a := Eye[float64](4, 5, -2, backend)
	b := Eye[float64](4, 5, -2, backend)

	assert.Equal(t, a.Data(), b.Data())
}
