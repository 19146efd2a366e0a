package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()

	got, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, got.Shape())
	assert.Equal(t, float32(6), got.At(1, 2))
}

func TestFromSliceLengthMismatch(t *testing.T) {
	backend := NewMockBackend()

	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 3}, backend)
	require.Error(t, err)
}

func TestAtSet(t *testing.T) {
	backend := NewMockBackend()

	got := Zeros[float64](Shape{3, 4}, backend)
	got.Set(2.5, 1, 2)

	assert.Equal(t, 2.5, got.At(1, 2))
	assert.Zero(t, got.At(2, 1))
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	backend := NewMockBackend()

	got := Zeros[float64](Shape{2, 2}, backend)

	assert.Panics(t, func() { got.At(2, 0) })
	assert.Panics(t, func() { got.At(0) })
}

func TestAdd(t *testing.T) {
	backend := NewMockBackend()

	a, err := FromSlice([]float64{1, 2, 3}, Shape{3}, backend)
	require.NoError(t, err)
	b, err := FromSlice([]float64{10, 20, 30}, Shape{3}, backend)
	require.NoError(t, err)

	got := a.Add(b)

	assert.Equal(t, []float64{11, 22, 33}, got.Data())
	assert.Equal(t, []float64{1, 2, 3}, a.Data(), "operands must not be mutated")
}

func TestAddBroadcast(t *testing.T) {
	backend := NewMockBackend()

	a, err := FromSlice([]float64{1, 2, 3}, Shape{3, 1}, backend)
	require.NoError(t, err)
	b, err := FromSlice([]float64{10, 20}, Shape{1, 2}, backend)
	require.NoError(t, err)

	got := a.Add(b)

	assert.Equal(t, Shape{3, 2}, got.Shape())
	assert.Equal(t, []float64{11, 21, 12, 22, 13, 23}, got.Data())
}

func TestMulScalar(t *testing.T) {
	backend := NewMockBackend()

	a, err := FromSlice([]float64{1, 2, 3}, Shape{3}, backend)
	require.NoError(t, err)

	got := a.MulScalar(2).AddScalar(1)

	assert.Equal(t, []float64{3, 5, 7}, got.Data())
}

func TestScalarPow(t *testing.T) {
	backend := NewMockBackend()

	exponents, err := FromSlice([]float64{0, 1, 2, 3}, Shape{4}, backend)
	require.NoError(t, err)

	got := exponents.ScalarPow(10)

	want := []float64{1, 10, 100, 1000}
	for i, v := range got.Data() {
		assert.InDelta(t, want[i], v, 1e-9)
	}
}

func TestPowElementwise(t *testing.T) {
	backend := NewMockBackend()

	base, err := FromSlice([]float64{2, 3, 4}, Shape{3}, backend)
	require.NoError(t, err)
	exp, err := FromSlice([]float64{3, 2, 0.5}, Shape{3}, backend)
	require.NoError(t, err)

	got := base.Pow(exp)

	want := []float64{8, 9, 2}
	for i, v := range got.Data() {
		assert.InDelta(t, want[i], v, 1e-9)
	}
}

func TestClone(t *testing.T) {
	backend := NewMockBackend()

	a, err := FromSlice([]int32{1, 2, 3}, Shape{3}, backend)
	require.NoError(t, err)

	b := a.Clone()

	assert.Equal(t, a.Shape(), b.Shape())
	assert.Equal(t, a.Data(), b.Data())
	assert.False(t, a.Raw().IsUnique(), "clone shares the buffer via refcount")
}

func TestString(t *testing.T) {
	backend := NewMockBackend()

	got := Zeros[float32](Shape{2, 3}, backend)

	assert.Contains(t, got.String(), "float32")
	assert.Contains(t, got.String(), "[2 3]")
}

func TestItemNonScalarPanics(t *testing.T) {
	backend := NewMockBackend()

	got := Zeros[float64](Shape{2}, backend)

	assert.Panics(t, func() { got.Item() })
}
