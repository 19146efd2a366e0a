package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	backend := NewMockBackend()

	got, err := Linspace(0, 1, 5, true, backend)
	require.NoError(t, err)

	assert.Equal(t, Shape{5}, got.Shape())
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1.0}, got.Data())
}

func TestLinspaceEndpointExact(t *testing.T) {
	backend := NewMockBackend()

	// 1/49 is not representable; the final sample must still be the
	// literal stop value, not the accumulated approximation.
	got, err := Linspace(0, 1, DefaultSpacingNum, true, backend)
	require.NoError(t, err)

	data := got.Data()
	assert.Equal(t, 1.0, data[len(data)-1])
}

func TestLinspaceNoEndpoint(t *testing.T) {
	backend := NewMockBackend()

	got, err := Linspace(0, 1, 5, false, backend)
	require.NoError(t, err)

	want := []float64{0, 0.2, 0.4, 0.6, 0.8}
	require.Len(t, got.Data(), 5)
	for i, v := range got.Data() {
		assert.InDelta(t, want[i], v, 1e-12)
	}
}

func TestLinspaceSingleSampleIsStop(t *testing.T) {
	backend := NewMockBackend()

	// The one-sample case collapses to start + (stop - start), i.e.
	// the stop value, unlike libraries that return start here.
	got, err := Linspace(0, 10, 1, true, backend)
	require.NoError(t, err)

	assert.Equal(t, []float64{10.0}, got.Data())
}

func TestLinspaceNonPositiveNum(t *testing.T) {
	backend := NewMockBackend()

	for _, num := range []int{0, -3} {
		_, err := Linspace(0, 1, num, true, backend)

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "linspace", domainErr.Op)
	}
}

func TestLinspaceZeroStep(t *testing.T) {
	backend := NewMockBackend()

	_, err := Linspace(5, 5, 3, true, backend)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestLogspace(t *testing.T) {
	backend := NewMockBackend()

	got, err := Logspace(0, 2, 3, true, 10, backend)
	require.NoError(t, err)

	want := []float64{1, 10, 100}
	require.Len(t, got.Data(), 3)
	for i, v := range got.Data() {
		assert.InDelta(t, want[i], v, 1e-9)
	}
}

func TestLogspaceBase2(t *testing.T) {
	backend := NewMockBackend()

	got, err := Logspace(0, 3, 4, true, 2, backend)
	require.NoError(t, err)

	want := []float64{1, 2, 4, 8}
	for i, v := range got.Data() {
		assert.InDelta(t, want[i], v, 1e-9)
	}
}

func TestLogspacePropagatesLinspaceErrors(t *testing.T) {
	backend := NewMockBackend()

	_, err := Logspace(0, 2, 0, true, 10, backend)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestGeomspace(t *testing.T) {
	backend := NewMockBackend()

	got, err := Geomspace(1, 1000, 4, true, backend)
	require.NoError(t, err)

	want := []float64{1, 10, 100, 1000}
	require.Len(t, got.Data(), 4)
	for i, v := range got.Data() {
		assert.InDelta(t, want[i], v, 1e-9)
	}
}

func TestGeomspaceAllNegative(t *testing.T) {
	backend := NewMockBackend()

	got, err := Geomspace(-1, -1000, 4, true, backend)
	require.NoError(t, err)

	want := []float64{-1, -10, -100, -1000}
	for i, v := range got.Data() {
		assert.InDelta(t, want[i], v, 1e-9)
	}
}

func TestGeomspaceZeroBound(t *testing.T) {
	backend := NewMockBackend()

	for _, bounds := range [][2]float64{{0, 5}, {5, 0}} {
		_, err := Geomspace(bounds[0], bounds[1], 3, true, backend)

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "geomspace", domainErr.Op)
	}
}

func TestGeomspaceMixedSigns(t *testing.T) {
	backend := NewMockBackend()

	_, err := Geomspace(-1, 1000, 4, true, backend)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestSpacingIdempotent(t *testing.T) {
	backend := NewMockBackend()

	a, err := Geomspace(2, 512, 9, true, backend)
	require.NoError(t, err)
	b, err := Geomspace(2, 512, 9, true, backend)
	require.NoError(t, err)

	assert.Equal(t, a.Data(), b.Data())
}
