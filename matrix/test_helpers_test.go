// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep random data finite and reproducible (fixed seeds).

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densela/matrix"
	"github.com/stretchr/testify/require"
)

// detTol is the absolute tolerance used when comparing determinants that went
// through elimination round-off.
const detTol = 1e-9

// MustDense builds a *Dense from rows or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m has exactly the shape and values of want.
func CompareExact(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.ToRows())
}

// RandomRows returns an r×c grid with values in [-10, 10) drawn from rng.
func RandomRows(rng *rand.Rand, r, c int) [][]float64 {
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*20 - 10
		}
	}

	return rows
}

// RandomIntRows returns an r×c grid of small integers in [-9, 9] drawn from rng.
// Sums and products of such values are exact in float64, which lets property
// tests use exact Equal.
func RandomIntRows(rng *rand.Rand, r, c int) [][]float64 {
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(19) - 9)
		}
	}

	return rows
}

// AlmostEqual reports |a-b| <= tol*max(1, |a|, |b|).
func AlmostEqual(a, b, tol float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= tol*scale
}
