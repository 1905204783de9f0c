// SPDX-License-Identifier: MIT

package sigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigmakit/sigma"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []float64
	}{
		{"commas", "14.6, 7.49,3.07", []float64{14.6, 7.49, 3.07}},
		{"spaces", "1 0.5\t0.25\n0", []float64{1, 0.5, 0.25, 0}},
		{"mixed", " 1 ,, 2 ,\n3 ", []float64{1, 2, 3}},
		{"scientific", "2.9e-2 1E1", []float64{0.029, 10}},
		{"empty", "   ", []float64{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := sigma.Parse(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Values())
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	_, err := sigma.Parse("1.0, abc, 2")
	require.Error(t, err)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "field[1]")
}

func TestParsePrecision(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]sigma.Precision{
		"16": sigma.Float16, "float32": sigma.Float32, "fp64": sigma.Float64, " F32 ": sigma.Float32,
	} {
		got, err := sigma.ParsePrecision(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := sigma.ParsePrecision("8")
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
	_, err = sigma.ParsePrecision("double")
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)

	assert.Equal(t, "float16", sigma.Float16.String())
	assert.Equal(t, "Precision(7)", sigma.Precision(7).String())
}
