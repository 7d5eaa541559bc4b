//go:build unit

package safe_test

import (
	"testing"

	"github.com/packwire/lib-distcore/distcore/safe"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivide(t *testing.T) {
	t.Parallel()

	t.Run("divides", func(t *testing.T) {
		t.Parallel()

		got, err := safe.Divide(decimal.NewFromInt(3), decimal.NewFromInt(4))
		require.NoError(t, err)
		assert.Equal(t, "0.75", got.String())
	})

	t.Run("zero_denominator", func(t *testing.T) {
		t.Parallel()

		got, err := safe.Divide(decimal.NewFromInt(3), decimal.Zero)
		assert.ErrorIs(t, err, safe.ErrDivisionByZero)
		assert.True(t, got.IsZero())
	})
}

func TestDivideOrZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.5", safe.DivideOrZero(decimal.NewFromInt(1), decimal.NewFromInt(2)).String())
	assert.True(t, safe.DivideOrZero(decimal.NewFromInt(1), decimal.Zero).IsZero())
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	t.Run("calculates", func(t *testing.T) {
		t.Parallel()

		got, err := safe.Percentage(decimal.NewFromInt(3), decimal.NewFromInt(4))
		require.NoError(t, err)
		assert.Equal(t, "75", got.String())
	})

	t.Run("zero_denominator", func(t *testing.T) {
		t.Parallel()

		_, err := safe.Percentage(decimal.NewFromInt(3), decimal.Zero)
		assert.ErrorIs(t, err, safe.ErrDivisionByZero)
	})
}

func TestPercentageOrZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		numerator   int64
		denominator int64
		want        string
	}{
		{name: "three_quarters", numerator: 3, denominator: 4, want: "75"},
		{name: "half", numerator: 1, denominator: 2, want: "50"},
		{name: "full", numerator: 5, denominator: 5, want: "100"},
		{name: "none", numerator: 0, denominator: 7, want: "0"},
		{name: "empty_set", numerator: 0, denominator: 0, want: "0"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := safe.PercentageOrZero(decimal.NewFromInt(tc.numerator), decimal.NewFromInt(tc.denominator))
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestPercentageRepeatingFraction(t *testing.T) {
	t.Parallel()

	// Div uses decimal's default precision, so a repeating third stays finite.
	got := safe.PercentageOrZero(decimal.NewFromInt(1), decimal.NewFromInt(3))
	assert.True(t, got.GreaterThan(decimal.NewFromInt(33)))
	assert.True(t, got.LessThan(decimal.NewFromInt(34)))
}
