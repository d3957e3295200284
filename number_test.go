package txtpb_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"txtpb"
)

func number(t *testing.T, src string) txtpb.Number {
	t.Helper()
	doc, err := txtpb.Parse([]byte("n: " + src))
	require.NoError(t, err)
	n, ok := doc.Root().Field(0).Value().Number()
	require.True(t, ok)
	return n
}

func TestNumberInt64(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src  string
		want int64
		err  error
	}{
		{"42", 42, nil},
		{"-42", -42, nil},
		{"9223372036854775807", math.MaxInt64, nil},
		{"-9223372036854775808", math.MinInt64, nil},
		{"9223372036854775808", 0, txtpb.ErrOutOfRange},
		{"-9223372036854775809", 0, txtpb.ErrOutOfRange},
		{"99999999999999999999", 0, txtpb.ErrOutOfRange},
		{"-0x10", -16, nil},
		{"1.5", 0, txtpb.ErrNotInteger},
	}
	for _, tt := range tests {
		got, err := number(t, tt.src).Int64()
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, tt.src)
			continue
		}
		require.NoError(t, err, tt.src)
		assert.Equal(t, tt.want, got, tt.src)
	}
}

func TestNumberUint64(t *testing.T) {
	t.Parallel()
	got, err := number(t, "18446744073709551615").Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)

	got, err = number(t, "-0").Uint64()
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = number(t, "-1").Uint64()
	assert.ErrorIs(t, err, txtpb.ErrOutOfRange)

	_, err = number(t, "18446744073709551616").Uint64()
	assert.ErrorIs(t, err, txtpb.ErrOutOfRange)
}

func TestNumberFloat64(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1e10, number(t, "1e10").Float64())
	assert.Equal(t, -0.5, number(t, "-.5").Float64())
	assert.True(t, math.IsInf(number(t, "1e999").Float64(), 1))
	assert.Equal(t, 1.8446744073709552e19, number(t, "18446744073709551616").Float64())
}
