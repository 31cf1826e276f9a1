package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coinmelt/coinmelt/pkg/validate"
)

func TestPositiveNumber(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		def  float64
		want float64
	}{
		{
			name: "plain float",
			raw:  "24.85",
			want: 24.85,
		},
		{
			name: "integer",
			raw:  "31",
			want: 31,
		},
		{
			name: "zero",
			raw:  "0",
			want: 0,
		},
		{
			name: "surrounding whitespace",
			raw:  "  12.5 ",
			want: 12.5,
		},
		{
			name: "negative falls back",
			raw:  "-3.2",
			def:  0,
			want: 0,
		},
		{
			name: "garbage falls back",
			raw:  "abc",
			def:  0,
			want: 0,
		},
		{
			name: "empty falls back",
			raw:  "",
			want: 0,
		},
		{
			name: "NaN falls back",
			raw:  "NaN",
			want: 0,
		},
		{
			name: "custom default",
			raw:  "nope",
			def:  1.5,
			want: 1.5,
		},
		{
			name: "value unmodified, no rounding",
			raw:  "0.123456789",
			want: 0.123456789,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.want, validate.PositiveNumber(testCase.raw, testCase.def))
		})
	}
}

func TestPositiveInteger(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		def  int
		want int
	}{
		{
			name: "plain integer",
			raw:  "7",
			want: 7,
		},
		{
			name: "zero",
			raw:  "0",
			want: 0,
		},
		{
			name: "negative falls back",
			raw:  "-5",
			want: 0,
		},
		{
			name: "fractional truncates",
			raw:  "5.7",
			want: 5,
		},
		{
			name: "negative fractional falls back",
			raw:  "-5.7",
			want: 0,
		},
		{
			name: "garbage falls back",
			raw:  "xyz",
			want: 0,
		},
		{
			name: "empty falls back",
			raw:  "",
			want: 0,
		},
		{
			name: "custom default",
			raw:  "nope",
			def:  3,
			want: 3,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.want, validate.PositiveInteger(testCase.raw, testCase.def))
		})
	}
}
