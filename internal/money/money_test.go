package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundCents_HalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.015", "0.02"},
		{"0.0149", "0.01"},
		{"0.021", "0.02"},
		{"3.605", "3.61"},
		{"3.6", "3.6"},
		{"-0.015", "-0.01"},
		{"-0.016", "-0.02"},
		{"0", "0"},
	}
	for _, tt := range tests {
		got := RoundCents(Dollars(tt.in))
		assert.True(t, got.Equal(Dollars(tt.want)), "RoundCents(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$3.60", Format(Dollars("3.6")))
	assert.Equal(t, "$0.02", Format(Dollars("0.015")))
	assert.Equal(t, "$0.00", Format(Dollars("0")))
	assert.Equal(t, "-$0.40", Format(Dollars("-0.4")))
	assert.Equal(t, "$12.35", Format(Dollars("12.345")))
}

func TestFromCents(t *testing.T) {
	assert.True(t, FromCents(2).Equal(Dollars("0.02")))
	assert.True(t, FromCents(150).Equal(Dollars("1.50")))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$.02", FormatCost(2))
	assert.Equal(t, "$.05", FormatCost(5))
	assert.Equal(t, "$.15", FormatCost(15))
	assert.Equal(t, "$1.25", FormatCost(125))
}

func TestParse(t *testing.T) {
	d, err := Parse(" $4.50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(Dollars("4.5")))

	_, err = Parse("lots")
	assert.Error(t, err)
}
