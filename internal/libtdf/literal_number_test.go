package libtdf

import (
	"math/big"
	"testing"

	"github.com/globalmentor/go-urf/internal/testutil/assert"
)

func parseLiteral(t *testing.T, src string) *Literal {
	t.Helper()
	roots := parseRoots(t, src)
	assert.Equal(t, 1, len(roots))
	assert.Equal(t, KindLiteral, roots[0].Kind)
	return roots[0].Literal
}

// Numeric typing table (spec.md §4.4): a bare integer within the int64
// range types as Long, one outside it types as BigInt, a fraction or
// exponent types as Double, and "$" forces a decimal interpretation.
func Test_numericTyping(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind LiteralKind
	}{
		{"long", "123", LiteralLong},
		{"negative long", "-42", LiteralLong},
		{"bigint beyond int64", "99999999999999999999", LiteralBigInt},
		{"fraction is double", "1.5", LiteralDouble},
		{"exponent is double", "1e10", LiteralDouble},
		{"forced without fraction is bigint", "$123", LiteralBigInt},
		{"forced with fraction is bigdecimal", "$1.5", LiteralBigDecimal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lit := parseLiteral(t, tc.src)
			assert.Equal(t, tc.kind, lit.Kind)
		})
	}
}

func Test_numericTyping_values(t *testing.T) {
	lit := parseLiteral(t, "123")
	assert.Equal(t, int64(123), lit.Long)

	lit = parseLiteral(t, "-42")
	assert.Equal(t, int64(-42), lit.Long)

	lit = parseLiteral(t, "99999999999999999999")
	want, _ := new(big.Int).SetString("99999999999999999999", 10)
	assert.Equal(t, 0, lit.BigInt.Cmp(want))

	lit = parseLiteral(t, "1.5")
	assert.Equal(t, 1.5, lit.Double)
}

// A Double whose formatted text happens to contain no "." or exponent
// marker (an integral value) must still round-trip as Double, not Long.
func Test_doubleRoundTrip_integralValue(t *testing.T) {
	roots := parseRoots(t, "1e2")
	lit := roots[0].Literal
	assert.Equal(t, LiteralDouble, lit.Kind)
	assert.Equal(t, 100.0, lit.Double)

	out, err := Serialize(roots)
	assert.NoError(t, err)
	assert.Equal(t, "100.0", out)

	reparsed := parseRoots(t, out)
	assert.Equal(t, LiteralDouble, reparsed[0].Literal.Kind)
	assert.Equal(t, 100.0, reparsed[0].Literal.Double)
}

// A forced BigDecimal whose scale collapses to zero-or-negative must still
// round-trip as BigDecimal, not BigInteger.
func Test_bigDecimalRoundTrip_nonPositiveScale(t *testing.T) {
	roots := parseRoots(t, "$100e2")
	lit := roots[0].Literal
	assert.Equal(t, LiteralBigDecimal, lit.Kind)
	assert.Equal(t, "10000", lit.Decimal.String())

	out, err := Serialize(roots)
	assert.NoError(t, err)
	assert.Equal(t, "$10000.0", out)

	reparsed := parseRoots(t, out)
	assert.Equal(t, LiteralBigDecimal, reparsed[0].Literal.Kind)
}

func Test_bigDecimalRoundTrip_positiveScale(t *testing.T) {
	roots := parseRoots(t, "$1.5")
	out, err := Serialize(roots)
	assert.NoError(t, err)
	assert.Equal(t, "$1.5", out)
}
