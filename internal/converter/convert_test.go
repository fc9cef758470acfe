package converter_test

import (
	"math/big"
	"testing"

	"baseconv/internal/converter"
	"baseconv/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name string
		in   string
		from domain.Radix
		to   domain.Radix
		want domain.Outcome
	}{
		{"hex to decimal", "FF", domain.Hexadecimal, domain.Decimal, domain.Success("255")},
		{"lower-case hex", "ff", domain.Hexadecimal, domain.Decimal, domain.Success("255")},
		{"decimal to hex", "255", domain.Decimal, domain.Hexadecimal, domain.Success("FF")},
		{"negative decimal to binary", "-10", domain.Decimal, domain.Binary, domain.Success("-1010")},
		{"octal to binary", "777", domain.Octal, domain.Binary, domain.Success("111111111")},
		{"zero", "0", domain.Binary, domain.Hexadecimal, domain.Success("0")},
		{"negative zero", "-0", domain.Decimal, domain.Octal, domain.Success("0")},
		{"leading zeros dropped", "007", domain.Decimal, domain.Binary, domain.Success("111")},
		{"surrounding whitespace trimmed", " 12 ", domain.Decimal, domain.Hexadecimal, domain.Success("C")},
		{"binary digit out of range", "2", domain.Binary, domain.Decimal, domain.Invalid()},
		{"hex letter out of range", "1G", domain.Hexadecimal, domain.Decimal, domain.Invalid()},
		{"trailing garbage", "12abc", domain.Decimal, domain.Binary, domain.Invalid()},
		{"hex prefix", "0x1F", domain.Hexadecimal, domain.Decimal, domain.Invalid()},
		{"plus sign", "+5", domain.Decimal, domain.Binary, domain.Invalid()},
		{"bare minus", "-", domain.Decimal, domain.Binary, domain.Invalid()},
		{"double minus", "--1", domain.Decimal, domain.Binary, domain.Invalid()},
		{"inner minus", "1-1", domain.Decimal, domain.Binary, domain.Invalid()},
		{"digit separator", "1_0", domain.Decimal, domain.Binary, domain.Invalid()},
		{"whitespace only", "   ", domain.Decimal, domain.Binary, domain.Invalid()},
		{"inner space", "1 0", domain.Decimal, domain.Binary, domain.Invalid()},
		{"non-ascii digit", "١٢", domain.Decimal, domain.Binary, domain.Invalid()},
		{"empty", "", domain.Decimal, domain.Binary, domain.Empty()},
		{"same base valid", "10", domain.Decimal, domain.Decimal, domain.SameBase()},
		{"same base invalid", "zz", domain.Binary, domain.Binary, domain.SameBase()},
		{"unsupported source", "10", domain.Radix(3), domain.Decimal, domain.Invalid()},
		{"unsupported target", "10", domain.Decimal, domain.Radix(36), domain.Invalid()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, converter.Convert(tc.in, tc.from, tc.to))
		})
	}
}

func TestConvert_EmptyForAllRadices(t *testing.T) {
	for _, from := range domain.Radixes() {
		for _, to := range domain.Radixes() {
			require.Equal(t, domain.OutcomeEmpty, converter.Convert("", from, to).Kind)
		}
	}
}

func TestConvert_SameBaseForAllRadices(t *testing.T) {
	for _, r := range domain.Radixes() {
		require.Equal(t, domain.OutcomeSameBase, converter.Convert("1", r, r).Kind)
	}
}

func TestConvert_LargeValuesAreExact(t *testing.T) {
	in := "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"
	want := "115792089237316195423570985008687907853269984665640564039457584007913129639935"

	out := converter.Convert(in, domain.Hexadecimal, domain.Decimal)
	require.Equal(t, domain.Success(want), out)

	back := converter.Convert(want, domain.Decimal, domain.Hexadecimal)
	require.Equal(t, domain.Success(in), back)
}

func TestConvert_RoundTrip(t *testing.T) {
	values := []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(7), big.NewInt(255), big.NewInt(4096)}
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	values = append(values, huge, new(big.Int).Lsh(big.NewInt(1), 64))

	for _, n := range values {
		for _, r1 := range domain.Radixes() {
			for _, r2 := range domain.Radixes() {
				if r1 == r2 {
					continue
				}
				s1 := converter.Format(n, r1)
				s2 := converter.Format(n, r2)

				there := converter.Convert(s1, r1, r2)
				require.Equal(t, domain.Success(s2), there, "%s %s->%s", n, r1, r2)

				back := converter.Convert(there.Result, r2, r1)
				require.Equal(t, domain.Success(s1), back, "%s %s->%s", n, r2, r1)
			}
		}
	}
}

func TestConvert_Idempotent(t *testing.T) {
	for _, in := range []string{"", "FF", "xyz", "-1A"} {
		first := converter.Convert(in, domain.Hexadecimal, domain.Octal)
		second := converter.Convert(in, domain.Hexadecimal, domain.Octal)
		require.Equal(t, first, second)
	}
}

func TestParse(t *testing.T) {
	v, ok := converter.Parse("-1a", domain.Hexadecimal)
	require.True(t, ok)
	require.Equal(t, int64(-26), v.Int64())

	_, ok = converter.Parse("19", domain.Octal)
	require.False(t, ok)
}

func TestFormat(t *testing.T) {
	require.Equal(t, "-FF", converter.Format(big.NewInt(-255), domain.Hexadecimal))
	require.Equal(t, "377", converter.Format(big.NewInt(255), domain.Octal))
	require.Equal(t, "0", converter.Format(new(big.Int), domain.Binary))
}
