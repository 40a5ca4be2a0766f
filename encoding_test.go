package fixedpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalJSON(t *testing.T) {
	a := assert.New(t)
	defer func(mode int) {
		JSONMode = mode
	}(JSONMode)
	tests := []struct {
		f                  Decimal64
		pair, str, float string
	}{
		{dec64(123, -2), `{"value":123,"scale":-2}`, `"1.23"`, `1.23`},
		{dec64(-5, 3), `{"value":-5,"scale":3}`, `"-5000"`, `-5000`},
		{dec64(0, 0), `{"value":0,"scale":0}`, `"0"`, `0`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			for mode, expected := range map[int]string{
				JSONModePair:   test.pair,
				JSONModeString: test.str,
				JSONModeFloat:  test.float,
			} {
				JSONMode = mode
				data, err := json.Marshal(test.f)
				if a.NoError(err) {
					a.Equal(expected, string(data))
				}
			}
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		data   string
		init   Decimal32
		result Decimal32
		err    string
	}{
		{`{"value":123,"scale":-2}`, Decimal32{}, dec32(123, -2), ""},
		{`{"scale":-2,"value":-7}`, dec32(1, 1), dec32(-7, -2), ""},
		{`"1.239"`, dec32(0, -2), dec32(123, -2), ""},
		{`1.239`, dec32(0, -1), dec32(12, -1), ""},
		{`1.239`, Decimal32{}, dec32(1239, -3), ""},
		{`"-1.5e3"`, Decimal32{}, dec32(-15, 2), ""},
		{`"1e10000000"`, Decimal32{}, dec32(1, 10000000), ""},
		{`"1e10000000"`, dec32(0, -2), Decimal32{}, "value out of range"},
		{`{"value":3000000000,"scale":0}`, Decimal32{}, Decimal32{}, "3000000000 does not fit int32: value out of range"},
		{`{"value":1}`, Decimal32{}, Decimal32{}, "missing scale"},
		{`{"scale":1}`, Decimal32{}, Decimal32{}, "missing value"},
		{`"abc"`, Decimal32{}, Decimal32{}, "parsing failed"},
		{`null`, dec32(5, -1), dec32(5, -1), ""},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f := test.init
			err := json.Unmarshal([]byte(test.data), &f)
			if len(test.err) > 0 {
				if a.Error(err) {
					a.Contains(err.Error(), test.err)
				}
			} else if a.NoError(err) {
				a.Equal(test.result, f)
			}
		})
	}
}

type priceRow struct {
	Symbol string    `json:"symbol" yaml:"symbol"`
	Price  Decimal64 `json:"price" yaml:"price"`
	Weight Binary32  `json:"weight" yaml:"weight"`
}

func TestJSONRoundTrip(t *testing.T) {
	a := assert.New(t)
	row := priceRow{Symbol: "ABC", Price: dec64(-123456789, -4), Weight: bin32(3, -1)}
	data, err := json.Marshal(row)
	require.NoError(t, err)
	a.Equal(`{"symbol":"ABC","price":{"value":-123456789,"scale":-4},"weight":{"value":3,"scale":-1}}`, string(data))
	var decoded priceRow
	require.NoError(t, json.Unmarshal(data, &decoded))
	a.Equal(row, decoded)
}

func TestJSONStringModeRoundTrip(t *testing.T) {
	a := assert.New(t)
	defer func(mode int) {
		JSONMode = mode
	}(JSONMode)
	JSONMode = JSONModeString
	for _, f := range []Decimal64{dec64(123, -2), dec64(-987654321, -9), dec64(7, 0), dec64(-5, 3)} {
		data, err := json.Marshal(f)
		require.NoError(t, err)
		var decoded Decimal64
		require.NoError(t, json.Unmarshal(data, &decoded))
		a.True(f.StrictEq(decoded), "%s: %#v", data, decoded)
	}
	var b Binary32
	require.NoError(t, json.Unmarshal([]byte(`"1.75"`), &b))
	a.Equal(bin32(1, 0), b)
}

func TestYAML(t *testing.T) {
	a := assert.New(t)
	row := priceRow{Symbol: "ABC", Price: dec64(-123456789, -4), Weight: bin32(3, -1)}
	data, err := yaml.Marshal(row)
	require.NoError(t, err)
	a.Equal("symbol: ABC\nprice:\n    value: -123456789\n    scale: -4\nweight:\n    value: 3\n    scale: -1\n", string(data))
	var decoded priceRow
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	a.Equal(row, decoded)
}

func TestUnmarshalYAML(t *testing.T) {
	a := assert.New(t)
	row := priceRow{Price: dec64(0, -2), Weight: bin32(0, -2)}
	require.NoError(t, yaml.Unmarshal([]byte("symbol: X\nprice: 12.345\nweight: \"1.8\"\n"), &row))
	a.Equal(dec64(1234, -2), row.Price)
	a.Equal(bin32(7, -2), row.Weight)

	err := yaml.Unmarshal([]byte("price: [1, 2]\n"), &row)
	a.EqualError(err, "line 1: unexpected yaml node for a fixed-point number")

	err = yaml.Unmarshal([]byte("weight:\n  value: 3000000000\n  scale: 0\n"), &row)
	a.True(errors.Is(err, ErrRange), "unexpected error %v", err)

	err = yaml.Unmarshal([]byte("price: abc\n"), &row)
	a.Error(err)

	err = yaml.Unmarshal([]byte("price: 1e10000000\n"), &row)
	a.True(errors.Is(err, ErrRange), "unexpected error %v", err)
	a.Less(len(err.Error()), 100)

	var zero priceRow
	require.NoError(t, yaml.Unmarshal([]byte("price: \"0.05\"\n"), &zero))
	a.Equal(dec64(5, -2), zero.Price)
}
