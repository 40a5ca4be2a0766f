package fixedpoint

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModePair
)

const (
	// JSONModePair marshals values as the (value, scale) pair, like `{"value":123,"scale":-2}`.
	// This is the only lossless mode.
	JSONModePair = iota
	// JSONModeString produces values as exact decimal strings, like `"1.23"`.
	// Decimal values keep their exact value when unmarshaled into zero values.
	// Binary values are parsed at the scale of the receiver, so they may lose digits.
	JSONModeString
	// JSONModeFloat marshals values as floats, like `1.23`.
	JSONModeFloat
)

var (
	jsonParts = []string{`{"value":`, `,"scale":`, `}`}
)

// pair is the serialized form of a fixed-point number.
// The radix is not serialized, it is defined by the type.
type pair struct {
	Value *int64 `json:"value" yaml:"value"`
	Scale *int32 `json:"scale" yaml:"scale"`
}

func (p pair) validate() error {
	if p.Value == nil {
		return errors.New("missing value")
	}
	if p.Scale == nil {
		return errors.New("missing scale")
	}
	return nil
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (f FixedPoint[R, X]) MarshalJSON() ([]byte, error) {
	return f.toJSON(JSONMode), nil
}

func (f FixedPoint[R, X]) toJSON(mode int) []byte {
	switch mode {
	case JSONModeFloat:
		return []byte(f.String())
	case JSONModeString:
		return []byte(strconv.Quote(f.StringExact()))
	default:
		var builder strings.Builder
		builder.WriteString(jsonParts[0])
		builder.WriteString(strconv.FormatInt(int64(f.value), 10))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.FormatInt(int64(f.scale.s), 10))
		builder.WriteString(jsonParts[2])
		return []byte(builder.String())
	}
}

// UnmarshalJSON unmarshals a (value, scale) object, a string, or a number.
// Strings and numbers are parsed as described in setText.
func (f *FixedPoint[R, X]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty json")
	}
	if string(data) == "null" {
		return nil
	}
	if data[0] == '{' {
		var p pair
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		return f.setPair(p)
	}
	return f.setText(string(data))
}

// MarshalYAML marshals f as a (value, scale) mapping.
func (f FixedPoint[R, X]) MarshalYAML() (interface{}, error) {
	v, s := int64(f.value), f.scale.s
	return pair{Value: &v, Scale: &s}, nil
}

// UnmarshalYAML unmarshals a (value, scale) mapping or a scalar.
// Scalars are parsed as described in setText.
func (f *FixedPoint[R, X]) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var p pair
		if err := node.Decode(&p); err != nil {
			return err
		}
		return f.setPair(p)
	case yaml.ScalarNode:
		if err := f.setText(node.Value); err != nil {
			return errors.Wrapf(err, "line %d", node.Line)
		}
		return nil
	default:
		return errors.Errorf("line %d: unexpected yaml node for a fixed-point number", node.Line)
	}
}

// setText parses a decimal number at the current scale of f.
// A zero-valued decimal f takes the scale of the text itself, so "1.23" becomes (123, -2).
func (f *FixedPoint[R, X]) setText(s string) error {
	d, err := parseDecimal(s)
	if err != nil {
		return err
	}
	scale := f.scale
	if f.value == 0 && f.scale.s == 0 && radixOf[X]() == Radix10 {
		scale = NewScale(d.Exponent())
	}
	value, err := FromDecimal[R, X](d, scale)
	if err != nil {
		return err
	}
	*f = value
	return nil
}

func (f *FixedPoint[R, X]) setPair(p pair) error {
	if err := p.validate(); err != nil {
		return err
	}
	lo, hi := Limits[R]()
	if *p.Value < int64(lo) || *p.Value > int64(hi) {
		return errors.Wrapf(ErrRange, "%d does not fit %s", *p.Value, RepName[R]())
	}
	*f = fromScaled[R, X](R(*p.Value), NewScale(*p.Scale))
	return nil
}
