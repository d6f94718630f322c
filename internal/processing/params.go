package processing

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/RMahshie/filterform/pkg/models"
)

// Form field names posted by the design page
const (
	FieldCutoff = "fc"
	FieldGain   = "gain"
	FieldC1     = "c1"
	FieldApprox = "approx"
)

var (
	// ErrMissingField is returned when a form field is absent
	ErrMissingField = errors.New("missing form field")
	// ErrInvalidNumber is returned when a numeric field does not parse as a float
	ErrInvalidNumber = errors.New("invalid number")
)

// ParseForm reads filter parameters from submitted form values.
// Fields are checked in form order and the first problem is returned, so a
// bad cutoff is reported even when approx is also missing.
func ParseForm(values url.Values) (models.FilterParameters, error) {
	var params models.FilterParameters

	numbers := []struct {
		field string
		dst   *float64
	}{
		{FieldCutoff, &params.CutoffFrequency},
		{FieldGain, &params.Gain},
		{FieldC1, &params.C1},
	}
	for _, n := range numbers {
		raw, err := field(values, n.field)
		if err != nil {
			return params, err
		}
		if *n.dst, err = parseNumber(n.field, raw); err != nil {
			return params, err
		}
	}

	approx, err := field(values, FieldApprox)
	if err != nil {
		return params, err
	}
	params.Approximation = approx

	return params, nil
}

func field(values url.Values, name string) (string, error) {
	if _, ok := values[name]; !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return values.Get(name), nil
}

// parseNumber accepts decimal floats after trimming whitespace, including a
// signed inf or nan. Hex floats are refused. Values beyond float64 range
// saturate to +/-Inf.
func parseNumber(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	unsigned := strings.TrimLeft(s, "+-")
	if len(s)-len(unsigned) > 1 || hasHexPrefix(unsigned) {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, field, raw)
	}
	if strings.EqualFold(unsigned, "nan") {
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, field, raw)
	}
	return v, nil
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
