package dispatch

import (
	"math"
	"strconv"
	"time"
)

// convertValue coerces a raw string token into the runtime type implied by a
// flag's default value. Numbers parse as float64 literals; timestamps parse
// as RFC 3339. Booleans use truthy coercion: this path is only reachable for
// environment and default values, since command-line booleans are
// presence-triggered and never consume a token.
func convertValue(raw string, typ FlagType) (any, error) {
	switch typ {
	case FlagTypeString:
		return raw, nil
	case FlagTypeNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) {
			return nil, &ConversionError{Raw: raw, Type: typ}
		}
		return f, nil
	case FlagTypeBool:
		return truthy(raw), nil
	case FlagTypeTimestamp:
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, &ConversionError{Raw: raw, Type: typ}
		}
		return t, nil
	default:
		return nil, schemaErrorf("unknown flag type %q", string(typ))
	}
}

// truthy mirrors the coercion the flag schema was designed around: any
// non-empty string is true, including "false".
func truthy(raw string) bool {
	return raw != ""
}
