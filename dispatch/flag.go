package dispatch

import (
	"sort"
	"strconv"
	"time"
)

// FlagType represents the runtime type of a flag. It is never declared
// directly: the type of a flag is inferred from the static type of its
// default value.
type FlagType string

const (
	FlagTypeString    FlagType = "string"
	FlagTypeNumber    FlagType = "number"
	FlagTypeBool      FlagType = "bool"
	FlagTypeTimestamp FlagType = "timestamp"
)

// FlagDef declares a single flag. The flag's type comes from the dynamic type
// of Default: string, bool, int/int64/float64 (all treated as number) or
// time.Time. Description is mandatory and enforced at registration.
type FlagDef struct {
	Default     any
	Description string
	EnvVar      string
}

// NamedFlag is a FlagDef annotated with its declared name and resolved type.
type NamedFlag struct {
	Name string
	Type FlagType
	FlagDef
}

// RequiresValue returns true if the flag consumes the token following its
// marker. Boolean flags are presence-triggered and never consume a token.
func (f *NamedFlag) RequiresValue() bool {
	return f.Type != FlagTypeBool
}

// flagTypeOf infers the flag type from a default value. The second return is
// false for unsupported default types; the registry turns that into a schema
// error before any parsing happens.
func flagTypeOf(def any) (FlagType, bool) {
	switch def.(type) {
	case string:
		return FlagTypeString, true
	case bool:
		return FlagTypeBool, true
	case int, int64, float64:
		return FlagTypeNumber, true
	case time.Time:
		return FlagTypeTimestamp, true
	default:
		return "", false
	}
}

// defaultValue returns the default coerced to the flag's canonical runtime
// representation (numbers are always float64 in the parsed value map).
func (f *NamedFlag) defaultValue() any {
	switch v := f.Default.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return f.Default
	}
}

// displayDefault returns the default formatted for help output, or "" when
// the default is a zero value and should not be shown.
func (f *NamedFlag) displayDefault() string {
	switch v := f.Default.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return ""
	case int:
		if v != 0 {
			return strconv.Itoa(v)
		}
		return ""
	case int64:
		if v != 0 {
			return strconv.FormatInt(v, 10)
		}
		return ""
	case float64:
		if v != 0 {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		return ""
	case time.Time:
		if !v.IsZero() {
			return v.Format(time.RFC3339)
		}
		return ""
	default:
		return ""
	}
}

// normalizeFlags converts a flag definition map into a list of NamedFlag
// sorted ascending by name. Pure; malformed entries are caught by the
// registry's validation, not here.
func normalizeFlags(flags map[string]FlagDef) []NamedFlag {
	specs := make([]NamedFlag, 0, len(flags))
	for name, def := range flags {
		typ, _ := flagTypeOf(def.Default)
		specs = append(specs, NamedFlag{Name: name, Type: typ, FlagDef: def})
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}

// specsWithHelp returns the command's normalized flag list with the implicit
// help flag merged in at its sorted position, so alias assignment and help
// rendering treat it like any declared flag.
func specsWithHelp(flags map[string]FlagDef) []NamedFlag {
	specs := append(normalizeFlags(flags), helpFlag)
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}

// assignShortAliases derives the single-letter alias for each flag: the first
// letter of its name, claimed on a first-come basis in slice order. A flag
// whose letter is already claimed gets no alias. The parser and the help
// renderer share this assignment so the two can never disagree.
func assignShortAliases(specs []NamedFlag) map[string]byte {
	aliases := make(map[string]byte, len(specs))
	claimed := make(map[byte]bool, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			continue
		}
		letter := spec.Name[0]
		if claimed[letter] {
			continue
		}
		claimed[letter] = true
		aliases[spec.Name] = letter
	}
	return aliases
}
