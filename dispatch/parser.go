package dispatch

import (
	"regexp"
	"strings"

	"github.com/dzonerzy/go-dispatch/internal/fuzzy"
)

// flagToken classifies a flag marker: one dash for a short flag, two for a
// long flag. Anything that does not match is a positional argument (or the
// value of a pending valued flag).
var flagToken = regexp.MustCompile(`^-(-?)(\S+)$`)

// helpFlag is the implicit boolean flag appended to every command's spec list
// before parsing. It has no environment binding.
var helpFlag = NamedFlag{
	Name: "help",
	Type: FlagTypeBool,
	FlagDef: FlagDef{
		Default:     false,
		Description: "Show command help",
	},
}

// parse walks the remaining arguments left to right with one token of
// lookahead state (the pending valued flag), classifying each token as a flag
// marker, a flag value, or a positional argument. After the pass it applies
// environment fallback and defaults so the returned map contains an entry for
// every declared flag; handlers rely on that.
func (d *Dispatcher) parse(cmd *Command, args []string) (map[string]any, []string, error) {
	specs := specsWithHelp(cmd.Flags)
	aliases := assignShortAliases(specs)

	values := make(map[string]any, len(specs))
	var positional []string
	var pending *NamedFlag
	terminated := false

	for _, tok := range args {
		if pending != nil {
			value, err := convertValue(tok, pending.Type)
			if err != nil {
				return nil, nil, d.conversionFailure(cmd, pending, err)
			}
			values[pending.Name] = value
			pending = nil
			continue
		}

		if terminated {
			positional = append(positional, tok)
			continue
		}
		if tok == "--" {
			terminated = true
			continue
		}

		m := flagToken.FindStringSubmatch(tok)
		if m == nil {
			positional = append(positional, tok)
			continue
		}

		var spec *NamedFlag
		if m[1] == "-" {
			spec = findLongFlag(specs, m[2])
		} else {
			spec = findShortFlag(specs, aliases, m[2])
		}
		if spec == nil {
			return nil, nil, d.unknownFlag(cmd, specs, m[2])
		}

		if !spec.RequiresValue() {
			values[spec.Name] = true
			continue
		}
		pending = spec
	}

	if pending != nil {
		return nil, nil, &UsageError{
			Type:    ErrorTypeMissingValue,
			Message: "missing value for flag --" + pending.Name,
			Command: cmd,
		}
	}

	if err := d.applyFallbacks(cmd, specs, values); err != nil {
		return nil, nil, err
	}
	return values, positional, nil
}

// findLongFlag matches a long flag marker by exact name.
func findLongFlag(specs []NamedFlag, name string) *NamedFlag {
	for i := range specs {
		if specs[i].Name == name {
			return &specs[i]
		}
	}
	return nil
}

// findShortFlag matches a short flag marker: a flag matches when its assigned
// alias letter appears anywhere in the token's letters, so -f selects a flag
// named "force". Flags without an alias (a collision lost to an earlier flag
// in sort order) cannot be matched by short form.
func findShortFlag(specs []NamedFlag, aliases map[string]byte, letters string) *NamedFlag {
	for i := range specs {
		alias, ok := aliases[specs[i].Name]
		if !ok {
			continue
		}
		if strings.IndexByte(letters, alias) >= 0 {
			return &specs[i]
		}
	}
	return nil
}

// applyFallbacks fills in every flag not supplied on the command line: the
// converted environment value when the flag declares a variable that is set,
// otherwise the declared default. Explicit command-line values always win.
func (d *Dispatcher) applyFallbacks(cmd *Command, specs []NamedFlag, values map[string]any) error {
	for i := range specs {
		spec := &specs[i]
		if _, ok := values[spec.Name]; ok {
			continue
		}
		if spec.EnvVar != "" {
			if raw, ok := d.lookupEnv(spec.EnvVar); ok {
				value, err := convertValue(raw, spec.Type)
				if err != nil {
					return d.conversionFailure(cmd, spec, err)
				}
				values[spec.Name] = value
				continue
			}
		}
		values[spec.Name] = spec.defaultValue()
	}
	return nil
}

// conversionFailure surfaces a value-conversion error as a command-scoped
// usage failure, preserving the offending raw token in the message.
func (d *Dispatcher) conversionFailure(cmd *Command, spec *NamedFlag, err error) error {
	return &UsageError{
		Type:    ErrorTypeConversion,
		Message: "invalid value for flag --" + spec.Name + ": " + err.Error(),
		Command: cmd,
	}
}

// unknownFlag builds the usage failure for an unrecognized flag marker with a
// fuzzy suggestion against the command's declared flag names.
func (d *Dispatcher) unknownFlag(cmd *Command, specs []NamedFlag, name string) error {
	names := make([]string, 0, len(specs))
	for i := range specs {
		names = append(names, specs[i].Name)
	}
	return &UsageError{
		Type:       ErrorTypeUnknownFlag,
		Message:    "unknown flag: " + name,
		Command:    cmd,
		Suggestion: fuzzy.Closest(name, names, 2),
	}
}
