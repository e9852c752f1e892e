package enum

import "fmt"

// Policy decides what the calculator does with inputs that would produce
// IEEE-754 special values (zero or negative odds, non-finite amounts).
type Policy string
type OutputFormat string

const (
	// PolicyStrict validates inputs and returns a validation error.
	PolicyStrict Policy = "strict"
	// PolicyPropagate runs the arithmetic unchecked and lets NaN/Inf through.
	PolicyPropagate Policy = "propagate"
)

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyStrict, PolicyPropagate:
		return p, nil
	case "":
		return PolicyStrict, nil
	}
	return "", fmt.Errorf("unknown policy %q (want %s or %s)", s, PolicyStrict, PolicyPropagate)
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputTable, OutputJSON, OutputYAML:
		return f, nil
	case "":
		return OutputTable, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// IsStructured reports whether the format is machine readable.
func (f OutputFormat) IsStructured() bool {
	return f == OutputJSON || f == OutputYAML
}
