package line

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"grapher/hal"
)

// Line is a parsed equation y = Slope*x + Intercept.
type Line struct {
	Name      string
	Slope     float64
	Intercept float64
	Color     Color
}

// Eval returns the value of the line at x.
func (l Line) Eval(x float64) float64 {
	return l.Slope*x + l.Intercept
}

var (
	ErrBraces      = errors.New("argument must be wrapped in braces")
	ErrFieldCount  = errors.New("want 3 comma separated fields")
	ErrTermCount   = errors.New("want a slope term and a constant term")
	ErrCoefficient = errors.New("invalid slope term")
	ErrConstant    = errors.New("invalid constant term")
)

// SpecError reports why a line argument was rejected.
type SpecError struct {
	Spec string
	Err  error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("unable to parse argument %s: %v", e.Spec, e.Err)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}

// Parse turns "{name,equation,color}" into a Line.
func Parse(spec string) (Line, error) {
	s := strings.TrimSpace(spec)
	if len(s) < 2 || !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return Line{}, &SpecError{Spec: spec, Err: ErrBraces}
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 3 {
		return Line{}, &SpecError{Spec: spec, Err: ErrFieldCount}
	}

	m, b, err := parseExpr(parts[1])
	if err != nil {
		return Line{}, &SpecError{Spec: spec, Err: err}
	}
	return Line{
		Name:      parts[0],
		Slope:     m,
		Intercept: b,
		Color:     ParseColor(parts[2]),
	}, nil
}

// parseExpr splits "mx+b" into its slope and intercept. Every minus sign is
// rewritten as "+-" so the expression always splits on '+'.
func parseExpr(expr string) (m, b float64, err error) {
	expr = strings.ReplaceAll(strings.TrimSpace(expr), " ", "")
	expr = strings.ReplaceAll(expr, "+-", "-")
	expr = strings.ReplaceAll(expr, "-+", "-")
	expr = strings.ReplaceAll(expr, "-", "+-")
	if !strings.Contains(expr, "+") {
		expr += "+0"
	}

	terms := strings.Split(expr, "+")
	// A leading sign leaves an empty first term.
	if len(terms) > 0 && terms[0] == "" {
		terms = terms[1:]
	}
	if len(terms) == 1 {
		terms = append(terms, "0")
	}
	if len(terms) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrTermCount, expr)
	}

	m, err = parseCoefficient(terms[0])
	if err != nil {
		return 0, 0, err
	}
	b, err = strconv.ParseFloat(terms[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrConstant, terms[1])
	}
	return m, b, nil
}

func parseCoefficient(term string) (float64, error) {
	coef, ok := strings.CutSuffix(term, "x")
	if !ok {
		return 0, fmt.Errorf("%w: %q has no x", ErrCoefficient, term)
	}
	switch coef {
	case "":
		return 1, nil
	case "-":
		return -1, nil
	}
	v, err := strconv.ParseFloat(coef, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCoefficient, term)
	}
	return v, nil
}

// ParseAll parses every spec in order. Rejected specs are reported on errs and
// skipped; accepted ones are echoed on out as "line<N>: <spec>".
func ParseAll(specs []string, out, errs hal.Logger) []Line {
	lines := make([]Line, 0, len(specs))
	for i, spec := range specs {
		l, err := Parse(spec)
		if err != nil {
			if errs != nil {
				errs.WriteLineString(fmt.Sprintf("Unable to parse argument: %s: %v", spec, errors.Unwrap(err)))
			}
			continue
		}
		lines = append(lines, l)
		if out != nil {
			out.WriteLineString(fmt.Sprintf("line%d: %s", i+1, spec))
		}
	}
	return lines
}
