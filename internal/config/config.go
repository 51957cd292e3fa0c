package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"grapher/hal"

	"github.com/BurntSushi/toml"
)

// MaxDimension bounds the panel so pixel coordinates fit int16.
const MaxDimension = 16384

type Config struct {
	Positive bool
	Width    int
	Height   int
	Title    string
	// Specs are the raw "{name,equation,color}" arguments, in input order.
	Specs []string
}

// File is the on-disk form read by Load.
type File struct {
	Positive bool       `toml:"positive"`
	Width    int        `toml:"width"`
	Height   int        `toml:"height"`
	Title    string     `toml:"title"`
	Lines    []string   `toml:"lines"`
	Line     []FileLine `toml:"line"`
}

// FileLine is a structured line entry ([[line]] table).
type FileLine struct {
	Name     string `toml:"name"`
	Equation string `toml:"equation"`
	Color    string `toml:"color"`
}

// Spec renders the entry in argument form.
func (l FileLine) Spec() string {
	return "{" + l.Name + "," + l.Equation + "," + l.Color + "}"
}

type Error struct {
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrMissingArgs = errors.New("want positive, dimension and title arguments")
	ErrDimension   = errors.New("want <width>,<height> with positive integers")
)

// FromArgs reads the positional arguments: positive, dimension, title, then
// zero or more line specs.
func FromArgs(args []string) (Config, error) {
	if len(args) < 3 {
		return Config{}, &Error{Err: ErrMissingArgs}
	}
	w, h, err := ParseDimension(args[1])
	if err != nil {
		return Config{}, err
	}
	return Config{
		Positive: ParseBool(args[0]),
		Width:    w,
		Height:   h,
		Title:    Title(args[2]),
		Specs:    append([]string(nil), args[3:]...),
	}, nil
}

// Load reads a TOML file. Every extra argument is a line spec appended after
// the file's own lines.
func Load(path string, extra []string) (Config, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Config{}, &Error{Field: path, Err: err}
	}
	if err := checkDimension(f.Width, f.Height); err != nil {
		return Config{}, err
	}

	specs := make([]string, 0, len(f.Lines)+len(f.Line)+len(extra))
	specs = append(specs, f.Lines...)
	for _, l := range f.Line {
		specs = append(specs, l.Spec())
	}
	specs = append(specs, extra...)

	return Config{
		Positive: f.Positive,
		Width:    f.Width,
		Height:   f.Height,
		Title:    Title(f.Title),
		Specs:    specs,
	}, nil
}

// ParseBool accepts "true" in any case; everything else is false.
func ParseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// ParseDimension parses "<width>,<height>".
func ParseDimension(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, &Error{Field: "dimension", Err: fmt.Errorf("%w: %q", ErrDimension, s)}
	}
	w, err = strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, &Error{Field: "dimension", Err: fmt.Errorf("%w: %q", ErrDimension, s)}
	}
	h, err = strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, &Error{Field: "dimension", Err: fmt.Errorf("%w: %q", ErrDimension, s)}
	}
	if err := checkDimension(w, h); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func checkDimension(w, h int) error {
	if w <= 0 || h <= 0 || w > MaxDimension || h > MaxDimension {
		return &Error{Field: "dimension", Err: fmt.Errorf("%w: %dx%d", ErrDimension, w, h)}
	}
	return nil
}

// Title turns underscores into spaces.
func Title(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// Echo writes the startup settings, one per line.
func (c Config) Echo(out hal.Logger) {
	out.WriteLineString(fmt.Sprintf("positive: %t", c.Positive))
	out.WriteLineString(fmt.Sprintf("dimension: %d,%d", c.Width, c.Height))
	out.WriteLineString("title: " + c.Title)
}

// HAL returns the framebuffer and window settings.
func (c Config) HAL() hal.Config {
	return hal.Config{Width: c.Width, Height: c.Height, Title: c.Title}
}
