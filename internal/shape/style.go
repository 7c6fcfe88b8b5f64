package shape

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// NoFill marks a shape that is stroked only.
	NoFill = "#FDFDFD"

	// SelectionColor strokes the outline of the selected shape.
	SelectionColor = "#FFFF00"

	// GuideColor is used for the bounding box and anchor handles.
	GuideColor = "#666666"

	DefaultBorderColor = "#000000"
	DefaultBorderWidth = 1

	// MaxBorderWidth matches the largest entry of the width dropdown.
	MaxBorderWidth = 9
)

var (
	ErrUnknownKind        = errors.New("unknown shape kind")
	ErrUnknownBorderStyle = errors.New("unknown border style")
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidBorderWidth = errors.New("invalid border width")
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// BorderStyle selects the dash pattern used when stroking a shape.
type BorderStyle int

const (
	BorderSolid BorderStyle = iota
	BorderDashed
	BorderDotted
)

func (b BorderStyle) String() string {
	switch b {
	case BorderSolid:
		return "solid"
	case BorderDashed:
		return "dashed"
	case BorderDotted:
		return "dotted"
	default:
		return fmt.Sprintf("BorderStyle(%d)", int(b))
	}
}

// ParseBorderStyle accepts "solid", "dashed" and "dotted", as well as the
// "dashes" and "dots" spellings used by older toolbars.
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solid":
		return BorderSolid, nil
	case "dashed", "dashes":
		return BorderDashed, nil
	case "dotted", "dots":
		return BorderDotted, nil
	default:
		return BorderSolid, fmt.Errorf("%w: %q", ErrUnknownBorderStyle, s)
	}
}

func (b BorderStyle) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BorderStyle) UnmarshalText(text []byte) error {
	parsed, err := ParseBorderStyle(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Style is the paint state owned by a single shape.
type Style struct {
	FillColor   string      `json:"fillColor"`
	BorderColor string      `json:"borderColor"`
	BorderStyle BorderStyle `json:"borderStyle"`
	BorderWidth int         `json:"borderWidth"`
}

// DefaultStyle is unfilled, black, solid and one unit wide.
func DefaultStyle() Style {
	return Style{
		FillColor:   NoFill,
		BorderColor: DefaultBorderColor,
		BorderStyle: BorderSolid,
		BorderWidth: DefaultBorderWidth,
	}
}

// Filled reports whether the style paints the interior.
func (s Style) Filled() bool {
	return s.FillColor != NoFill
}

// DashPattern returns the alternating dash/gap lengths for the border,
// or nil for a solid line. The width used for the pattern is floored at 2
// so that thin borders still show visible dashes.
func (s Style) DashPattern() []float64 {
	width := float64(max(2, s.BorderWidth))

	switch s.BorderStyle {
	case BorderDashed:
		return []float64{width * 2, width}
	case BorderDotted:
		return []float64{width}
	default:
		return nil
	}
}

// ValidateColor checks for a #RGB or #RRGGBB hex color.
func ValidateColor(c string) error {
	if !hexColor.MatchString(c) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}
	return nil
}

// ValidateBorderWidth checks that width is within 1..MaxBorderWidth.
func ValidateBorderWidth(width int) error {
	if width < 1 || width > MaxBorderWidth {
		return fmt.Errorf("%w: %d", ErrInvalidBorderWidth, width)
	}
	return nil
}
