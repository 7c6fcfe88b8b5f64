package shape

import (
	"fmt"
	"strings"
)

// Kind identifies a shape variant.
type Kind int

const (
	KindScribble Kind = iota
	KindPolyline
	KindRectangle
	KindEllipse
	KindPolygon
)

// Kinds lists every variant in toolbar order.
var Kinds = []Kind{KindScribble, KindPolyline, KindRectangle, KindEllipse, KindPolygon}

func (k Kind) String() string {
	switch k {
	case KindScribble:
		return "scribble"
	case KindPolyline:
		return "polyline"
	case KindRectangle:
		return "rect"
	case KindEllipse:
		return "ellipse"
	case KindPolygon:
		return "polygon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Label is the prefix of generated shape names, e.g. "Rect" in "Rect3".
func (k Kind) Label() string {
	switch k {
	case KindScribble:
		return "Scribble"
	case KindPolyline:
		return "Polyline"
	case KindRectangle:
		return "Rect"
	case KindEllipse:
		return "Ellipse"
	case KindPolygon:
		return "Polygon"
	default:
		return "Shape"
	}
}

// MultiStep reports whether construction continues past the first
// pointer-up and ends on a double-click.
func (k Kind) MultiStep() bool {
	return k == KindPolyline || k == KindPolygon
}

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool {
	_, ok := builders[k]
	return ok
}

// ParseKind accepts the toolbar names ("rect" or "rectangle" for rectangles).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scribble":
		return KindScribble, nil
	case "polyline":
		return KindPolyline, nil
	case "rect", "rectangle":
		return KindRectangle, nil
	case "ellipse":
		return KindEllipse, nil
	case "polygon":
		return KindPolygon, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// UpdateKind tells a variant which step of construction produced the update.
type UpdateKind int

const (
	// UpdateInitial is the first pointer-down that creates the shape.
	UpdateInitial UpdateKind = iota
	// UpdateDrag is a pointer move while the shape is being built.
	UpdateDrag
	// UpdateStep is a pointer-down placing another fixed vertex.
	UpdateStep
	// UpdateFinalize is the double-click that completes the shape.
	UpdateFinalize
)

func (u UpdateKind) String() string {
	switch u {
	case UpdateInitial:
		return "initial"
	case UpdateDrag:
		return "drag"
	case UpdateStep:
		return "step"
	case UpdateFinalize:
		return "finalize"
	default:
		return fmt.Sprintf("UpdateKind(%d)", int(u))
	}
}
