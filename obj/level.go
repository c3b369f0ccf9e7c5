package obj

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/revenant/common"
	"github.com/milk9111/revenant/prefabs"
)

// PointOfInterest is a static camera hint: entering its radius overrides the
// exploration-mode target zoom and surfaces a message.
type PointOfInterest struct {
	Pos     cp.Vector
	Radius  float64
	Zoom    float64
	Message string
	Color   color.NRGBA
}

// Level is the live, deep-copied form of a prefabs.LevelSpec.
type Level struct {
	ID         string
	Name       string
	Start      cp.Vector
	KillPlaneY float64
	Platforms  []Platform
	POIs       []PointOfInterest
}

// NewLevel deep-copies a validated level spec into live form. The spec stays
// untouched so replays start from identical templates.
func NewLevel(spec *prefabs.LevelSpec) (*Level, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	l := &Level{
		ID:         spec.ID,
		Name:       spec.Name,
		Start:      cp.Vector{X: spec.Start.X, Y: spec.Start.Y},
		KillPlaneY: spec.KillPlaneY,
		Platforms:  make([]Platform, 0, len(spec.Platforms)),
		POIs:       make([]PointOfInterest, 0, len(spec.POIs)),
	}

	for _, p := range spec.Platforms {
		kind := PlatformSolid
		if p.Kind == "oneway" {
			kind = PlatformOneway
		}
		l.Platforms = append(l.Platforms, Platform{
			Rect: common.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height},
			Kind: kind,
		})
	}

	for _, p := range spec.POIs {
		l.POIs = append(l.POIs, PointOfInterest{
			Pos:     cp.Vector{X: p.X, Y: p.Y},
			Radius:  p.Radius,
			Zoom:    p.Zoom,
			Message: p.Message,
			Color:   parseHexColor(p.Color),
		})
	}

	return l, nil
}

func parseHexColor(s string) color.NRGBA {
	c := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return c
	}
	parse := func(start int) (uint8, bool) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err == nil
	}
	r, ok1 := parse(0)
	g, ok2 := parse(2)
	b, ok3 := parse(4)
	if !ok1 || !ok2 || !ok3 {
		return c
	}
	c.R, c.G, c.B = r, g, b
	if len(s) == 8 {
		if a, ok := parse(6); ok {
			c.A = a
		}
	}
	return c
}
