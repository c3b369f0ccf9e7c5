package obj

import "github.com/milk9111/revenant/common"

// PlatformKind distinguishes solid geometry from drop-through ledges.
type PlatformKind int

const (
	PlatformSolid PlatformKind = iota
	PlatformOneway
)

// Platform is a static world rectangle. Immutable after level load.
type Platform struct {
	Rect common.Rect
	Kind PlatformKind
}
