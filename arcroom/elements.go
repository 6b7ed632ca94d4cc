package arcroom

// ElementClass enumerates the surface element types the external
// detector reports.
type ElementClass string

const (
	ElementOutlet      ElementClass = "outlet"
	ElementLightSwitch ElementClass = "light_switch"
	ElementWindow      ElementClass = "window"
	ElementDoor        ElementClass = "door"
)

// An Element is a detected wall-surface feature such as an outlet or a
// window. Elements come from an external detector and are attached to
// walls by the caller; the reconstruction core never recomputes them.
type Element struct {
	Class      ElementClass
	Bounds     WallBound
	Confidence float64

	// CenterX, CenterY locate the element's center in frame pixels.
	CenterX float64
	CenterY float64
}
