package gallery

import "math"

// MobileMaxWidth is the widest viewport, in CSS pixels, treated as a phone.
const MobileMaxWidth = 639

// DeviceClass selects padding and corner radius for the stage.
type DeviceClass int

const (
	Desktop DeviceClass = iota
	Mobile
)

func (d DeviceClass) String() string {
	if d == Mobile {
		return "mobile"
	}
	return "desktop"
}

// ClassFor returns the device class for a viewport width.
func ClassFor(viewportWidth float64) DeviceClass {
	if viewportWidth <= MobileMaxWidth {
		return Mobile
	}
	return Desktop
}

// Rect is an on-screen bounding box in pixels. Rects are values: callers
// replace them wholesale instead of mutating fields in place.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Radius float64 `json:"radius,omitempty"`
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size is a width/height pair, used for intrinsic media and stage dimensions.
type Size struct {
	Width  float64
	Height float64
}

// Viewport is the visible browser area.
type Viewport struct {
	Width  float64
	Height float64
}

// Padding is the space the stage keeps from the viewport edges.
type Padding struct {
	X float64
	Y float64
}

// StageOptions tunes the stage computation.
type StageOptions struct {
	Desktop       Padding
	Mobile        Padding
	MinHeight     float64
	AspectW       float64
	AspectH       float64
	RadiusDesktop float64
	RadiusMobile  float64
}

// DefaultStageOptions returns the 4:3 stage used by the concepts page.
func DefaultStageOptions() StageOptions {
	return StageOptions{
		Desktop:       Padding{X: 48, Y: 64},
		Mobile:        Padding{X: 18, Y: 96},
		MinHeight:     240,
		AspectW:       4,
		AspectH:       3,
		RadiusDesktop: 20,
		RadiusMobile:  18,
	}
}

// StageRect computes the destination box of the expanded lightbox: as wide
// as the grid allows, 4:3, centred in the viewport. It returns false when the
// viewport has no area.
func StageRect(vp Viewport, gridWidth float64, opts StageOptions) (Rect, bool) {
	if !finitePositive(vp.Width) || !finitePositive(vp.Height) {
		return Rect{}, false
	}
	if opts.AspectW <= 0 || opts.AspectH <= 0 {
		opts.AspectW, opts.AspectH = 4, 3
	}

	class := ClassFor(vp.Width)
	pad, radius := opts.Desktop, opts.RadiusDesktop
	if class == Mobile {
		pad, radius = opts.Mobile, opts.RadiusMobile
	}

	avail := vp.Width - 2*pad.X
	if avail <= 0 {
		avail = vp.Width
	}
	w := avail
	if finitePositive(gridWidth) {
		w = math.Min(gridWidth, avail)
	}
	h := w * opts.AspectH / opts.AspectW

	maxH := math.Max(opts.MinHeight, vp.Height-2*pad.Y)
	if h > maxH {
		h = maxH
		w = h * opts.AspectW / opts.AspectH
	}
	// MinHeight can exceed a very short viewport.
	if h > vp.Height {
		h = vp.Height
		w = h * opts.AspectW / opts.AspectH
	}

	return Rect{
		Top:    (vp.Height - h) / 2,
		Left:   (vp.Width - w) / 2,
		Width:  w,
		Height: h,
		Radius: radius,
	}, true
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
