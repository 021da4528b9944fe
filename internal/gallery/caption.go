package gallery

import "math"

// CaptionLayout positions the lightbox caption relative to the stage.
type CaptionLayout struct {
	Left     float64 `json:"left"`
	Bottom   float64 `json:"bottom"`
	MaxWidth float64 `json:"max_width"`
}

// CaptionOptions are the inner paddings and the preferred minimum width.
type CaptionOptions struct {
	PadX     float64
	PadY     float64
	MinWidth float64
}

// DefaultCaptionOptions matches the desktop caption styling.
func DefaultCaptionOptions() CaptionOptions {
	return CaptionOptions{PadX: 22, PadY: 18, MinWidth: 220}
}

// Fit describes media displayed with "contain" fit inside a stage.
type Fit struct {
	Scale   float64
	Display Size
	OffsetX float64
	OffsetY float64
}

// ContainFit scales media to fit entirely inside stage, letterboxing the rest.
func ContainFit(media, stage Size) (Fit, bool) {
	if !finitePositive(media.Width) || !finitePositive(media.Height) ||
		!finitePositive(stage.Width) || !finitePositive(stage.Height) {
		return Fit{}, false
	}
	// The fitting side is pinned to the stage so rounding never leaves a
	// negative letterbox.
	var scale float64
	var disp Size
	if sx, sy := stage.Width/media.Width, stage.Height/media.Height; sx <= sy {
		scale = sx
		disp = Size{Width: stage.Width, Height: math.Min(media.Height*sx, stage.Height)}
	} else {
		scale = sy
		disp = Size{Width: math.Min(media.Width*sy, stage.Width), Height: stage.Height}
	}
	return Fit{
		Scale:   scale,
		Display: disp,
		OffsetX: (stage.Width - disp.Width) / 2,
		OffsetY: (stage.Height - disp.Height) / 2,
	}, true
}

// PlaceCaption anchors the caption to the bottom-left corner of the visible
// picture so it never sits over letterbox bars. It returns false until both
// the media and the stage have a size.
func PlaceCaption(media, stage Size, opts CaptionOptions) (CaptionLayout, bool) {
	fit, ok := ContainFit(media, stage)
	if !ok {
		return CaptionLayout{}, false
	}

	dispW := fit.Display.Width
	padX := math.Min(opts.PadX, dispW/4)
	maxW := math.Max(opts.MinWidth, dispW-2*padX)
	// The minimum width only applies while it still fits inside the picture.
	maxW = math.Min(maxW, dispW-padX)

	bottomLetterbox := stage.Height - (fit.OffsetY + fit.Display.Height)
	return CaptionLayout{
		Left:     fit.OffsetX + padX,
		Bottom:   bottomLetterbox + opts.PadY,
		MaxWidth: maxW,
	}, true
}
