// Package stock defines the film stock presets: the closed set of stock IDs
// and the baked-in tuning parameters each one carries. Parameters are fixed at
// compile time; callers select a stock, they never edit one.
package stock

import "image/color"

// ID names one film stock preset.
type ID string

const (
	AgedGazette  ID = "aged-gazette"
	NewspaperBW  ID = "newspaper-bw"
	Mimeograph   ID = "mimeograph"
	Blueprint    ID = "blueprint"
	BadPhotocopy ID = "bad-photocopy"
	Thermal      ID = "thermal"
	Mag70s       ID = "70s-mag"
	Pop80s       ID = "80s-pop"
	Washed90s    ID = "90s-washed"
	Polaroid1    ID = "polaroid-1"
	Polaroid2    ID = "polaroid-2"
	Polaroid3    ID = "polaroid-3"
	Misaligned   ID = "misaligned"
	VHSWorn      ID = "vhs-worn"
	DVCam        ID = "dv-cam"
	Comics60s    ID = "comics-60s"
	Comics80s    ID = "comics-80s"
)

// Kind selects which transform family runs first in the pipeline.
type Kind uint8

const (
	KindDuotone Kind = iota
	KindThreshold
	KindGrade
	KindMisaligned
	KindVHS
	KindDVCam
	KindHalftone
	KindEdgeInk
)

// ScratchMode controls the dust/hair scratch overlay.
type ScratchMode uint8

const (
	ScratchNone ScratchMode = iota
	ScratchNormal
	ScratchExtreme
)

// Paper selects the instant film frame palette. PaperNone means no framing.
type Paper uint8

const (
	PaperNone Paper = iota
	PaperClean
	PaperCool
	PaperAged
)

// Duotone maps luma onto an ink/paper color pair. When Flat is set the output
// is plain grayscale (capped at WhiteCap) and the ink/paper colors are unused.
type Duotone struct {
	Ink      color.NRGBA
	Paper    color.NRGBA
	Flat     bool
	NoiseAmp float64
	Contrast float64
	WhiteCap uint8
}

// Threshold binarizes noisy luma into two fixed output levels. JamChance is
// the per-pixel probability of a bright "paper jam" pixel.
type Threshold struct {
	Level     float64
	NoiseAmp  float64
	Ink       color.NRGBA
	Paper     color.NRGBA
	JamChance float64
}

// Grade is a per-channel gain/offset color cast with a highlight/shadow split
// around mid-level 128 and a luma-relative saturation adjustment.
type Grade struct {
	RGain, GGain, BGain       float64
	ROffset, GOffset, BOffset float64
	HighlightMul, ShadowMul   float64
	Saturation                float64
	ClipHighlights            bool
}

// Profile is the complete baked-in parameter set for one stock.
type Profile struct {
	ID   ID
	Name string
	Kind Kind

	Duotone   Duotone
	Threshold Threshold
	Grade     Grade

	Vignette    float64 // 0 skips the vignette pass
	Scratches   ScratchMode
	Softness    bool // instant film blur/bloom pass
	ExpiredTint bool // pale pink screen tint on top of the softness pass
	Tracking    bool // VHS tracking noise band
	DateStamp   bool // camcorder timestamp burn-in
	Paper       Paper
}

// Framed reports whether the stock composes into an instant film frame.
func (p Profile) Framed() bool { return p.Paper != PaperNone }

var profiles = map[ID]Profile{
	AgedGazette: {
		ID: AgedGazette, Name: "Aged Gazette", Kind: KindDuotone,
		Duotone: Duotone{
			Ink:      color.NRGBA{R: 56, G: 48, B: 38, A: 255},
			Paper:    color.NRGBA{R: 233, G: 224, B: 202, A: 255},
			NoiseAmp: 24, Contrast: 1.4, WhiteCap: 255,
		},
		Vignette: 0.6, Scratches: ScratchNormal,
	},
	NewspaperBW: {
		ID: NewspaperBW, Name: "Newspaper B&W", Kind: KindDuotone,
		Duotone: Duotone{
			Flat: true, NoiseAmp: 18, Contrast: 2.0, WhiteCap: 245,
		},
		Vignette: 0.2, Scratches: ScratchNormal,
	},
	Mimeograph: {
		ID: Mimeograph, Name: "Mimeograph", Kind: KindDuotone,
		Duotone: Duotone{
			Ink:      color.NRGBA{R: 88, G: 58, B: 130, A: 255},
			Paper:    color.NRGBA{R: 236, G: 231, B: 240, A: 255},
			NoiseAmp: 20, Contrast: 1.5, WhiteCap: 255,
		},
		Vignette: 0.6, Scratches: ScratchNormal,
	},
	Blueprint: {
		ID: Blueprint, Name: "Blueprint", Kind: KindDuotone,
		Duotone: Duotone{
			Ink:      color.NRGBA{R: 10, G: 25, B: 85, A: 255},
			Paper:    color.NRGBA{R: 220, G: 245, B: 255, A: 255},
			Contrast: 2.0, WhiteCap: 255,
		},
		Vignette: 0.2,
	},
	BadPhotocopy: {
		ID: BadPhotocopy, Name: "Bad Photocopy", Kind: KindThreshold,
		Threshold: Threshold{
			Level: 120, NoiseAmp: 60,
			Ink:   color.NRGBA{R: 25, G: 25, B: 28, A: 255},
			Paper: color.NRGBA{R: 235, G: 235, B: 232, A: 255},
		},
	},
	Thermal: {
		ID: Thermal, Name: "Thermal Receipt", Kind: KindThreshold,
		Threshold: Threshold{
			Level: 110, NoiseAmp: 40,
			Ink:       color.NRGBA{R: 40, G: 40, B: 45, A: 255},
			Paper:     color.NRGBA{R: 240, G: 238, B: 230, A: 255},
			JamChance: 0.01,
		},
		Vignette: 0.2, Scratches: ScratchExtreme,
	},
	Mag70s: {
		ID: Mag70s, Name: "70s Magazine", Kind: KindGrade,
		Grade: Grade{
			RGain: 1.12, GGain: 1.04, BGain: 0.88,
			ROffset: 8, BOffset: -6,
			HighlightMul: 1.06, ShadowMul: 0.95,
			Saturation: 1.25,
		},
		Vignette: 0.2,
	},
	Pop80s: {
		ID: Pop80s, Name: "80s Pop", Kind: KindGrade,
		Grade: Grade{
			RGain: 1.05, GGain: 1.02, BGain: 1.05,
			HighlightMul: 1.1, ShadowMul: 0.9,
			Saturation:     1.45,
			ClipHighlights: true,
		},
	},
	Washed90s: {
		ID: Washed90s, Name: "90s Washed", Kind: KindGrade,
		Grade: Grade{
			RGain: 0.96, GGain: 1.0, BGain: 0.98,
			ROffset: 14, GOffset: 14, BOffset: 10,
			HighlightMul: 0.95, ShadowMul: 0.8,
			Saturation: 0.72,
		},
		Vignette: 0.2,
	},
	Polaroid1: {
		ID: Polaroid1, Name: "Instant Classic", Kind: KindGrade,
		Grade: Grade{
			RGain: 1.06, GGain: 1.02, BGain: 0.92,
			ROffset: 6, GOffset: 4, BOffset: -4,
			HighlightMul: 0.97, ShadowMul: 0.9,
			Saturation: 1.12,
		},
		Vignette: 0.5, Softness: true, Paper: PaperClean,
	},
	Polaroid2: {
		ID: Polaroid2, Name: "Instant Cool", Kind: KindGrade,
		Grade: Grade{
			RGain: 0.97, GGain: 1.0, BGain: 1.06,
			GOffset: 3, BOffset: 6,
			HighlightMul: 0.96, ShadowMul: 0.92,
			Saturation: 1.05,
		},
		Vignette: 0.5, Softness: true, Paper: PaperCool,
	},
	Polaroid3: {
		ID: Polaroid3, Name: "Instant Expired", Kind: KindGrade,
		Grade: Grade{
			RGain: 1.04, GGain: 0.98, BGain: 0.94,
			ROffset: 12, GOffset: 6, BOffset: 10,
			HighlightMul: 0.92, ShadowMul: 0.8,
			Saturation: 0.8,
		},
		Vignette: 0.5, Softness: true, ExpiredTint: true, Paper: PaperAged,
	},
	Misaligned: {
		ID: Misaligned, Name: "Misaligned Print", Kind: KindMisaligned,
		Vignette: 0.2, Scratches: ScratchNormal,
	},
	VHSWorn: {
		ID: VHSWorn, Name: "Worn VHS", Kind: KindVHS,
		Vignette: 0.2, Tracking: true,
	},
	DVCam: {
		ID: DVCam, Name: "DV Camcorder", Kind: KindDVCam,
		DateStamp: true,
	},
	Comics60s: {
		ID: Comics60s, Name: "60s Comics", Kind: KindHalftone,
	},
	Comics80s: {
		ID: Comics80s, Name: "80s Comics", Kind: KindEdgeInk,
		Vignette: 0.2,
	},
}

// order is the fixed enumeration order presented to callers.
var order = []ID{
	AgedGazette, NewspaperBW, Mimeograph, Blueprint,
	BadPhotocopy, Thermal,
	Mag70s, Pop80s, Washed90s,
	Polaroid1, Polaroid2, Polaroid3,
	Misaligned, VHSWorn, DVCam,
	Comics60s, Comics80s,
}

// Lookup returns the profile for id.
func Lookup(id ID) (Profile, bool) {
	p, ok := profiles[id]
	return p, ok
}

// All returns every stock ID in presentation order.
func All() []ID {
	out := make([]ID, len(order))
	copy(out, order)
	return out
}
