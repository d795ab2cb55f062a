package catalog

import "github.com/gogpu/glyphmesh"

// Built-in outline names.
const (
	ITop     = "I_top"
	IBot     = "I_bot"
	ZTop     = "Z_top"
	ZDiag    = "Z_diag"
	ZBot     = "Z_bot"
	ThreeTop = "3_top"
	ThreeMid = "3_mid"
	ThreeBot = "3_bot"
)

var pt = glyphmesh.Pt

// builtin lists the letterform pieces in local glyph space, roughly within
// [-0.45, 0.45]. Letters are split into convex pieces so each one can be
// capped with a centroid fan.
var builtin = map[string]glyphmesh.Outline{
	// "I" is split at its waist so neither half is hollow.
	ITop: {pt(-0.20, 0.45), pt(-0.20, 0.25), pt(-0.06, 0.00), pt(0.06, 0.00), pt(0.20, 0.25), pt(0.20, 0.45)},
	IBot: {pt(-0.06, 0.00), pt(-0.20, -0.25), pt(-0.20, -0.45), pt(0.20, -0.45), pt(0.20, -0.25), pt(0.06, 0.00)},

	// "Z": top bar, thickened diagonal, bottom bar.
	ZTop:  {pt(-0.40, 0.35), pt(-0.40, 0.20), pt(0.40, 0.20), pt(0.40, 0.35)},
	ZDiag: {pt(-0.40, -0.20), pt(-0.25, -0.20), pt(0.40, 0.20), pt(0.25, 0.20)},
	ZBot:  {pt(-0.40, -0.20), pt(-0.40, -0.35), pt(0.40, -0.35), pt(0.40, -0.20)},

	// "3": top arm, spine, bottom arm.
	ThreeTop: {pt(-0.10, 0.35), pt(-0.05, 0.18), pt(0.35, 0.18), pt(0.35, 0.35)},
	ThreeMid: {pt(0.05, 0.18), pt(0.05, -0.18), pt(0.35, -0.18), pt(0.35, 0.18)},
	ThreeBot: {pt(-0.10, -0.35), pt(0.35, -0.35), pt(0.35, -0.18), pt(-0.05, -0.18)},
}

// Default returns a catalog of the built-in I, Z and 3 pieces.
func Default() *Catalog {
	return MustNew(builtin)
}
