package layout

// Params controls layout analysis. Margins are ratios of character or line
// size.
type Params struct {
	// LineOverlap is the minimum overlap, as a fraction of the smaller
	// character, for two characters to share a line (default: 0.5)
	LineOverlap float64

	// CharMargin is the maximum gap between characters of a line, relative
	// to the larger character (default: 2.0)
	CharMargin float64

	// LineMargin is the maximum gap between lines of a box, relative to the
	// line height (default: 0.5)
	LineMargin float64

	// WordMargin is the gap, relative to the character width, above which a
	// space is inserted between characters (default: 0.1)
	WordMargin float64

	// BoxesFlow weighs horizontal against vertical position when ordering
	// text groups, from -1.0 (horizontal only) to 1.0 (vertical only)
	// (default: 0.5)
	BoxesFlow float64

	// DetectVertical enables vertical text lines (default: false)
	DetectVertical bool
}

// DefaultParams returns the default analysis parameters
func DefaultParams() Params {
	return Params{
		LineOverlap: 0.5,
		CharMargin:  2.0,
		LineMargin:  0.5,
		WordMargin:  0.1,
		BoxesFlow:   0.5,
	}
}
