package filters

// Params are the decode parameters of one filter in a stream's chain.
// Zero values select the PDF defaults of the filter they apply to.
type Params struct {
	// Flate predictor parameters
	Predictor        int
	Colors           int
	BitsPerComponent int
	Columns          int

	// NoEarlyChange is set for LZW streams with EarlyChange 0
	NoEarlyChange bool

	// CCITTFax parameters
	K                int
	Rows             int
	BlackIs1         bool
	EncodedByteAlign bool
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func (p Params) predictor() int { return orDefault(p.Predictor, 1) }
func (p Params) colors() int    { return orDefault(p.Colors, 1) }
func (p Params) bpc() int       { return orDefault(p.BitsPerComponent, 8) }

// columns returns Columns, defaulting to def which differs per filter
func (p Params) columns(def int) int { return orDefault(p.Columns, def) }
