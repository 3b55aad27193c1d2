package genome

// Ethnicity is the RGB family tag stamped onto a bug at birth and copied
// into ancestors' family windows. UID identifies the individual the tag
// was stamped for (the bug's own uid), used by family-match and by
// mate-repeat detection.
type Ethnicity struct {
	R, G, B int
	UID     int64
}

// Sum is the channel total; the assimilation invariant keeps it >=
// ethnicDur after Assimilate runs.
func (e Ethnicity) Sum() int {
	return e.R + e.G + e.B
}

// Assimilate computes a newborn's ethnicity from its two parents, then
// drifts it toward the latitude band's target hue (§4.9): band 0 toward
// blue, band 1 toward red, band 2 toward green. worldHeight and ethnicDur
// are the simulation's WY and ETHNIC_DUR parameters.
func Assimilate(mom, dad Ethnicity, y, worldHeight, ethnicDur int, uid int64) Ethnicity {
	r := (mom.R + dad.R) / 2
	g := (mom.G + dad.G) / 2
	b := (mom.B + dad.B) / 2

	band := y * 3 / worldHeight
	switch band {
	case 0: // blue
		if r > 0 {
			r--
			b++
		}
		if g > 0 {
			g--
			b++
		}
		for r+g+b < ethnicDur {
			b++
		}
	case 1: // red
		if g > 0 {
			g--
			r++
		}
		if b > 0 {
			b--
			r++
		}
		for r+g+b < ethnicDur {
			r++
		}
	default: // band 2: green
		if r > 0 {
			r--
			g++
		}
		if b > 0 {
			b--
			g++
		}
		for r+g+b < ethnicDur {
			g++
		}
	}
	return Ethnicity{R: r, G: g, B: b, UID: uid}
}
