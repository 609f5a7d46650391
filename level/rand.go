package level

// lcg is the linear-congruential generator driving level layout.
//
// The multiplier, increment, and modulus are load-bearing: generated
// levels are shared by seed alone, never persisted, so the stream must be
// reproduced bit-for-bit across builds. Do not substitute another PRNG.
type lcg struct {
	state int64
}

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

func newLCG(seed int64) *lcg {
	return &lcg{state: seed % lcgModulus}
}

// next returns the next value in [0, 1)
func (r *lcg) next() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.state) / lcgModulus
}

// intn returns a value in [0, n)
func (r *lcg) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() * float64(n))
}

// rangef returns a value in [min, max)
func (r *lcg) rangef(min, max float64) float64 {
	return min + r.next()*(max-min)
}
