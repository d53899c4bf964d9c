package trajectory

import "math"

// TrapezoidalVelocity is a two-knot bang-bang velocity profile bounded by
// vMax and accMax, per spec.md §4.4. Triangular (no cruise phase) when the
// displacement is too small to reach vMax.
type TrapezoidalVelocity struct {
	start        float64
	xSrc, xEnd   float64
	vMax, accMax float64
	tAcc, total  float64
	dAcc, sign   float64
}

var _ Trajectory = (*TrapezoidalVelocity)(nil)

// NewTrapezoidalVelocity builds a TrapezoidalVelocity profile from the
// source and end values, bounded by vMax and accMax.
func NewTrapezoidalVelocity(start, xSrc, xEnd, vMax, accMax float64) *TrapezoidalVelocity {
	d := xEnd - xSrc
	absD := math.Abs(d)
	sign := 1.0
	if d < 0 {
		sign = -1.0
	}

	var tAcc float64
	if absD > vMax*vMax/accMax {
		tAcc = vMax / accMax
	} else {
		tAcc = math.Sqrt(absD / accMax)
	}
	dAcc := 0.5 * accMax * tAcc * tAcc
	total := 2*tAcc + (absD-2*dAcc)/vMax

	return &TrapezoidalVelocity{
		start: start, xSrc: xSrc, xEnd: xEnd,
		vMax: vMax, accMax: accMax,
		tAcc: tAcc, total: total, dAcc: dAcc, sign: sign,
	}
}

func (tv *TrapezoidalVelocity) Start() float64 { return tv.start }

func (tv *TrapezoidalVelocity) End() float64 { return tv.start + tv.total }

// ValueAt evaluates position (d=0), velocity (d=1) or acceleration (d=2) by
// zone, per spec.md §4.4. Orders above 2 are always 0.
func (tv *TrapezoidalVelocity) ValueAt(t float64, d int) float64 {
	tPrime := t - tv.start

	if tPrime <= 0 {
		if d == 0 {
			return tv.xSrc
		}
		return 0
	}
	if tPrime >= tv.total {
		if d == 0 {
			return tv.xEnd
		}
		return 0
	}

	switch {
	case tPrime <= tv.tAcc:
		switch d {
		case 0:
			return tv.xSrc + tv.sign*0.5*tv.accMax*tPrime*tPrime
		case 1:
			return tv.sign * tv.accMax * tPrime
		case 2:
			return tv.sign * tv.accMax
		default:
			return 0
		}
	case tPrime < tv.total-tv.tAcc:
		switch d {
		case 0:
			return tv.xSrc + tv.sign*(tv.dAcc+tv.vMax*(tPrime-tv.tAcc))
		case 1:
			return tv.sign * tv.vMax
		default:
			return 0
		}
	default:
		remaining := tv.total - tPrime
		switch d {
		case 0:
			return tv.xEnd - tv.sign*0.5*tv.accMax*remaining*remaining
		case 1:
			return tv.sign * tv.accMax * remaining
		case 2:
			return -tv.sign * tv.accMax
		default:
			return 0
		}
	}
}
