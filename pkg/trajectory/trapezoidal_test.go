package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrapezoidalTriangularScenario(t *testing.T) {
	tv := NewTrapezoidalVelocity(0, 0, 0.1, 10, 100)
	expectedTacc := math.Sqrt(0.001)
	assert.InDelta(t, expectedTacc, tv.tAcc, 1e-9)
	assert.InDelta(t, 2*expectedTacc, tv.total, 1e-9)
	assert.InDelta(t, 100*expectedTacc, tv.ValueAt(tv.Start()+expectedTacc, 1), 1e-6)
}

func TestTrapezoidalBoundaryValues(t *testing.T) {
	tv := NewTrapezoidalVelocity(1, 0, 5, 2, 1)
	assert.Equal(t, 0.0, tv.ValueAt(tv.Start(), 0))
	assert.Equal(t, 5.0, tv.ValueAt(tv.End(), 0))
	assert.Equal(t, 0.0, tv.ValueAt(tv.Start()-1, 1))
}

func TestTrapezoidalVelocityAndAccelerationBounds(t *testing.T) {
	vMax, accMax := 2.0, 1.0
	tv := NewTrapezoidalVelocity(0, 0, 5, vMax, accMax)

	const steps = 2000
	dt := tv.total / steps
	maxV, maxA := 0.0, 0.0
	integral := 0.0
	prevV := tv.ValueAt(0, 1)
	for i := 1; i <= steps; i++ {
		t0 := float64(i) * dt
		v := tv.ValueAt(t0, 1)
		a := tv.ValueAt(t0, 2)
		if math.Abs(v) > maxV {
			maxV = math.Abs(v)
		}
		if math.Abs(a) > maxA {
			maxA = math.Abs(a)
		}
		integral += 0.5 * (v + prevV) * dt
		prevV = v
	}

	assert.LessOrEqual(t, maxV, vMax+1e-9)
	assert.LessOrEqual(t, maxA, accMax+1e-9)
	assert.InDelta(t, 5.0, integral, 1e-3)
}

func TestTrapezoidalNegativeDisplacement(t *testing.T) {
	tv := NewTrapezoidalVelocity(0, 5, 0, 2, 1)
	assert.Equal(t, 5.0, tv.ValueAt(tv.Start(), 0))
	assert.Equal(t, 0.0, tv.ValueAt(tv.End(), 0))
	mid := tv.ValueAt(tv.tAcc, 1)
	assert.Less(t, mid, 0.0)
}
