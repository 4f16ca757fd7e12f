package hydraulics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArea(t *testing.T) {
	a, err := Area(0.1541)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*0.1541*0.1541/4, a, 1e-12)

	_, err = Area(0)
	assert.Error(t, err)
	_, err = Area(-0.1)
	assert.Error(t, err)
}

func TestVelocityAndKineticHead(t *testing.T) {
	a, err := Area(0.1541)
	require.NoError(t, err)

	v := Velocity(0.025, a)
	assert.InDelta(t, 1.34, v, 0.01)

	hv := KineticHead(v)
	assert.InDelta(t, v*v/(2*9.81), hv, 1e-12)
}

func TestReynolds(t *testing.T) {
	re, err := Reynolds(998, 1.34, 0.1541, 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 998*1.34*0.1541/0.001, re, 1e-6)
	assert.Greater(t, re, ReTurbulentLimit)

	_, err = Reynolds(998, 1.34, 0.1541, 0)
	assert.Error(t, err)
	_, err = Reynolds(998, 1.34, 0.1541, -0.001)
	assert.Error(t, err)
}

func TestPowerConversion(t *testing.T) {
	assert.InDelta(t, 1.3410, KWToHP(1.0), 1e-4)
	assert.InDelta(t, 100/0.7457, KWToHP(100), 1e-9)
}

func TestPumpPower(t *testing.T) {
	// P = ρ·g·Q·H/1000
	p := PumpPowerKW(998, 0.025, 100)
	assert.InDelta(t, 998*9.81*0.025*100/1000, p, 1e-9)
}

func TestFlowRegime(t *testing.T) {
	assert.Equal(t, "Laminar", FlowRegime(1500))
	assert.Equal(t, "Transitional", FlowRegime(3000))
	assert.Equal(t, "Turbulent", FlowRegime(250000))
}
