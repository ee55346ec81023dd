package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"circuitcore/pkg/model"
)

func TestFormatSI_PicksPrefixByMagnitude(t *testing.T) {
	assert.Equal(t, "2.5000 V", model.FormatSI(2.5, "V"))
	assert.Equal(t, "250.0000 mV", model.FormatSI(0.25, "V"))
	assert.Equal(t, "750.0000 uA", model.FormatSI(0.75e-3, "A"))
	assert.Equal(t, "3.0000 nA", model.FormatSI(3e-9, "A"))
}

func TestFormatSI_NegativeUsesMagnitudeOfAbsoluteValue(t *testing.T) {
	assert.Equal(t, "-1.5000 V", model.FormatSI(-1.5, "V"))
	assert.Equal(t, "-250.0000 mV", model.FormatSI(-0.25, "V"))
}

func TestFormatSI_BelowNanoFallsBackToScientific(t *testing.T) {
	got := model.FormatSI(1e-15, "A")
	assert.Contains(t, got, "e-15")
}

func TestFormatFrequency_PicksUnit(t *testing.T) {
	assert.Equal(t, "500.000 Hz", model.FormatFrequency(500))
	assert.Equal(t, "1.500 kHz", model.FormatFrequency(1500))
	assert.Equal(t, "2.000 MHz", model.FormatFrequency(2_000_000))
}

func TestIsVariadicGate(t *testing.T) {
	assert.True(t, model.IsVariadicGate(model.AndGate))
	assert.True(t, model.IsVariadicGate(model.XorGate))
	assert.False(t, model.IsVariadicGate(model.NotGate))
	assert.False(t, model.IsVariadicGate(model.Resistor))
}
