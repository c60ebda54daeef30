package energy

import (
	"math"

	"github.com/ShaunH66/MachineCostingAppliction/pkg/spec"
)

// sweptVolumeM3 returns the swept volume of a single cylinder in cubic meters.
func sweptVolumeM3(boreMM, strokeMM float64) float64 {
	boreM := boreMM / mmPerM
	strokeM := strokeMM / mmPerM
	return math.Pi * (boreM / 2) * (boreM / 2) * strokeM
}

// freeAirPerCycleM3 sums the free-air demand of one full machine cycle across
// all cylinder rows. The compressed volume is scaled to atmospheric (free air)
// at the stated gauge pressure.
func freeAirPerCycleM3(cylinders []spec.CylinderSpec, pressureBar float64) float64 {
	total := 0.0
	for _, c := range cylinders {
		if !c.Valid() {
			continue
		}
		compressed := strokesPerCycle * sweptVolumeM3(c.BoreMM, c.StrokeMM)
		total += compressed * gaugeToAbsolute(pressureBar) * float64(c.Quantity)
	}
	return total
}
