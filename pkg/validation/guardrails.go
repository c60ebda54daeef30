package validation

import (
	"fmt"

	"github.com/ShaunH66/MachineCostingAppliction/pkg/spec"
)

// Recommended UI input ranges. Values outside them are suspicious but legal:
// the engine computes them anyway, so they only warn.
const (
	minPressureBar    = 1.0
	maxPressureBar    = 10.0
	minCompressorRate = 0.05
	maxCompressorRate = 0.3
	minElectricity    = 0.01
	maxElectricity    = 1.0
)

// ValidateGuardrails checks the spec against the recommended presentation
// ranges and flags out-of-range values as warnings.
func ValidateGuardrails(s *spec.MachineSpec) *Report {
	r := NewReport()
	op := s.Operating

	if op.PressureBar > 0 && (op.PressureBar < minPressureBar || op.PressureBar > maxPressureBar) {
		r.AddWarning(Result{
			Level:       LevelGuardrail,
			Message:     fmt.Sprintf("pressure_bar %.1f is outside the typical range (%.0f-%.0f bar)", op.PressureBar, minPressureBar, maxPressureBar),
			SpecPath:    "operating.pressure_bar",
			ActualValue: op.PressureBar,
			Expected:    "1-10",
		})
	}
	if op.CompressorEfficiencyKWhPerM3 > 0 &&
		(op.CompressorEfficiencyKWhPerM3 < minCompressorRate || op.CompressorEfficiencyKWhPerM3 > maxCompressorRate) {
		r.AddWarning(Result{
			Level:       LevelGuardrail,
			Message:     fmt.Sprintf("compressor_efficiency_kwh_per_m3 %.3f is outside the typical range (%.2f-%.2f); modern systems are ~0.1-0.15", op.CompressorEfficiencyKWhPerM3, minCompressorRate, maxCompressorRate),
			SpecPath:    "operating.compressor_efficiency_kwh_per_m3",
			ActualValue: op.CompressorEfficiencyKWhPerM3,
			Expected:    "0.05-0.3",
		})
	}
	if op.ElectricityCostPerKWh > 0 &&
		(op.ElectricityCostPerKWh < minElectricity || op.ElectricityCostPerKWh > maxElectricity) {
		r.AddWarning(Result{
			Level:       LevelGuardrail,
			Message:     fmt.Sprintf("electricity_cost_per_kwh %.3f is outside the typical range (%.2f-%.2f)", op.ElectricityCostPerKWh, minElectricity, maxElectricity),
			SpecPath:    "operating.electricity_cost_per_kwh",
			ActualValue: op.ElectricityCostPerKWh,
			Expected:    "0.01-1.0",
		})
	}

	for i, sv := range s.Servos {
		if sv.UtilizationPct > 100 {
			r.AddWarning(Result{
				Level:       LevelGuardrail,
				Message:     fmt.Sprintf("servos[%d] utilization_pct %.0f exceeds 100%%", i, sv.UtilizationPct),
				SpecPath:    fmt.Sprintf("servos[%d].utilization_pct", i),
				ActualValue: sv.UtilizationPct,
				Expected:    "0-100",
			})
		}
	}

	return r
}
