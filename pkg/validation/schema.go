package validation

import (
	"fmt"

	"github.com/ShaunH66/MachineCostingAppliction/pkg/spec"
)

// Validate runs schema and guardrail validation on a parsed MachineSpec.
// Schema errors must be fixed before the engine is invoked; guardrail
// warnings flag values outside the recommended UI ranges that the engine
// will still compute.
func Validate(s *spec.MachineSpec) *Report {
	r := ValidateSchema(s)
	r.Merge(ValidateGuardrails(s))
	return r
}

// ValidateSchema performs structural validation on a parsed MachineSpec.
// Malformed component rows are not errors: they contribute zero by
// definition and are only reported as info.
func ValidateSchema(s *spec.MachineSpec) *Report {
	r := NewReport()

	validateOperating(s, r)
	validateSchedule(s, r)
	validateCylinders(s, r)
	validateServos(s, r)
	validateSafetyDump(s, r)
	validateComponents(s, r)

	return r
}

func validateOperating(s *spec.MachineSpec, r *Report) {
	op := s.Operating

	if op.CycleRatePerMin <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "cycle_rate_per_min must be greater than 0",
			SpecPath:    "operating.cycle_rate_per_min",
			ActualValue: op.CycleRatePerMin,
			Expected:    "> 0",
		})
	}
	if op.PressureBar <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "pressure_bar must be greater than 0",
			SpecPath:    "operating.pressure_bar",
			ActualValue: op.PressureBar,
			Expected:    "> 0",
		})
	}
	if op.CompressorEfficiencyKWhPerM3 <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "compressor_efficiency_kwh_per_m3 must be greater than 0",
			SpecPath:    "operating.compressor_efficiency_kwh_per_m3",
			ActualValue: op.CompressorEfficiencyKWhPerM3,
			Expected:    "> 0",
		})
	}
	if op.ElectricityCostPerKWh <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "electricity_cost_per_kwh must be greater than 0",
			SpecPath:    "operating.electricity_cost_per_kwh",
			ActualValue: op.ElectricityCostPerKWh,
			Expected:    "> 0",
		})
	}
}

func validateSchedule(s *spec.MachineSpec, r *Report) {
	if s.Operating.HoursPerDay < 1 || s.Operating.HoursPerDay > 24 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("hours_per_day %d is outside valid range (1-24)", s.Operating.HoursPerDay),
			SpecPath:    "operating.hours_per_day",
			ActualValue: s.Operating.HoursPerDay,
			Expected:    "1-24",
		})
	}
	if s.Operating.DaysPerWeek < 1 || s.Operating.DaysPerWeek > 7 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("days_per_week %d is outside valid range (1-7)", s.Operating.DaysPerWeek),
			SpecPath:    "operating.days_per_week",
			ActualValue: s.Operating.DaysPerWeek,
			Expected:    "1-7",
		})
	}
}

func validateCylinders(s *spec.MachineSpec, r *Report) {
	for i, c := range s.Cylinders {
		if !c.Valid() {
			r.AddInfo(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("cylinders[%d] has non-positive quantity, bore, or stroke; row contributes zero", i),
				SpecPath:    fmt.Sprintf("cylinders[%d]", i),
				ActualValue: fmt.Sprintf("%dx %.0fmm bore, %.0fmm stroke", c.Quantity, c.BoreMM, c.StrokeMM),
			})
		}
	}
}

func validateServos(s *spec.MachineSpec, r *Report) {
	for i, sv := range s.Servos {
		if !sv.Valid() {
			r.AddInfo(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("servos[%d] has non-positive quantity, power, or negative utilization; row contributes zero", i),
				SpecPath:    fmt.Sprintf("servos[%d]", i),
				ActualValue: fmt.Sprintf("%dx %.0fW @ %.0f%%", sv.Quantity, sv.PowerWatts, sv.UtilizationPct),
			})
		}
	}
}

func validateSafetyDump(s *spec.MachineSpec, r *Report) {
	d := s.SafetyDump
	if d == nil {
		return
	}

	switch d.TriggerMode {
	case spec.TriggerRandomEventsPerHour, spec.TriggerAfterEveryCycle:
	case "":
		if d.Enabled {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  "safety_dump.trigger_mode is required when the dump is enabled",
				SpecPath: "safety_dump.trigger_mode",
				Expected: "random_events_per_hour or after_every_cycle",
			})
		}
	default:
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown safety_dump.trigger_mode %q", d.TriggerMode),
			SpecPath:    "safety_dump.trigger_mode",
			ActualValue: string(d.TriggerMode),
			Expected:    "random_events_per_hour or after_every_cycle",
		})
	}

	if d.Enabled && d.ReceiverVolumeLiters <= 0 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "safety_dump is enabled but receiver_volume_liters is not positive; waste cost will be zero",
			SpecPath:    "safety_dump.receiver_volume_liters",
			ActualValue: d.ReceiverVolumeLiters,
			Expected:    "> 0",
		})
	}
	if d.Enabled && d.TriggerMode == spec.TriggerRandomEventsPerHour && d.DumpsPerHour <= 0 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "safety_dump uses random_events_per_hour but dumps_per_hour is not positive; waste cost will be zero",
			SpecPath:    "safety_dump.dumps_per_hour",
			ActualValue: d.DumpsPerHour,
			Expected:    "> 0",
		})
	}
	if d.Enabled && d.TriggerMode == spec.TriggerAfterEveryCycle && d.DumpsPerHour > 0 {
		r.AddInfo(Result{
			Level:       LevelSchema,
			Message:     "after_every_cycle derives dump frequency from the cycle rate; explicit dumps_per_hour is ignored",
			SpecPath:    "safety_dump.dumps_per_hour",
			ActualValue: d.DumpsPerHour,
		})
	}
}

// validateComponents flags the degenerate all-zero machine: the engine will
// return an all-zero breakdown rather than an error.
func validateComponents(s *spec.MachineSpec, r *Report) {
	for _, c := range s.Cylinders {
		if c.Valid() {
			return
		}
	}
	for _, sv := range s.Servos {
		if sv.Valid() {
			return
		}
	}
	if s.SafetyDump.Active() {
		return
	}

	r.AddWarning(Result{
		Level:       LevelSchema,
		Message:     "no components defined; all cost figures will be zero",
		SpecPath:    "cylinders",
		Suggestions: []string{"Add at least one cylinder or servo row with a positive quantity"},
	})
}
