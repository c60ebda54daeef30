package energy

import "github.com/ShaunH66/MachineCostingAppliction/pkg/spec"

// effectiveDumpsPerHour resolves the dump frequency for the configured trigger
// mode. after_every_cycle derives one dump per machine cycle and overrides any
// explicit dumps_per_hour, which can dominate the total cost.
func effectiveDumpsPerHour(d *spec.SafetyDumpConfig, cycleRatePerMin float64) float64 {
	if d.TriggerMode == spec.TriggerAfterEveryCycle {
		return cycleRatePerMin * minutesPerHour
	}
	return d.DumpsPerHour
}

// resolveDump fills in the waste-air figures for the safety dump subsystem.
// An inactive config leaves all waste fields zero.
func resolveDump(d *spec.SafetyDumpConfig, op spec.OperatingParams, u *Usage) {
	if !d.Active() {
		return
	}

	receiverM3 := d.ReceiverVolumeLiters / litersPerM3
	u.DumpsPerHour = effectiveDumpsPerHour(d, op.CycleRatePerMin)
	u.FreeAirPerDumpM3 = receiverM3 * gaugeToAbsolute(op.PressureBar)
	u.WasteAirPerHourM3 = u.FreeAirPerDumpM3 * u.DumpsPerHour
	u.WasteKWhPerHour = u.WasteAirPerHourM3 * op.CompressorEfficiencyKWhPerM3
}
