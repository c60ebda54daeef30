package energy

import "github.com/ShaunH66/MachineCostingAppliction/pkg/spec"

// Usage holds the resolved air and energy demand for one machine spec.
// All rates are per hour of machine operation.
type Usage struct {
	FreeAirPerCycleM3   float64 `json:"free_air_per_cycle_m3"`
	FreeAirPerHourM3    float64 `json:"free_air_per_hour_m3"`
	ActuationKWhPerHour float64 `json:"actuation_kwh_per_hour"`

	DumpsPerHour      float64 `json:"dumps_per_hour"`
	FreeAirPerDumpM3  float64 `json:"free_air_per_dump_m3"`
	WasteAirPerHourM3 float64 `json:"waste_air_per_hour_m3"`
	WasteKWhPerHour   float64 `json:"waste_kwh_per_hour"`

	ServoPowerWatts float64 `json:"servo_power_watts"`
	ServoKWhPerHour float64 `json:"servo_kwh_per_hour"`

	TotalKWhPerHour float64 `json:"total_kwh_per_hour"`
}

// Resolve computes the machine's air and electrical demand from its component
// rows and operating parameters. It is a pure function of its input: invalid
// rows contribute zero and an empty spec resolves to an all-zero Usage.
func Resolve(s *spec.MachineSpec) *Usage {
	u := &Usage{}
	op := s.Operating

	// 1. Pneumatic actuation
	u.FreeAirPerCycleM3 = freeAirPerCycleM3(s.Cylinders, op.PressureBar)
	u.FreeAirPerHourM3 = u.FreeAirPerCycleM3 * op.CycleRatePerMin * minutesPerHour
	u.ActuationKWhPerHour = u.FreeAirPerHourM3 * op.CompressorEfficiencyKWhPerM3

	// 2. Safety dump waste
	resolveDump(s.SafetyDump, op, u)

	// 3. Servo draw
	u.ServoPowerWatts = averageServoPowerWatts(s.Servos)
	u.ServoKWhPerHour = u.ServoPowerWatts / wattsPerKW

	u.TotalKWhPerHour = u.ActuationKWhPerHour + u.WasteKWhPerHour + u.ServoKWhPerHour
	return u
}

// gaugeToAbsolute converts a compressed-air volume factor from gauge bar to
// absolute atmospheres, treating 1 bar ~ 1 atmosphere.
func gaugeToAbsolute(pressureBar float64) float64 {
	return pressureBar + 1
}
