package spec

// MachineSpec is the top-level specification for an automated machine.
type MachineSpec struct {
	SpecVersion string            `yaml:"spec_version" json:"spec_version"`
	Machine     MachineDef        `yaml:"machine" json:"machine"`
	Cylinders   []CylinderSpec    `yaml:"cylinders" json:"cylinders"`
	Servos      []ServoSpec       `yaml:"servos" json:"servos"`
	SafetyDump  *SafetyDumpConfig `yaml:"safety_dump,omitempty" json:"safety_dump,omitempty"`
	Operating   OperatingParams   `yaml:"operating" json:"operating"`
}

type MachineDef struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// CylinderSpec is one group of identical double-acting pneumatic cylinders.
type CylinderSpec struct {
	Quantity int     `yaml:"quantity" json:"quantity"`
	BoreMM   float64 `yaml:"bore_mm" json:"bore_mm"`
	StrokeMM float64 `yaml:"stroke_mm" json:"stroke_mm"`
}

// Valid reports whether the row contributes to air demand. Rows with a
// non-positive quantity, bore, or stroke are excluded, never rejected.
func (c CylinderSpec) Valid() bool {
	return c.Quantity > 0 && c.BoreMM > 0 && c.StrokeMM > 0
}

// ServoSpec is one group of identical servo motors.
type ServoSpec struct {
	Quantity       int     `yaml:"quantity" json:"quantity"`
	PowerWatts     float64 `yaml:"power_watts" json:"power_watts"`
	UtilizationPct float64 `yaml:"utilization_pct" json:"utilization_pct"`
}

// Valid reports whether the row contributes to power demand. Zero
// utilization is valid and contributes zero.
func (s ServoSpec) Valid() bool {
	return s.Quantity > 0 && s.PowerWatts > 0 && s.UtilizationPct >= 0
}

// TriggerMode selects how safety dump frequency is determined.
type TriggerMode string

const (
	// TriggerRandomEventsPerHour uses the explicit dumps_per_hour figure.
	TriggerRandomEventsPerHour TriggerMode = "random_events_per_hour"
	// TriggerAfterEveryCycle vents the receiver once per machine cycle,
	// overriding any explicit dumps_per_hour.
	TriggerAfterEveryCycle TriggerMode = "after_every_cycle"
)

// SafetyDumpConfig describes the optional safety air dump subsystem: a local
// air receiver vented on a safety event, wasting stored compressed air.
type SafetyDumpConfig struct {
	Enabled              bool        `yaml:"enabled" json:"enabled"`
	ReceiverVolumeLiters float64     `yaml:"receiver_volume_liters" json:"receiver_volume_liters"`
	TriggerMode          TriggerMode `yaml:"trigger_mode" json:"trigger_mode"`
	DumpsPerHour         float64     `yaml:"dumps_per_hour" json:"dumps_per_hour"`
}

// Active reports whether the subsystem contributes waste. A nil config, a
// disabled one, or an empty receiver all mean zero waste.
func (d *SafetyDumpConfig) Active() bool {
	return d != nil && d.Enabled && d.ReceiverVolumeLiters > 0
}

// OperatingParams are the global parameters shared by every subsystem for
// one estimation.
type OperatingParams struct {
	CycleRatePerMin              float64 `yaml:"cycle_rate_per_min" json:"cycle_rate_per_min"`
	PressureBar                  float64 `yaml:"pressure_bar" json:"pressure_bar"`
	CompressorEfficiencyKWhPerM3 float64 `yaml:"compressor_efficiency_kwh_per_m3" json:"compressor_efficiency_kwh_per_m3"`
	HoursPerDay                  int     `yaml:"hours_per_day" json:"hours_per_day"`
	DaysPerWeek                  int     `yaml:"days_per_week" json:"days_per_week"`
	ElectricityCostPerKWh        float64 `yaml:"electricity_cost_per_kwh" json:"electricity_cost_per_kwh"`
	CurrencySymbol               string  `yaml:"currency_symbol" json:"currency_symbol"`
}

// Default returns the seeded example machine: a mixed pneumatic/servo
// assembly cell on a single-shift schedule.
func Default() *MachineSpec {
	return &MachineSpec{
		SpecVersion: "0.1.0",
		Machine:     MachineDef{Name: "example-machine"},
		Cylinders: []CylinderSpec{
			{Quantity: 2, BoreMM: 50, StrokeMM: 200},
			{Quantity: 4, BoreMM: 25, StrokeMM: 100},
		},
		Servos: []ServoSpec{
			{Quantity: 1, PowerWatts: 750, UtilizationPct: 40},
			{Quantity: 2, PowerWatts: 200, UtilizationPct: 60},
		},
		Operating: OperatingParams{
			CycleRatePerMin:              20,
			PressureBar:                  6,
			CompressorEfficiencyKWhPerM3: 0.15,
			HoursPerDay:                  8,
			DaysPerWeek:                  5,
			ElectricityCostPerKWh:        0.12,
			CurrencySymbol:               "£",
		},
	}
}
