package cost

import (
	"github.com/ShaunH66/MachineCostingAppliction/pkg/energy"
	"github.com/ShaunH66/MachineCostingAppliction/pkg/spec"
)

// Periods holds one cost figure extrapolated across the reporting periods.
type Periods struct {
	Hourly float64 `json:"hourly"`
	Daily  float64 `json:"daily"`
	Weekly float64 `json:"weekly"`
	Annual float64 `json:"annual"`
}

// Breakdown itemizes running cost by subsystem across reporting periods.
type Breakdown struct {
	PneumaticActuation Periods `json:"pneumatic_actuation"`
	PneumaticWaste     Periods `json:"pneumatic_waste"`
	Servos             Periods `json:"servos"`
	Total              Periods `json:"total"`
}

// Share is one subsystem's slice of the hourly cost.
type Share struct {
	Subsystem  string  `json:"subsystem"`
	HourlyCost float64 `json:"hourly_cost"`
	Percent    float64 `json:"percent"`
}

// Report is the complete cost output of one estimation.
type Report struct {
	Currency  string        `json:"currency"`
	Breakdown Breakdown     `json:"breakdown"`
	Shares    []Share       `json:"shares"`
	Usage     *energy.Usage `json:"usage"`

	Summary struct {
		TotalHourly  float64 `json:"total_hourly"`
		TotalDaily   float64 `json:"total_daily"`
		TotalWeekly  float64 `json:"total_weekly"`
		TotalMonthly float64 `json:"total_monthly"`
		TotalAnnual  float64 `json:"total_annual"`
	} `json:"summary"`
}

// Estimate prices the resolved energy usage at the spec's electricity tariff
// and spreads it across the duty schedule. It always succeeds: an all-zero
// usage yields an all-zero report, which the presentation layer is expected
// to flag as "no components defined".
func Estimate(s *spec.MachineSpec, u *energy.Usage) *Report {
	op := s.Operating

	actuationHourly := u.ActuationKWhPerHour * op.ElectricityCostPerKWh
	wasteHourly := u.WasteKWhPerHour * op.ElectricityCostPerKWh
	servoHourly := u.ServoKWhPerHour * op.ElectricityCostPerKWh
	totalHourly := actuationHourly + wasteHourly + servoHourly

	report := &Report{
		Currency: op.CurrencySymbol,
		Usage:    u,
		Breakdown: Breakdown{
			PneumaticActuation: extrapolate(actuationHourly, op),
			PneumaticWaste:     extrapolate(wasteHourly, op),
			Servos:             extrapolate(servoHourly, op),
			Total:              extrapolate(totalHourly, op),
		},
		Shares: []Share{
			{Subsystem: SubsystemPneumaticActuation, HourlyCost: actuationHourly, Percent: percentOf(actuationHourly, totalHourly)},
			{Subsystem: SubsystemPneumaticWaste, HourlyCost: wasteHourly, Percent: percentOf(wasteHourly, totalHourly)},
			{Subsystem: SubsystemServos, HourlyCost: servoHourly, Percent: percentOf(servoHourly, totalHourly)},
		},
	}

	total := report.Breakdown.Total
	report.Summary.TotalHourly = total.Hourly
	report.Summary.TotalDaily = total.Daily
	report.Summary.TotalWeekly = total.Weekly
	report.Summary.TotalMonthly = total.Annual / MonthsPerYear
	report.Summary.TotalAnnual = total.Annual

	return report
}

// extrapolate spreads an hourly cost across the duty schedule.
func extrapolate(hourly float64, op spec.OperatingParams) Periods {
	daily := hourly * float64(op.HoursPerDay)
	weekly := daily * float64(op.DaysPerWeek)
	return Periods{
		Hourly: hourly,
		Daily:  daily,
		Weekly: weekly,
		Annual: weekly * WeeksPerYear,
	}
}

func percentOf(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}
