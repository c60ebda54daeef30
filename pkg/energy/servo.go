package energy

import "github.com/ShaunH66/MachineCostingAppliction/pkg/spec"

// averageServoPowerWatts sums the average sustained draw across all servo
// rows. Utilization is the average fraction of rated power drawn over a duty
// cycle; total watts over one hour is taken as kWh directly.
func averageServoPowerWatts(servos []spec.ServoSpec) float64 {
	total := 0.0
	for _, s := range servos {
		if !s.Valid() {
			continue
		}
		avgPerMotor := s.PowerWatts * (s.UtilizationPct / 100)
		total += avgPerMotor * float64(s.Quantity)
	}
	return total
}
