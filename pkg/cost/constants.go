package cost

// Schedule extrapolation constants.
const (
	WeeksPerYear  = 52.0
	MonthsPerYear = 12.0
)

// Subsystem identifiers used in contribution shares.
const (
	SubsystemPneumaticActuation = "pneumatic_actuation"
	SubsystemPneumaticWaste     = "pneumatic_waste"
	SubsystemServos             = "servos"
)
