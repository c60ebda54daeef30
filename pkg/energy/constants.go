package energy

// Unit conversion constants. Input is metric (mm, liters, bar); all internal
// arithmetic is in SI units.
const (
	mmPerM         = 1000.0
	litersPerM3    = 1000.0
	wattsPerKW     = 1000.0
	minutesPerHour = 60.0

	// A double-acting cylinder consumes air on both the extend and
	// retract strokes.
	strokesPerCycle = 2.0
)
