package validation

import (
	"testing"

	"github.com/ShaunH66/MachineCostingAppliction/pkg/spec"
)

func TestGuardrailWarnings(t *testing.T) {
	s := spec.Default()
	s.Operating.PressureBar = 14
	s.Operating.CompressorEfficiencyKWhPerM3 = 0.5
	s.Operating.ElectricityCostPerKWh = 2.5
	s.Servos[0].UtilizationPct = 120

	r := ValidateGuardrails(s)
	if !r.Valid {
		t.Fatalf("guardrails must never invalidate: %s", r.Summary)
	}
	if len(r.Warnings) != 4 {
		t.Errorf("warnings = %d, want 4: %+v", len(r.Warnings), r.Warnings)
	}
	for _, w := range r.Warnings {
		if w.Level != LevelGuardrail {
			t.Errorf("warning level = %q, want %q", w.Level, LevelGuardrail)
		}
	}
}

func TestGuardrailsSilentInRange(t *testing.T) {
	r := ValidateGuardrails(spec.Default())
	if len(r.Warnings) != 0 {
		t.Errorf("in-range spec produced warnings: %+v", r.Warnings)
	}
}

func TestGuardrailsSkipValuesSchemaRejects(t *testing.T) {
	// Non-positive values are schema errors; guardrails stay quiet so the
	// merged report does not double-flag them.
	s := spec.Default()
	s.Operating.PressureBar = 0
	s.Operating.ElectricityCostPerKWh = -1

	r := ValidateGuardrails(s)
	if len(r.Warnings) != 0 {
		t.Errorf("guardrails double-flagged schema errors: %+v", r.Warnings)
	}
}

func TestValidateMergesLevels(t *testing.T) {
	s := spec.Default()
	s.Operating.PressureBar = 12 // guardrail warning
	s.Operating.DaysPerWeek = 9  // schema error

	r := Validate(s)
	if r.Valid {
		t.Error("schema error must invalidate merged report")
	}
	if len(r.Warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(r.Warnings))
	}
}
