package validation

import (
	"strings"
	"testing"

	"github.com/ShaunH66/MachineCostingAppliction/pkg/spec"
)

func TestValidateDefaultSpec(t *testing.T) {
	r := Validate(spec.Default())
	if !r.Valid {
		t.Fatalf("default spec invalid: %s", r.Summary)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("default spec has warnings: %+v", r.Warnings)
	}
}

func TestValidateOperatingErrors(t *testing.T) {
	s := spec.Default()
	s.Operating.CycleRatePerMin = 0
	s.Operating.PressureBar = -1
	s.Operating.CompressorEfficiencyKWhPerM3 = 0
	s.Operating.ElectricityCostPerKWh = 0

	r := ValidateSchema(s)
	if r.Valid {
		t.Fatal("expected invalid report")
	}
	if len(r.Errors) != 4 {
		t.Errorf("errors = %d, want 4: %+v", len(r.Errors), r.Errors)
	}
}

func TestValidateScheduleBounds(t *testing.T) {
	cases := []struct {
		name  string
		hours int
		days  int
		valid bool
	}{
		{"ok", 8, 5, true},
		{"round the clock", 24, 7, true},
		{"zero hours", 0, 5, false},
		{"too many hours", 25, 5, false},
		{"zero days", 8, 0, false},
		{"eight days a week", 8, 8, false},
	}
	for _, tc := range cases {
		s := spec.Default()
		s.Operating.HoursPerDay = tc.hours
		s.Operating.DaysPerWeek = tc.days
		r := ValidateSchema(s)
		if r.Valid != tc.valid {
			t.Errorf("%s: valid = %v, want %v (%s)", tc.name, r.Valid, tc.valid, r.Summary)
		}
	}
}

func TestValidateVoidedRowsAreInfoNotErrors(t *testing.T) {
	s := spec.Default()
	s.Cylinders = append(s.Cylinders, spec.CylinderSpec{Quantity: 0, BoreMM: 50, StrokeMM: 100})
	s.Servos = append(s.Servos, spec.ServoSpec{Quantity: 1, PowerWatts: 0, UtilizationPct: 50})

	r := ValidateSchema(s)
	if !r.Valid {
		t.Fatalf("voided rows must not invalidate the spec: %s", r.Summary)
	}
	if len(r.Info) != 2 {
		t.Errorf("info findings = %d, want 2: %+v", len(r.Info), r.Info)
	}
}

func TestValidateNoComponents(t *testing.T) {
	s := spec.Default()
	s.Cylinders = nil
	s.Servos = nil

	r := ValidateSchema(s)
	if !r.Valid {
		t.Fatalf("empty machine must validate: %s", r.Summary)
	}
	if len(r.Warnings) != 1 || !strings.Contains(r.Warnings[0].Message, "no components") {
		t.Errorf("expected a no-components warning, got %+v", r.Warnings)
	}
}

func TestValidateNoComponentsButActiveDump(t *testing.T) {
	s := spec.Default()
	s.Cylinders = nil
	s.Servos = nil
	s.SafetyDump = &spec.SafetyDumpConfig{
		Enabled:              true,
		ReceiverVolumeLiters: 10,
		TriggerMode:          spec.TriggerRandomEventsPerHour,
		DumpsPerHour:         2,
	}

	r := ValidateSchema(s)
	if len(r.Warnings) != 0 {
		t.Errorf("active dump counts as a component, got warnings %+v", r.Warnings)
	}
}

func TestValidateSafetyDump(t *testing.T) {
	s := spec.Default()
	s.SafetyDump = &spec.SafetyDumpConfig{Enabled: true, ReceiverVolumeLiters: 10, TriggerMode: "sometimes"}
	if r := ValidateSchema(s); r.Valid {
		t.Error("unknown trigger_mode must be an error")
	}

	s.SafetyDump = &spec.SafetyDumpConfig{Enabled: true, ReceiverVolumeLiters: 10}
	if r := ValidateSchema(s); r.Valid {
		t.Error("enabled dump without trigger_mode must be an error")
	}

	s.SafetyDump = &spec.SafetyDumpConfig{Enabled: true, ReceiverVolumeLiters: 0, TriggerMode: spec.TriggerRandomEventsPerHour, DumpsPerHour: 2}
	r := ValidateSchema(s)
	if !r.Valid {
		t.Errorf("empty receiver is a warning, not an error: %s", r.Summary)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected empty-receiver warning")
	}

	s.SafetyDump = &spec.SafetyDumpConfig{Enabled: true, ReceiverVolumeLiters: 10, TriggerMode: spec.TriggerAfterEveryCycle, DumpsPerHour: 6}
	r = ValidateSchema(s)
	if len(r.Info) != 1 {
		t.Errorf("expected info about ignored dumps_per_hour, got %+v", r.Info)
	}

	s.SafetyDump = &spec.SafetyDumpConfig{Enabled: false}
	if r := ValidateSchema(s); !r.Valid || len(r.Warnings) != 0 {
		t.Errorf("disabled dump must produce no findings: %s", r.Summary)
	}
}
