package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ShaunH66/MachineCostingAppliction/pkg/cost"
	"github.com/ShaunH66/MachineCostingAppliction/pkg/energy"
	"github.com/ShaunH66/MachineCostingAppliction/pkg/spec"
	"github.com/ShaunH66/MachineCostingAppliction/pkg/validation"
)

// loadAndValidate loads the machine spec and runs full validation.
func loadAndValidate(projectPath string) (*spec.MachineSpec, *validation.Report, error) {
	machineSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	report := validation.Validate(machineSpec)
	return machineSpec, report, nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runUsage(projectPath string, asJSON bool) error {
	machineSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors; fix before resolving usage")
	}

	usage := energy.Resolve(machineSpec)

	if asJSON {
		return writeJSON(usage)
	}
	printUsage(usage)
	return nil
}

func runEstimate(projectPath string, asJSON bool) error {
	machineSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors; fix before estimating cost")
	}

	usage := energy.Resolve(machineSpec)
	costReport := cost.Estimate(machineSpec, usage)

	if asJSON {
		return writeJSON(map[string]any{
			"spec":       machineSpec,
			"validation": report,
			"cost":       costReport,
		})
	}

	printCostReport(costReport)

	if len(report.Warnings) > 0 || len(report.Info) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
