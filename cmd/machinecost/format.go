package main

import (
	"fmt"
	"strings"

	"github.com/ShaunH66/MachineCostingAppliction/pkg/cost"
	"github.com/ShaunH66/MachineCostingAppliction/pkg/energy"
	"github.com/ShaunH66/MachineCostingAppliction/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printCostReport(r *cost.Report) {
	cur := r.Currency

	fmt.Println("Machine Running Cost Estimate")
	fmt.Println("=============================")
	fmt.Println()
	fmt.Printf("  Annual cost:  %s\n", formatMoney(cur, r.Summary.TotalAnnual))
	fmt.Printf("  Weekly cost:  %s\n", formatMoney(cur, r.Summary.TotalWeekly))
	fmt.Printf("  Hourly cost:  %s\n", formatMoney(cur, r.Summary.TotalHourly))
	fmt.Println()

	fmt.Println("Cost Contribution (hourly)")
	fmt.Println("--------------------------")
	for _, share := range r.Shares {
		fmt.Printf("  %-20s %12s  %5.1f%%\n",
			share.Subsystem, formatMoney(cur, share.HourlyCost), share.Percent)
	}
	fmt.Println()

	printBreakdownTable(cur, r.Breakdown)

	fmt.Println()
	fmt.Printf("Monthly (approx): %s   Energy: %.2f kWh/hour\n",
		formatMoney(cur, r.Summary.TotalMonthly), r.Usage.TotalKWhPerHour)
}

func printBreakdownTable(cur string, b cost.Breakdown) {
	fmt.Printf("%-10s %16s %16s %16s %16s\n",
		"Period", "Pneumatics", "Safety Dump", "Servos", "Total")
	fmt.Printf("%-10s %16s %16s %16s %16s\n",
		"----------", "----------------", "----------------", "----------------", "----------------")

	rows := []struct {
		label string
		vals  [4]float64
	}{
		{"Hourly", [4]float64{b.PneumaticActuation.Hourly, b.PneumaticWaste.Hourly, b.Servos.Hourly, b.Total.Hourly}},
		{"Daily", [4]float64{b.PneumaticActuation.Daily, b.PneumaticWaste.Daily, b.Servos.Daily, b.Total.Daily}},
		{"Weekly", [4]float64{b.PneumaticActuation.Weekly, b.PneumaticWaste.Weekly, b.Servos.Weekly, b.Total.Weekly}},
		{"Annual", [4]float64{b.PneumaticActuation.Annual, b.PneumaticWaste.Annual, b.Servos.Annual, b.Total.Annual}},
	}

	for _, row := range rows {
		fmt.Printf("%-10s", row.label)
		for _, v := range row.vals {
			fmt.Printf(" %16s", formatMoney(cur, v))
		}
		fmt.Println()
	}
}

func printUsage(u *energy.Usage) {
	fmt.Println("Air & Energy Demand")
	fmt.Println("===================")
	fmt.Println()
	fmt.Printf("  Free air per cycle:   %.6f m3\n", u.FreeAirPerCycleM3)
	fmt.Printf("  Free air per hour:    %.3f m3\n", u.FreeAirPerHourM3)
	fmt.Printf("  Actuation energy:     %.3f kWh/hour\n", u.ActuationKWhPerHour)
	if u.DumpsPerHour > 0 {
		fmt.Printf("  Safety dumps:         %.1f /hour x %.4f m3\n", u.DumpsPerHour, u.FreeAirPerDumpM3)
		fmt.Printf("  Waste energy:         %.3f kWh/hour\n", u.WasteKWhPerHour)
	}
	fmt.Printf("  Servo draw:           %.0f W average\n", u.ServoPowerWatts)
	fmt.Printf("  Servo energy:         %.3f kWh/hour\n", u.ServoKWhPerHour)
	fmt.Println()
	fmt.Printf("  Total:                %.3f kWh/hour\n", u.TotalKWhPerHour)
}

// formatMoney renders a cost with the spec's currency symbol and thousands
// grouping, e.g. £12,345.67.
func formatMoney(symbol string, v float64) string {
	if symbol == "" {
		symbol = "£"
	}
	s := fmt.Sprintf("%.2f", v)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if neg {
		return "-" + symbol + b.String() + fracPart
	}
	return symbol + b.String() + fracPart
}
