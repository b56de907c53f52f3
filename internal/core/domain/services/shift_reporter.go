package services

import (
	"slices"
	"strings"

	"shift/internal/core/domain/model/driver"
)

// DriverReport is one driver's line in a ShiftReport.
type DriverReport struct {
	Name    string
	Summary driver.Summary
}

// ShiftReport is the roll-up of all driver summaries for a shift.
//
// Totals count only drivers that completed at least one delivery.
// AvgDeliveringMinutes is the shift-wide average, order placed to delivered,
// truncated to whole minutes.
type ShiftReport struct {
	Drivers              []DriverReport
	Deliveries           int
	DeliveringMinutes    int
	DrivingMinutes       int
	Tips                 float64
	AvgDeliveringMinutes int
}

// ShiftReporter builds shift reports from driver sessions.
//
// Example usage:
//
//	reporter := services.NewShiftReporter()
//	report, err := reporter.Report(sessions)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Deliveries, report.Tips)
type ShiftReporter struct{}

func NewShiftReporter() ShiftReporter {
	return ShiftReporter{}
}

// Report summarizes sessions in name order. Any unconstructed session fails
// the whole report.
func (r ShiftReporter) Report(sessions []*driver.Session) (ShiftReport, error) {
	report := ShiftReport{
		Drivers: make([]DriverReport, 0, len(sessions)),
	}

	for _, s := range sessions {
		if err := s.Validate(); err != nil {
			return ShiftReport{}, err
		}

		summary := s.Summary()
		report.Drivers = append(report.Drivers, DriverReport{
			Name:    s.Name(),
			Summary: summary,
		})

		if !summary.HasFigures() {
			continue
		}
		report.Deliveries += summary.Deliveries
		report.DeliveringMinutes += summary.TotalDeliveringMinutes
		report.DrivingMinutes += summary.TotalDrivingMinutes
		report.Tips += summary.Tips
	}

	slices.SortFunc(report.Drivers, func(a, b DriverReport) int {
		return strings.Compare(a.Name, b.Name)
	})

	if report.Deliveries > 0 {
		report.AvgDeliveringMinutes = report.DeliveringMinutes / report.Deliveries
	}

	return report, nil
}
