package driver

// Summary is a driver's shift statistics. Averages are whole minutes per
// delivery, truncated.
type Summary struct {
	Deliveries             int
	AvgDeliveringMinutes   int
	AvgDrivingMinutes      int
	Tips                   float64
	TotalDeliveringMinutes int
	TotalDrivingMinutes    int
}

// HasFigures reports whether there is anything beyond the delivery count to
// show. A driver with no deliveries has no averages.
func (s Summary) HasFigures() bool {
	return s.Deliveries > 0
}
