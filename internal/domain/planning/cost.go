// Package planning holds the pure rules of the OS engineering lifecycle:
// cost estimation and the planning / replanning gates. Nothing here performs
// I/O; the lifecycle use case is the only caller that mixes these rules with
// persistence and notifications.
package planning

// DefaultHourlyRate is the HH rate (BRL per labor-hour) used for both
// planning and replanning estimates.
const DefaultHourlyRate = 95.0

// EstimateCost returns (hoursPlanned + hoursAdditional) * hourlyRate.
// The result is not rounded; rounding happens at display time.
func EstimateCost(hoursPlanned, hoursAdditional, hourlyRate float64) float64 {
	return (hoursPlanned + hoursAdditional) * hourlyRate
}
