// Package services holds domain logic that spans more than one driver session.
//
// The package includes:
//   - ShiftReporter: rolls every driver's summary up into a shift report
package services
