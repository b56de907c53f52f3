// Package kernel holds the value objects shared by the shift domain:
//   - UUID: identifier of drivers and orders
//   - Instant: a reported point in time, with ElapsedMinutes between two of them
//
// Both are immutable and reject their zero value through Validate.
package kernel
