// Package driver models a delivery driver's shift.
//
// A Session moves through the states of State in response to login, logout,
// depart, deliver and arrive, and keeps running totals of deliveries, tips
// and minutes. Rejected operations return a PreconditionError (or
// ErrTimeGoesBackwards) and leave the session untouched.
package driver
