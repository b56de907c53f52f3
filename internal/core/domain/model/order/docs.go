// Package order provides the Order value a driver takes out on a delivery.
//
// The shift domain only needs two things from an order: a description to show
// while it is being delivered and the instant it was placed, which starts the
// order-to-delivery clock. Orders are created through NewOrder and never change
// afterwards.
package order
