// Package order contains the Order aggregate root, its line items, and the
// status state machine that governs the order lifecycle on the POS, kitchen,
// and queue surfaces.
//
// The transition table is encoded as data in status.go; every mutation path
// (POS status buttons, kitchen bump, payment completion) goes through it, so
// an order can never appear ready to a customer before the kitchen marked it
// so, and can never complete unpaid.
package order
