// Package payment contains the Payment aggregate: the single record of money
// taken for an order, including tip, cash-tendered/change math, and the
// off-shift flag for payments recorded while no shift is active.
package payment
