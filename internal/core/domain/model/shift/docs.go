// Package shift contains the Shift aggregate: the cash-drawer ledger that
// accumulates revenue, tips, and the cash/card split per accepted payment,
// and computes the drawer variance at close.
package shift
