// Package printjob provides the PrintJob aggregate: one run of a printer,
// optionally fulfilling an order, with its lifecycle state machine
// (queued → printing ⇄ paused → completed/failed, cancelled from any
// active state), a clamped progress percentage, and the actual duration
// that feeds the operating-hours report.
package printjob
