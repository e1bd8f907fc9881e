// Package printer provides the Printer aggregate: a machine on the shop
// floor with its hardware identity, build volume, operational status, and
// the optional firmware API endpoint the background poller uses.
//
// A printer cannot be deleted while it has queued, printing, or paused
// jobs; that rule lives in the delete-printer use case because it spans
// two aggregates.
package printer
