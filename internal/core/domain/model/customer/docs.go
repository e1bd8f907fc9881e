// Package customer provides the Customer aggregate of the order ledger.
// A customer is mostly a contact record: required first/last name, an
// optional format-checked email whose uniqueness the persistence layer
// enforces, and a free-form address block.
package customer
