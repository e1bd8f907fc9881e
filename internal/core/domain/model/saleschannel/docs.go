// Package saleschannel provides the SalesChannel aggregate: a marketplace
// or storefront orders originate from, with the commission rate it charges.
package saleschannel
