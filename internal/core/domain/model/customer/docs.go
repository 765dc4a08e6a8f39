// Package customer contains the Customer aggregate: a person who places laundry orders.
//
// A customer owns zero or more orders. Deleting a customer removes its orders and
// their status history; that cascade is enforced by the store.
package customer
