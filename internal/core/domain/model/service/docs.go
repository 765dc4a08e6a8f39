// Package service contains the Service aggregate: an entry of the laundry catalog
// such as "Standard Wash & Iron" priced per kilogram or per item.
//
// Orders reference a service and copy its price into their total at creation time,
// so later price changes never alter existing orders. A service that is still
// referenced by orders cannot be deleted.
package service
