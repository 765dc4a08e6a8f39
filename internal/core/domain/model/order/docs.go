// Package order implements the Order aggregate and its status history.
//
// An order belongs to one customer and one service. Its total price is quoted once,
// when the order is created, and is never recalculated afterwards, even when the
// service price changes.
//
// Every status change that actually changes the status is recorded as a StatusChange.
// The aggregate keeps the changes it has not yet persisted; the repository stores them
// together with the order row and the unit of work clears them after commit:
//
//	o, _ := order.NewOrder(customerID, wash, weight, pickupDate, order.Morning, "", pricing, clk.Now())
//	o.PendingChanges() // [placed@now]
//
//	changed, _ := o.ChangeStatus(order.Processing, clk.Now())
//	changed, _ = o.ChangeStatus(order.Processing, clk.Now()) // false, nothing recorded
//
// Any recognised status may follow any other.
package order
