// Package location holds Location, an informational record of a branch or drop-off
// point. Locations are not referenced by customers or orders.
package location
