// Package types defines the chest layout, the inventory model, storage
// configuration, and the standard errors shared by the chests packages.
package types
