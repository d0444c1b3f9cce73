// Package storage contains message history adapters.
//
// The memory subpackage is the default backend; the redis subpackage
// keeps the history in a Redis list for setups where it should survive
// restarts.
package storage
