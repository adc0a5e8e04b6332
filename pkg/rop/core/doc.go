// Package core carries run-time options through context.Context. Options are
// read by the concurrent aggregations in package mass.
package core
