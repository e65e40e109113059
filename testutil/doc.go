// Package testutil provides deterministic random data generation and a
// brute-force nearest-neighbor reference implementation for tests and
// benchmarks.
package testutil
