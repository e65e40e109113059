package covertree

import "errors"

var (
	// ErrEmptyTree is returned when a nearest-neighbor query is made against
	// a tree holding no points. There is no sentinel value of the element
	// type the tree could safely fabricate, so the caller must check.
	ErrEmptyTree = errors.New("covertree: query on empty tree")

	// ErrNilDistanceFunc is returned by the constructors when no distance
	// function is supplied. The tree is unusable without one.
	ErrNilDistanceFunc = errors.New("covertree: distance function must not be nil")
)
