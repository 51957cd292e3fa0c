// Package graph draws linear equations onto a pixel canvas and tracks the
// pointer readout.
//
// Two layouts exist. Positive mode pins the origin 5px in from the bottom-left
// corner and shows only the first quadrant. Quadrant mode puts the origin at the
// panel center.
//
// Only the y-axis is scaled. A pixel column maps to math x by subtracting the
// origin offset, so one unit of x is always one pixel. The y scale is picked
// once so the largest line still fits the panel height.
package graph
