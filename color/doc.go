// Package color provides an immutable 24-bit sRGB color type with
// conversions between the RGB, HSV, HSL, and CMYK color spaces, hex
// parsing and formatting, channel operations, and distance functions
// suitable for nearest-neighbor search.
//
// RGBDistance and HSLDistance satisfy the covertree.DistanceFunc contract
// and are the metrics the colorname package feeds to its cover tree.
package color
