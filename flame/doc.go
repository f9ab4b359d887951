// Package flame animates an iterated function system point cloud and drives
// the fade/splat/present cycle of a Surface that accumulates it.
package flame
