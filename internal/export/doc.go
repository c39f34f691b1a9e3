// Package export renders stored runs and single profiles to CSV, JSON and
// SVG.
package export
