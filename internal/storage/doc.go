// Package storage persists simulation runs on disk.
//
// Each run lives in its own directory under the data dir:
//
//	<data>/<name>_<unixnano>/
//	    metadata.json   parameters, diagnostics, metrics
//	    frames.csv      time, then η at each sampled position
package storage
