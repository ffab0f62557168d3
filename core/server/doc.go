// Package server holds configuration for the optional HTTP surface.
//
// The loader itself runs as a one-shot CLI command; the serve command wraps it
// in a small Fiber application so a workbook can be uploaded over HTTP and the
// load report returned as JSON. This package only carries the settings for
// that surface (port, API key, upload size limit).
package server
