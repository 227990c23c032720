// Package format holds the registry of file types the application accepts
// for compression.
//
// The registry is a fixed table mapping a display category (Images,
// Documents, ...) to its file extensions. It is built once at startup and
// shared read-only: components use it to answer "is this file supported?"
// and to render the supported-formats panel and the open-dialog filter.
package format
