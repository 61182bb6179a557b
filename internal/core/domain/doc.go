// Package domain holds the core business entities of the directory
// search engine: collections, entries, schema definitions, and the
// search query model. It has no dependencies on adapters or storage.
package domain
