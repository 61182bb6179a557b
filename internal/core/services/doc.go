// Package services implements the core use cases: tenant-scoped
// directory search and the administrative CSV import pipeline. Services
// depend only on the driven ports; adapters are wired in at startup.
package services
