// Package driven defines the driven ports (secondary adapters) the
// core services depend on: collection and entry persistence, the
// schema registry, and configuration.
package driven
