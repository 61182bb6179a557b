// Package driving defines the driving ports (primary adapters' view of
// the core): search and import use cases consumed by the CLI and MCP
// adapters.
package driving
