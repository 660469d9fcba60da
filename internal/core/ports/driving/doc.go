// Package driving defines interfaces that external actors (TUI, CLI, MCP) use
// to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Implementations live in internal/core/services and internal/connectors.
package driving
