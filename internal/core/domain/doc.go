// Package domain defines the core business entities for tubedash.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - AccessToken: The in-memory bearer credential for the session
//   - QueryParams: Ordered query parameters for a single API call
//   - ColumnarPayload: The analytics API's header + rows table
//   - AnalyticsReport: Row-oriented records produced from a ColumnarPayload
//   - ChannelStats, VideoItem: Flattened resource API projections
//   - SavedReport: A report definition saved by the signed-in user
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
