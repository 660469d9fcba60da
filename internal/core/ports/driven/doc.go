// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the analytics client to function:
//
//   - TokenStore: Holds the session's access token in memory
//   - Authorizer: Obtains a fresh token through user consent
//   - RequestExecutor: Performs one authenticated GET and classifies the outcome
//
// # Collaborators
//
// These back the outer surfaces and can be swapped freely:
//
//   - AllowList: Decides which emails may sign in
//   - SavedReportStore: Saved report persistence with live updates
//   - ExchangeRateProvider: Currency conversion for revenue views
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
