// Package file provides the TOML file-backed configuration store.
//
// Keys use dot notation ("oauth.client_id") and are stored as nested
// tables in ~/.tubedash/config.toml.
package file
