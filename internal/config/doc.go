// Package config provides configuration loading, merging, and validation for
// the desktop client, and owns session credential persistence.
//
// Configuration is assembled from multiple sources; the first source to set a
// field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry point is [GetClientConfig]. Session credentials (server URL,
// password, token) are exchanged with the sync engine as an opaque
// [models.SessionCredentials] value; the engine never touches the underlying
// file format.
package config
