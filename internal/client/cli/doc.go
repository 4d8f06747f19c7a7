// Package cli provides the interactive WholesaleLens command-line client.
//
// It wires configuration, the identity provider, the backend connection
// manager, the typed API and the startup session into an interactive REPL.
// Typical flow: restore or paste a delegation token, watch the startup
// sequence reach ready, then browse deals and buyers.
//
// Key features:
//   - Login / Logout with delegation tokens
//   - Startup status with classified errors and a retry affordance
//   - First-time profile setup
//   - Deal pipeline and buyer list views
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
