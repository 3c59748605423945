// Package middleware exposes HTTP route guarding built on top of the
// authshell session store.
//
// # Guards
//
//   - [Guard] redirects unauthenticated requests to the entry view; the
//     protected handler never runs, not even transiently.
//   - [RequireManager] rejects non-manager sessions with 403.
//   - [TokenGuard] is Guard plus a signed session cookie bound to the active
//     session ID.
//
// Each guard reads the store's derived flags on every request and injects the
// active [authshell.Session] into the request context.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into store reads. It does NOT
// implement authentication logic itself and never transitions session state.
//
// # What this package must NOT do
//
//   - Call Login, Signup, or Logout.
//   - Act as a security boundary; it only gates rendering and routing.
//   - Touch the persistence backend.
package middleware
