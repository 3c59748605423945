// Package authshell provides the client-side session core of the ProjectHealth
// dashboard: a single-authority session store with login/signup/logout
// operations, pluggable persistence of the active session, and derived
// authentication/role flags consumed by route guarding.
//
// The package is designed around one invariant: at most one Session is active
// per Store, and only the Store's transition logic may write it or its
// persisted copy. All Store methods are safe to call from multiple goroutines
// after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// authshell is the public surface. It exposes [Store], [Builder], [Config],
// [Session], and the [Authenticator] strategy. Internal coordination such as
// audit dispatch lives under internal/ and is never exported. Persistence backends
// live in the persist subpackage, HTTP route guarding in middleware, and the
// read-only dashboard dataset in dashboard.
//
// # What this package must NOT do
//
//   - Verify credentials by default. The shipped [PassthroughAuthenticator]
//     reproduces the reference behavior (any non-empty pair succeeds after a
//     simulated latency). Real verification is a deliberate substitution via
//     [Builder.WithAuthenticator], never a silent upgrade.
//   - Perform navigation. Callers transition views after Login/Signup resolve.
//   - Treat route guarding as a security boundary; the guard only gates
//     rendering.
package authshell
