// Package persist implements the named storage slot holding the serialized
// session record.
//
// # Components
//
//   - [Backend]: Save/Load/Delete over a single opaque byte slot.
//   - [Memory]: in-process backend for tests and single-binary setups.
//   - [File]: one JSON file per slot, written atomically.
//   - [Redis]: go-redis backed slot for multi-instance setups.
//
// # Architecture boundaries
//
// Backends store opaque bytes. Serialization, role validation, and the
// corrupt-slot policy belong to the session store; a backend never inspects
// the data it holds.
//
// # What this package must NOT do
//
//   - Decide what a valid session looks like.
//   - Write to any key other than the one the caller names.
//   - Panic on unavailable infrastructure; failures surface as wrapped
//     [ErrUnavailable].
package persist
