// Package session provides session management for the Connect 4 server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - UUID session id generation
//   - Session lifecycle management (create, lookup, list, discard)
//
// Core Types:
//
// Manager is the registry of active games. Each session pairs an id with
// its own engine instance plus creation and last-access timestamps.
//
// Concurrency:
//
// The manager is safe for concurrent use. Structural operations (create,
// delete) are serialized with respect to lookups of the same id via an
// internal RWMutex. Mutation of an individual game's state is serialized
// one layer up, in the service.
//
// Sessions are held in memory only and never expire on their own; they
// are removed by an explicit discard request.
//
// Usage:
//
//	manager := session.NewManager()
//	sess := manager.Create(p1, p2)
//
//	sess, err := manager.Get(sess.ID)
//	if err != nil {
//		log.Fatal(err)
//	}
package session
