// Package kv provides the key-value persistence layer NoteWave stores its
// records in.
//
// # Overview
//
// The package defines a Repository interface (load/save by string key,
// values are serialized text) and two implementations:
//
//   - SQLiteRepository: persists pairs in the kv table created by the
//     embedded migrations (see internal/migrations).
//   - MemoryRepository: a map guarded by a mutex, used when the database
//     cannot be opened and in tests.
//
// # Contract
//
// Get returns (nil, nil) for an absent key. Set overwrites any previous value.
// Delete of an absent key is not an error. SetMany writes all pairs or none.
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "notes", payload)
//	payload, _ = repo.Get(ctx, "notes")
package kv
