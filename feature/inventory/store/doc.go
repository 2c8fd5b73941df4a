// Package store keeps the normalized records of a session in memory.
//
// There is one ordered collection per category. Collections only grow through the Add
// methods and shrink through Reset or ResetCategory. A Store is not safe for concurrent
// use; the inventory service serializes access to it.
//
// # Merge Modes
//
//	mode     constructor          behavior
//	append   New()                every record is appended, so re-ingesting a file duplicates it
//	dedup    New(WithDedup())     a record is skipped when its key is already stored
//
// Append is the default: re-ingesting an export represents a fresh snapshot. In dedup
// mode the key is the record id, or the name when the id is absent (see the Key methods
// in models). Duplicates inside one batch are dropped as well, and the first occurrence
// wins. The Add methods return how many records were actually stored.
//
// # Reads
//
// The accessors return copies. An empty collection is returned as an empty, non-nil
// slice so it encodes as [] rather than null.
//
// # Usage
//
//	st := store.New(store.WithDedup())
//	added := st.AddWeapons(weapons)
//	counts := st.Counts()
package store
