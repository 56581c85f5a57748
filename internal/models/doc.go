// Package models defines the NoteWave records (notes and settings), the
// timestamp and mood types they use, and the normalization applied when
// persisted records are read back.
//
// Normalization is the single place where older stored shapes are migrated:
// the legacy "text" field becomes "content", and every optional field gets
// its documented default. Decoding is lenient per field, so one malformed
// value never costs the whole record.
package models
