// Package services holds the process-wide note and settings stores.
//
// Each store keeps its state in memory, is filled once by Init at startup and
// writes its whole record back to the key-value repository after every
// mutation. Mutations of one store are serialized; the two stores use
// independent keys and locks.
package services
