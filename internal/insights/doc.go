// Package insights derives display order and summary statistics from a note
// collection. Functions here never touch storage and never fail.
package insights
