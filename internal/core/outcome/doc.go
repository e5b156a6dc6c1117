// Package outcome decides who wins between any two moves of an odd-sized,
// ordered move set.
//
// Moves carry no meaning beyond their position. Each move beats the Half
// moves that follow it cyclically and loses to the Half moves that precede
// it, so every pair of distinct moves has exactly one winner.
package outcome
