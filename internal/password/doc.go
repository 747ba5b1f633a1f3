// Package password estimates password strength with a pattern-penalised
// entropy heuristic.
//
// The estimate is length × log2(pool), where the pool is the sum of the
// character classes present, minus fixed penalties for a few well known weak
// shapes. It is a teaching aid, not an attacker model: there is no
// dictionary and no cracking simulation.
package password
