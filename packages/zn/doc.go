// Package zn holds small helpers shared by green programs: elapsed time,
// defaulted lookups, HTML escaping, debug printing, flock-guarded file
// access and template inclusion.
package zn
