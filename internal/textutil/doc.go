// Package textutil provides caseless text comparison helpers.
//
// Matching uses Unicode case folding from golang.org/x/text/cases rather than
// strings.ToLower, so titles and author names written in scripts with
// context-sensitive casing compare the way a reader expects. Callers should
// use these helpers for every user-facing lookup so that removal and search
// agree on what "the same title" means.
package textutil
