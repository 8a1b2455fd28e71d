/*
Package treemap implements a map keyed by fixed-length sequences of key
components.

A map created with New(depth) consults exactly depth components of every
key. Components are compared by value: comparable Go values with ==, []byte
by content, and types implementing Hashable through their own Equal. Pointers
compare by identity. Keys shorter than depth read their missing components
as nil, which is a valid component like any other.

Internally every component level is a node that remembers the order in which
its components were first seen, so iteration is depth first and follows
insertion order. Delete leaves emptied branches in place; Compact removes
them.
*/
package treemap
