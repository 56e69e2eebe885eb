/*
Package hamt implements an immutable persistent hash map and a hash set on top of it.

The map is a Hash Array Mapped Trie (HAMT), as described by Phil Bagwell in
“Ideal Hash Trees” (2001). A key's 64-bit hash is split into chunks of 5 bits, each
chunk being an index into a node of the trie at the corresponding depth. Nodes are
compressed: a 32-bit bitmap tells which of the 32 possible entries are present, and
only present entries are stored. An entry is either a key/value pair or a sub-trie.
Keys with identical 64-bit hashes end up together in a collision node.

Like the other data structures of this module, maps have copy-on-write behaviour:
Assoc and Without create new incarnations of the nodes on the path from the root to
the affected entry, and share everything else with the original.

Key equality and hashing are provided by a hashing.Hasher. The default hasher works
for strings, numbers, comparable structs and for all collection types of this module.

    m := hamt.Empty[rune, string]().Assoc('R', "red").Assoc('G', "green")
    m.GetOrElse('B', "unknown")     // "unknown"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hamt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.hamt'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.hamt")
}
