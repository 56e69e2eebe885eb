/*
Package sorted implements an immutable persistent map with keys kept in ascending order.

The map is backed by a B-tree from github.com/google/btree. Updates clone the tree
lazily and write into the clone only: nodes are copied the first time an update
touches them, all other nodes stay shared with the original map.

    m := sorted.NewOrdered[string, int]().Assoc("b", 2).Assoc("a", 1)
    m.String()      // "{a:1 b:2}"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sorted

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.sorted'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.sorted")
}
