/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(appending, replacement or removal of the last item) creates a copy, leaving the original
unmodified. Under the hood, copy-on-write retains most of the memory held by the original,
and creates a new incarnation of the path from the root of the tree to the modified leaf
only. Thus, most of the structure/memory is shared between original and copy, transparently
to clients.

Vectors are a tree of nodes with a fixed degree of 2^bits (32 by default), with values
held in the leafs. The rightmost leaf is kept outside of the tree (the “tail”), which
makes appending amortized O(1). The design follows the persistent vectors of Clojure,
as described by Jean Niklas L'orange in “Understanding Persistent Vector”
(https://hypirion.com/musings/understanding-persistent-vector-pt-1).

Immutable vectors are inherently concurrency-safe.

    v := vector.Of(1, 2, 3)
    w := v.Append(4)     // v is still [1 2 3]
    sum := v.Fold(0, func(a, b int) int { return a + b })   // 6

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.vector'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.vector")
}
