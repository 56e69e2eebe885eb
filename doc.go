/*
Package immutable is a collection of persistent immutable data structures, together
with some helpers for handling them in a functional style.

The data structures live in sub-packages:

    persistent/vector   an indexed sequence (a 32-way trie plus tail, like Clojure's vectors)
    persistent/hamt     a hash map and a hash set (a hash array mapped trie)
    persistent/sorted   a map with ordered keys (a copy-on-write B-tree)
    seq                 lazy, restartable sequences and transformation pipelines

This package offers short-hand builders for the most common cases:

    colors := immutable.Map(immutable.Tup('R', "red"), immutable.Tup('G', "green"))
    squares := vector.FromSeq(seq.Map[int](immutable.RangeOfInt(0, 10), func(i int) int {
        return i * i
    }))

Every collection value may be shared between goroutines without locking. An update
returns a new value and leaves the original unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package immutable
