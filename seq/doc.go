/*
Package seq implements lazy sequences and transformation pipelines on them.

A Seq is a producer of values. It does not hold its values; it hands out
iterators which compute them on demand. Transformations like Map, FlatMap or Filter
wrap a Seq into a new stage without evaluating anything. Only a consumer (FoldLeft,
ToSlice, a materialization into a persistent collection, …) drives the pipeline,
pulling elements through all stages one at a time.

Pipelines are restartable: every call of Iterator() re-executes the whole chain
from its source. Draining a pipeline twice computes every stage twice and yields
the same elements both times, provided the functions involved are pure. Iterators,
in contrast, are single-use.

    squares := seq.Map(seq.RangeOfInt(0, 4), func(i int) int { return i * i })
    sum := seq.FoldLeft(squares, 0, func(acc, n int) int { return acc + n }) // 14

All sequences of this package are finite as long as their sources are.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.seq'.
func tracer() tracing.Trace {
	return tracing.Select("fp.seq")
}
