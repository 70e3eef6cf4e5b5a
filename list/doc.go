/*
Package list implements an immutable persistent indexable sequence,
designed for use-cases similar to Go slices.

An immutable persistent list has copy-on-write behaviour: each
“modification” of the list (insertion, replacement or deletion) creates a
copy, leaving the original unmodified. Under the hood, copy-on-write
retains most of the memory held by the original, and creates a new
incarnation of parts of the structure only. Thus, most of the
structure/memory is shared between original and copy, transparently to
clients.

Immutable lists are inherently concurrency-safe.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.list'.
func tracer() tracing.Trace {
	return tracing.Select("persist.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
