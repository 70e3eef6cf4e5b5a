/*
Package dict implements an immutable persistent sorted dictionary on top of
the avl engine.

An immutable persistent dictionary has copy-on-write behaviour: each
“modification” (insertion, replacement or deletion) creates a copy, leaving
the original unmodified. Under the hood, copy-on-write retains most of the
memory held by the original, and creates a new incarnation of parts of the
structure only. Thus, most of the structure/memory is shared between
original and copy, transparently to clients.

Immutable dictionaries are inherently concurrency-safe.

Entries are ordered by a three-way key comparator supplied by the client at
creation time. The comparator is assumed to be pure and stable for as long
as a key has an entry in any incarnation of the dictionary.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dict

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.dict'.
func tracer() tracing.Trace {
	return tracing.Select("persist.dict")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dict: "+msg, msgargs...)
		panic(msg)
	}
}
