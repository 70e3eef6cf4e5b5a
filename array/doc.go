/*
Package array implements an immutable sequence backed by a growable array.

It upholds the same sequence contract as the list package, trading O(log n)
balanced-tree operations for O(1) positional reads and O(n) copying writes.
Since every write copies the backing store wholesale, there is no
structural sharing between incarnations; originals stay unmodified all the
same.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package array

import "fmt"

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("array: "+msg, msgargs...)
		panic(msg)
	}
}
