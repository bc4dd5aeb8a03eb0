// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package memory provides the storage used by the in-memory exercises.

# Ids

A Sequence is an explicit id generator owned by whoever stores the records:

	seq := memory.NewSequence(2)
	id := seq.Next() // 2, then 3, 4, ...

Ids are never reused, even after deletes.

# Ordered Maps

OrderedMap keeps records keyed by id and lists them in insertion order:

	tasks := memory.NewOrderedMap[*models.SimpleTask]()
	tasks.Set(id, task)
	all := tasks.Values()

Neither type locks. The owning handler guards both with one mutex.
*/
package memory
