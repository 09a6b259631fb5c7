package cptrie

/*

# Compact code point tries

This package maps every Unicode code point (U+0000..U+10FFFF) to a small
unsigned value using a two level table that is cheap to query and compact to
store. It is the lookup structure behind character property tables: general
category, script, case mapping data and similar dense mappings.

- a mutable `Builder` stages range assignments
- `Build` compacts them into an immutable `Trie`
- `Load` validates a serialized trie and returns a `Trie` reading directly
  from the caller's buffer

A `Trie` only ever exists over bytes that have passed validation. `Build`
encodes and then loads, so built and loaded tries share one code path.

## Blocks, index and data

The domain is cut into blocks of 64 code points. Each block below
`HighStart` has one index entry holding the element offset of its 64 values
in the data array. Blocks with equal content share one copy in the data
array, and a new block may overlap the tail of the array when a suffix of
the array equals a prefix of the block, so offsets need not be multiples
of 64.

Every code point at or above `HighStart` maps to `HighValue` and takes no
storage. Most of the supplementary planes are unassigned, so `HighStart` is
usually far below 0x110000.

## Fast and Small

`TypeFast` adds a 128 entry table for ASCII in front of the index lookup.
`TypeSmall` omits it. The type changes only the lookup path and the size,
never the mapping.

## Serialized layout

All integers are little-endian. w is the value width in bytes (1, 2 or 4).

	+----------------------+  1 byte: trie type (0 fast, 1 small)
	| trie_type            |
	+----------------------+  1 byte: value width (0 8-bit, 1 16-bit, 2 32-bit)
	| value_width          |
	+----------------------+  4 bytes
	| high_start           |
	+----------------------+  w bytes
	| high_value           |
	+----------------------+  w bytes
	| error_value          |
	+----------------------+  4 bytes
	| index_len            |
	+----------------------+  4 bytes
	| data_len             |
	+----------------------+  index_len * 4 bytes: element offsets into data
	| index                |
	+----------------------+  data_len * w bytes
	| data                 |
	+----------------------+  128 * w bytes, fast tries only
	| ascii                |
	+----------------------+

`index_len` is always `high_start / 64`, and the buffer length must equal the
size the header declares exactly.

## Errors

Errors wrap package sentinels with `%w`. Caller mistakes while staging or
building are returned as `*BuildError`, malformed serialized input as
`*FormatError`:

	var fe *cptrie.FormatError
	if errors.As(err, &fe) { ... }
	if errors.Is(err, cptrie.ErrIndexOffset) { ... }

Out of domain lookups are not errors. `Get` returns the trie's error value.
*/
