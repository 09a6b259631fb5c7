package cptrie

import (
	"iter"
	"unicode/utf8"
)

// Values returns each code point of s with its value. Bytes that are not
// part of a well-formed UTF-8 sequence yield utf8.RuneError paired with
// ErrorValue, one per ill-formed byte.
func (t *Trie[V]) Values(s string) iter.Seq2[rune, V] {
	return func(yield func(rune, V) bool) {
		for len(s) > 0 {
			r, size := utf8.DecodeRuneInString(s)
			s = s[size:]
			if !yield(t.decoded(r, size)) {
				return
			}
		}
	}
}

// ValuesBytes is like Values for a UTF-8 byte slice.
func (t *Trie[V]) ValuesBytes(b []byte) iter.Seq2[rune, V] {
	return func(yield func(rune, V) bool) {
		for len(b) > 0 {
			r, size := utf8.DecodeRune(b)
			b = b[size:]
			if !yield(t.decoded(r, size)) {
				return
			}
		}
	}
}

// Latin1Values returns each byte of b, read as a Latin-1 code point, with
// its value.
func (t *Trie[V]) Latin1Values(b []byte) iter.Seq2[rune, V] {
	return func(yield func(rune, V) bool) {
		for _, c := range b {
			if !yield(rune(c), t.Get(rune(c))) {
				return
			}
		}
	}
}

// RuneValue is a code point paired with its value.
type RuneValue[V Value] struct {
	Rune  rune
	Value V
}

// IndexedValues is like Values but keys each code point by the byte offset
// where it starts in s. An ill-formed byte advances the offset by one.
func (t *Trie[V]) IndexedValues(s string) iter.Seq2[int, RuneValue[V]] {
	return func(yield func(int, RuneValue[V]) bool) {
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			r, v := t.decoded(r, size)
			if !yield(i, RuneValue[V]{Rune: r, Value: v}) {
				return
			}
			i += size
		}
	}
}

// IndexedValuesBytes is like IndexedValues for a UTF-8 byte slice.
func (t *Trie[V]) IndexedValuesBytes(b []byte) iter.Seq2[int, RuneValue[V]] {
	return func(yield func(int, RuneValue[V]) bool) {
		for i := 0; i < len(b); {
			r, size := utf8.DecodeRune(b[i:])
			r, v := t.decoded(r, size)
			if !yield(i, RuneValue[V]{Rune: r, Value: v}) {
				return
			}
			i += size
		}
	}
}

// IndexedLatin1Values is like Latin1Values keyed by byte offset, which for
// Latin-1 is also the code point's position.
func (t *Trie[V]) IndexedLatin1Values(b []byte) iter.Seq2[int, RuneValue[V]] {
	return func(yield func(int, RuneValue[V]) bool) {
		for i, c := range b {
			if !yield(i, RuneValue[V]{Rune: rune(c), Value: t.Get(rune(c))}) {
				return
			}
		}
	}
}

func (t *Trie[V]) decoded(r rune, size int) (rune, V) {
	if r == utf8.RuneError && size <= 1 {
		return r, V(t.errorValue)
	}
	return r, t.Get(r)
}
