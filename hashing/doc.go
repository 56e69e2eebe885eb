/*
Package hashing provides value equality and hash codes for arbitrary Go values.

Persistent hash maps and sets need two things from their keys: a way to decide whether
two keys are equal, and a hash code which is consistent with that equality. Go's
built-in maps get both from the compiler; for a generic trie we have to provide them
ourselves. A Hasher bundles the two operations.

The default hasher looks at the dynamic type of a value:

  ■ values with methods `Hash() uint64` and `Equal(K) bool` are asked directly,
    which makes collections of this module usable as keys,
  ■ strings, byte slices, numbers, booleans and runes are fed to xxhash,
  ■ everything else is hashed structurally, field by field and element by element.

Equality falls back to `==` for comparable types and to reflect.DeepEqual otherwise.
Hash codes follow suit: for comparable types pointers are hashed by address, for
other types by what they point to. Types with an `Equal` method but without a
`Hash` method (time.Time, for example) are compared with `==` as well.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashing
