// Package badger implements the knowledge document repository on BadgerDB.
//
// Documents live under the "agdoc" key prefix as JSON values. Vectors are
// normalized to unit length at write time, which lets FindSimilar compute
// cosine similarity as a plain dot product during its full-index scan.
package badger
