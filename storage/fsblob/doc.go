// Package fsblob stores audio artifacts as files in a local directory.
package fsblob
