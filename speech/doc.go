// Package speech converts answers to stored audio artifacts, best effort.
package speech
