// Package language detects query languages and translates between them and
// the English working language of the pipeline.
package language
