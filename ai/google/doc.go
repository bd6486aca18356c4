// Package google implements translation, language detection, and speech
// synthesis over the public Google Translate web endpoints.
//
// One Client serves all three capabilities: translate_a/single for
// translation and detection, translate_tts for MP3 speech synthesis.
package google
