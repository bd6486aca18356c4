package language

// English is the working language of retrieval and generation.
const English = "en"

// supportedLanguages maps language names to ISO 639-1 codes the translation
// service accepts.
var supportedLanguages = map[string]string{
	"hindi":     "hi",
	"marathi":   "mr",
	"gujarati":  "gu",
	"punjabi":   "pa",
	"tamil":     "ta",
	"telugu":    "te",
	"kannada":   "kn",
	"bengali":   "bn",
	"english":   "en",
	"urdu":      "ur",
	"odia":      "or",
	"assamese":  "as",
	"malayalam": "ml",
	"nepali":    "ne",
	"sindhi":    "sd",
}

// languageNames is the reverse mapping, built at init.
var languageNames = func() map[string]string {
	m := make(map[string]string, len(supportedLanguages))
	for name, code := range supportedLanguages {
		m[code] = name
	}
	return m
}()

// Code returns the ISO code for a language name, or "" if unsupported.
func Code(name string) string {
	return supportedLanguages[name]
}

// Name returns the language name for an ISO code, or "unknown".
func Name(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "unknown"
}

// IsSupported reports whether the ISO code is a supported language.
func IsSupported(code string) bool {
	_, ok := languageNames[code]
	return ok
}
