package reviewlib

import (
	"github.com/chrisport/go-lang-detector/langdet/langdetdef"
)

// newDetector returns a function naming the closest language of a text,
// e.g. "english", among the detector's built-in language profiles
func newDetector() func(string) string {
	detector := langdetdef.NewWithDefaultLanguages()
	return detector.GetClosestLanguage
}
