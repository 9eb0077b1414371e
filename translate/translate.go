// Package translate renders user-facing message strings in the host
// locale. Error text everywhere in this module is routed through From so
// that a translation catalog can be dropped in without touching call
// sites.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer = message.NewPrinter(message.MatchLanguage(userLanguages()...))

// userLanguages returns the host locale preference list, with en-US as
// the final fallback.
func userLanguages() []string {
	langs, err := locale.GetLocales()
	if err != nil {
		log.Printf("rings: locale: %v", err)
	}

	return append(langs, "en-US")
}

// From translates an en-US Sprintf format and its arguments.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
