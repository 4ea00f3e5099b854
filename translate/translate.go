// Package translate formats diagnostics for the user's locale.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type localized struct {
	tag     language.Tag
	printer *message.Printer
}

var current atomic.Pointer[localized]

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("lc3asm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	Use(locales...)
}

// Use selects the best match of the given BCP 47 tags, replacing the
// detected system locale.
func Use(tags ...string) {
	if len(tags) == 0 {
		return
	}
	tag := message.MatchLanguage(tags...)
	current.Store(&localized{tag: tag, printer: message.NewPrinter(tag)})
}

// Language returns the language diagnostics are formatted for.
func Language() language.Tag {
	return current.Load().tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current.Load().printer.Sprintf(key, args...)
}
