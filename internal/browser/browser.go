// Package browser defines the boundary between this tool and the headless
// browser that renders colonist.io's chat log. Fetching the rendered page is
// an external collaborator's job (a Chrome DevTools Protocol client); this
// package only names the seam and does the HTML-to-text step that feeds it.
package browser

import "regexp"

// LogSource is satisfied by whatever polls the live game page over CDP and
// returns its current chat-log HTML. No implementation lives in this
// module; see DESIGN.md for why.
type LogSource interface {
	Poll() (html string, err error)
}

var reImgAlt = regexp.MustCompile(`<img[^>]*\balt="([^"]*)"[^>]*>`)

// ExtractText replaces every <img alt="..."> tag in html with its alt text
// followed by a space, matching how the game client renders resource icons
// inline in chat messages.
func ExtractText(html string) string {
	return reImgAlt.ReplaceAllString(html, "$1 ")
}
