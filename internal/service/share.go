package service

import (
	"fmt"
	"net/url"
	"strings"
)

// ShareLinks are the outbound share URLs for a bookmark collection.
type ShareLinks struct {
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	LinkedIn string `json:"linkedin"`
}

// ShareMessage is the text posted with a share of count bookmarks.
func ShareMessage(count int) string {
	return fmt.Sprintf("Check out my career bookmarks from Career Passport! I've saved %d resources for my professional development.", count)
}

// NewShareLinks builds share URLs pointing at origin. Nothing is validated.
func NewShareLinks(count int, origin string) ShareLinks {
	text := ShareMessage(count)
	return ShareLinks{
		Twitter:  "https://twitter.com/intent/tweet?" + encode("text", text, "url", origin),
		Facebook: "https://www.facebook.com/sharer/sharer.php?" + encode("u", origin, "quote", text),
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?" + encode("url", origin, "summary", text),
	}
}

// encode keeps the parameter order given, unlike url.Values.Encode.
func encode(kv ...string) string {
	pairs := make([]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, escapeComponent(kv[i])+"="+escapeComponent(kv[i+1]))
	}
	return strings.Join(pairs, "&")
}

// componentUnescapes undoes the escapes QueryEscape applies to characters
// that are legal in a URI component.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent escapes s for use as a single query component. Spaces
// become %20 rather than "+".
func escapeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}

// Platform returns the link for "twitter", "facebook" or "linkedin".
func (l ShareLinks) Platform(name string) (string, bool) {
	switch name {
	case "twitter":
		return l.Twitter, true
	case "facebook":
		return l.Facebook, true
	case "linkedin":
		return l.LinkedIn, true
	default:
		return "", false
	}
}
