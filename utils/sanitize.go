package utils

import "github.com/microcosm-cc/bluemonday"

// Post and comment bodies come from free-text fields, so they are scrubbed
// to the user-generated-content policy before they ever reach the database.
var ugcPolicy = bluemonday.UGCPolicy()

// Sanitize strips markup that is unsafe to re-render from submitted HTML,
// keeping the usual formatting tags.
func Sanitize(input string) string {
	return ugcPolicy.Sanitize(input)
}
