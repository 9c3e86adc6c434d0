// Package highlight turns fenced-code content into a minimal set of
// classed spans. Highlighting is best-effort: any label or collaborator
// output it cannot vouch for degrades to plain text.
package highlight

import (
	"regexp"
	"strings"
	"sync"
)

// labelPattern bounds what a fence label may look like before any
// table lookup happens. Oversized or exotic labels never reach the
// alias map or the highlighter.
var labelPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9+#.-]{0,19}$`)

// aliases maps common shorthand labels to registered grammar names.
var aliases = map[string]string{
	"js":     "javascript",
	"ts":     "typescript",
	"py":     "python",
	"rb":     "ruby",
	"sh":     "shell",
	"bash":   "shell",
	"zsh":    "shell",
	"yml":    "yaml",
	"golang": "go",
	"rs":     "rust",
	"kt":     "kotlin",
	"cs":     "csharp",
	"c++":    "cpp",
	"md":     "markdown",
	"docker": "dockerfile",
	"html":   "xml",
}

// registeredNames is the fixed allowlist of grammars the highlighter
// is allowed to see.
var registeredNames = []string{
	"c", "cpp", "csharp", "css", "diff", "dockerfile", "go", "java",
	"javascript", "json", "kotlin", "lua", "markdown", "php", "python",
	"ruby", "rust", "shell", "sql", "swift", "toml", "typescript",
	"xml", "yaml",
}

var registered = sync.OnceValue(func() map[string]bool {
	set := make(map[string]bool, len(registeredNames))
	for _, name := range registeredNames {
		set[name] = true
	}
	return set
})

// ResolveLanguage normalizes a free-form fence label to a registered
// grammar name, or "" if the label is absent, malformed or unknown.
func ResolveLanguage(raw string) string {
	if raw == "" {
		return ""
	}

	label := strings.ToLower(strings.TrimSpace(raw))
	if !labelPattern.MatchString(label) {
		return ""
	}

	if canonical, ok := aliases[label]; ok {
		label = canonical
	}
	if !registered()[label] {
		return ""
	}
	return label
}

// Registered returns the grammar allowlist in sorted order, for
// listing surfaces.
func Registered() []string {
	out := make([]string, len(registeredNames))
	copy(out, registeredNames)
	return out
}

// Aliases returns a copy of the shorthand table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
