package llm

import (
	"regexp"
	"strings"
)

// codeFencePattern matches triple-backtick fences, optionally tagged sql,
// that models wrap generated queries in despite instructions not to.
var codeFencePattern = regexp.MustCompile("```sql\\s*|\\s*```")

// markdownPatterns match inline-code and emphasis markers, keeping the
// enclosed text. Inline code runs first so emphasis stripping cannot
// assemble a new code span out of adjacent backticks; double emphasis
// markers must run before single ones.
var markdownPatterns = []*regexp.Regexp{
	regexp.MustCompile("`(.+?)`"),
	regexp.MustCompile(`\*\*(.+?)\*\*`),
	regexp.MustCompile(`__(.+?)__`),
	regexp.MustCompile(`\*(.+?)\*`),
	regexp.MustCompile(`_(.+?)_`),
}

// StripCodeFences removes surrounding code-fence markers from a model reply.
// Replies without fences pass through unchanged apart from trimming.
func StripCodeFences(s string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(s, ""))
}

// StripMarkdown removes bold, italic and inline-code markers while keeping
// the enclosed text. Applying it twice yields the same result as once.
func StripMarkdown(s string) string {
	for _, p := range markdownPatterns {
		s = p.ReplaceAllString(s, "$1")
	}
	return strings.TrimSpace(s)
}
