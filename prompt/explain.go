package prompt

// Explain wraps a sanitized diff in the instruction template sent to the
// model. The diff is embedded verbatim inside a fenced block; no escaping of
// fence collisions is attempted.
func Explain(diffContent string) string {
	return `Explain this git diff in plain English. Focus on:
- What changed (added/removed/modified)
- Why these changes might have been made
- Any potential issues or important notes

Keep it concise and clear. Use bullet points.

Here's the diff:

` + "```\n" + diffContent + "\n```"
}
