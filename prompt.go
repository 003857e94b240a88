package gembridge

import "strings"

// flattenPrompt renders an ordered message sequence as a single prompt
// string, the backend's only view of history. Gemini has no native system
// role here, so system messages keep their distinguished semantic via an
// explicit "System: " prefix; user, assistant, and function-result turns
// are rendered with their content unchanged, in order.
//
// The function is stateless and idempotent: the same sequence always
// produces byte-identical output.
func flattenPrompt(messages []Message) string {
	var sb strings.Builder
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			sb.WriteString("System: ")
		}
		sb.WriteString(msg.Content)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
