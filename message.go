// Package gembridge bridges tool-augmented chat completions between a host
// agent framework and the Gemini generateContent backend. It translates the
// host's messages and tool schemas into Gemini's native shapes, runs the
// function-calling loop (execute tool, feed result back, repeat), and wraps
// the final answer in the host's completion shape.
package gembridge

// Role identifies who produced a conversation message.
type Role string

const (
	RoleSystem         Role = "system"
	RoleUser           Role = "user"
	RoleAssistant      Role = "assistant"
	RoleFunctionResult Role = "function_result"
)

// SourceFunction marks messages synthesized from tool output.
const SourceFunction = "function"

// Message is one turn of the host conversation. Messages are immutable once
// appended; the bridge never mutates the slice a caller passes in.
type Message struct {
	Role    Role
	Content string
	Source  string
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant-role message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// functionResultMessage wraps stringified tool output as a conversation
// turn. The source is always "function" so hosts can tell synthetic turns
// from real user input.
func functionResultMessage(content string) Message {
	return Message{Role: RoleFunctionResult, Content: content, Source: SourceFunction}
}
