package gemini

// GenerateContentRequest is the body of a models/{model}:generateContent call.
type GenerateContentRequest struct {
	Contents   []Content   `json:"contents"`
	Tools      []Tool      `json:"tools,omitempty"`
	ToolConfig *ToolConfig `json:"toolConfig,omitempty"`
}

// Content is one conversation turn in the Gemini wire format.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a single content fragment: plain text or a function call.
// Exactly one field is set in practice; the bridge classifies parts
// structurally instead of probing field presence ad hoc.
type Part struct {
	Text         string        `json:"text,omitempty"`
	FunctionCall *FunctionCall `json:"functionCall,omitempty"`
}

// FunctionCall is the model's request to invoke a declared function.
type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// Tool groups function declarations for the request payload.
type Tool struct {
	FunctionDeclarations []FunctionDeclaration `json:"functionDeclarations"`
}

// FunctionDeclaration describes one callable function to the model.
type FunctionDeclaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Parameters  *Schema `json:"parameters,omitempty"`
}

// Schema is the Gemini-native parameter schema, a restricted JSON Schema.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Format      string             `json:"format,omitempty"`
	Description string             `json:"description,omitempty"`
	Nullable    bool               `json:"nullable,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// ToolConfig carries the function-calling mode for a request.
type ToolConfig struct {
	FunctionCallingConfig FunctionCallingConfig `json:"functionCallingConfig"`
}

// FunctionCallingConfig selects how the model may use declared functions.
// Mode "AUTO" lets the model decide whether to call one.
type FunctionCallingConfig struct {
	Mode string `json:"mode"`
}

// GenerateContentResponse is the backend's reply.
type GenerateContentResponse struct {
	Candidates    []Candidate    `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
}

// Candidate is one generated completion.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// UsageMetadata reports token counts. The bridge treats these as
// pass-through figures and makes no accounting guarantees.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}
