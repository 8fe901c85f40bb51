package webhook

import "github.com/rosN100/lohono-fizzy-search/internal/search"

// Parameters carries the tool-call arguments extracted by the voice
// agent from the caller's speech.
type Parameters struct {
	PropertyName string `json:"property_name"`
	CheckDate    string `json:"check_date"`
}

// Request is the Vapi tool-call webhook body.
type Request struct {
	ToolCallID string     `json:"toolCallId"`
	Parameters Parameters `json:"parameters"`
}

// ToolResult echoes the tool call ID alongside its search result.
type ToolResult struct {
	ToolCallID string         `json:"toolCallId"`
	Result     *search.Result `json:"result"`
}

// Response is the envelope Vapi expects back.
type Response struct {
	Results []ToolResult `json:"results"`
}

func envelope(toolCallID string, result *search.Result) Response {
	return Response{
		Results: []ToolResult{{ToolCallID: toolCallID, Result: result}},
	}
}
