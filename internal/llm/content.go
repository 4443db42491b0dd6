package llm

import (
	"bytes"
	"encoding/json"
)

// builds flat-text content
func TextContent(text string) MessageContent {
	return MessageContent{kind: contentText, text: text}
}

// builds content-part list content
func PartsContent(parts ...ContentPart) MessageContent {
	return MessageContent{kind: contentParts, parts: parts}
}

// decodes either shape. unknown shapes decode to empty content rather than
// failing the whole response.
func (m *MessageContent) UnmarshalJSON(data []byte) error {
	*m = MessageContent{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err == nil {
			*m = TextContent(text)
		}
	case '[':
		var parts []ContentPart
		if err := json.Unmarshal(trimmed, &parts); err == nil {
			*m = PartsContent(parts...)
		}
	}

	return nil
}

func (m MessageContent) MarshalJSON() ([]byte, error) {
	switch m.kind {
	case contentText:
		return json.Marshal(m.text)
	case contentParts:
		return json.Marshal(m.parts)
	default:
		return []byte("null"), nil
	}
}

// resolves the text: flat text wins when present, then the first part, then ""
func (m MessageContent) Text() string {
	if m.kind == contentText && m.text != "" {
		return m.text
	}

	if m.kind == contentParts && len(m.parts) > 0 {
		return m.parts[0].Text
	}

	return ""
}
