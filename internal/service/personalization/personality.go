package personalization

import "github.com/heartmarshall/mazag-backend/internal/domain"

// ChatbotPersonality returns the tone directive for the chat collaborator.
// An unset or unknown style falls back to the empathetic directive.
func ChatbotPersonality(style domain.CommunicationStyle) string {
	switch style {
	case domain.CommunicationStyleDirect:
		return "Be concise and solution-focused. Provide clear action steps."
	case domain.CommunicationStyleAnalytical:
		return "Be structured and logical. Explain the reasoning behind suggestions."
	case domain.CommunicationStyleCasual:
		return "Be friendly and conversational. Use a relaxed, approachable tone."
	case domain.CommunicationStyleEmpathetic:
		return empatheticDirective
	}
	return empatheticDirective
}

const empatheticDirective = "Be warm and understanding. Use supportive language and validate feelings."
