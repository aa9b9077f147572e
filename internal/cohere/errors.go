package cohere

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// apiErrorEnvelope is the error body the API returns on non-2xx
// responses, e.g. {"message": "invalid api token"}.
type apiErrorEnvelope struct {
	Message string `json:"message"`
}

func decodeAPIError(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var envelope apiErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	return strings.TrimSpace(envelope.Message)
}

func buildAPIError(statusCode int, body []byte) error {
	if message := decodeAPIError(body); message != "" {
		return fmt.Errorf("cohere api error (%d): %s", statusCode, message)
	}

	snippet := strings.TrimSpace(string(body))
	if snippet == "" {
		snippet = http.StatusText(statusCode)
	}
	if len(snippet) > 256 {
		snippet = snippet[:256]
	}

	return fmt.Errorf("cohere api error (%d): %s", statusCode, snippet)
}
