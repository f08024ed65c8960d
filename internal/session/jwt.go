package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// WellFormedToken reports whether tok has the structure of a signed
// JWT: three dot-separated base64url segments whose header and claims
// decode as JSON objects. No signature verification happens here; the
// API is the authority on whether the token is actually valid.
func WellFormedToken(tok string) bool {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
	}
	return jsonObjectSegment(parts[0]) && jsonObjectSegment(parts[1])
}

func jsonObjectSegment(seg string) bool {
	raw, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		return false
	}
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	var obj map[string]json.RawMessage
	return json.Unmarshal(raw, &obj) == nil
}
