package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyPersona contextKey = "persona"

// Persona is resolved from: Persona header > __Persona query param > JSON variables.__Persona
const (
	HeaderPersona     = "Persona"
	QueryParamPersona = "__Persona"
	VarPersona        = "__Persona"
)

// PersonaFromContext returns the planning persona for the current request ("" = default).
func PersonaFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyPersona).(string); ok {
		return v
	}
	return ""
}

// WithPersona attaches persona to context.
func WithPersona(ctx context.Context, persona string) context.Context {
	return context.WithValue(ctx, CtxKeyPersona, persona)
}

// GetPersona reads the persona from the header, then the query string.
// Variables in a POST body are handled by ParsePersonaFromVariables.
func GetPersona(r *http.Request) string {
	if h := strings.TrimSpace(r.Header.Get(HeaderPersona)); h != "" {
		return h
	}
	return strings.TrimSpace(r.URL.Query().Get(QueryParamPersona))
}

// ParsePersonaFromVariables extracts variables.__Persona from a GraphQL JSON body.
func ParsePersonaFromVariables(body []byte) (string, bool) {
	var payload struct {
		Variables map[string]interface{} `json:"variables"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Variables == nil {
		return "", false
	}
	if v, ok := payload.Variables[VarPersona].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}
	return "", false
}
