package main

import (
	"encoding/json"
	"fmt"

	"github.com/nitinmeharia/rule-engine/internal/auth"
)

// targetURL is the example endpoint printed in curl invocations.
const targetURL = "http://localhost:8080/v1/namespaces"

// envVarName is the variable used by the export output form.
const envVarName = "RULE_ENGINE_TOKEN"

// curlCommand returns a ready-to-run invocation against the rule-engine API.
func curlCommand(token string) string {
	return fmt.Sprintf("curl -H \"Authorization: Bearer %s\" %s", token, targetURL)
}

// formatGenerated renders a freshly generated token. claims may be nil for
// formats that do not display them.
func formatGenerated(token string, claims *auth.Claims, format string, export, quiet bool) (string, error) {
	if quiet {
		return token, nil
	}
	if export {
		return fmt.Sprintf("export %s=\"%s\"", envVarName, token), nil
	}

	switch format {
	case "json":
		out, err := json.MarshalIndent(struct {
			Token  string       `json:"token"`
			Claims *auth.Claims `json:"claims"`
			Usage  string       `json:"usage"`
		}{
			Token:  token,
			Claims: claims,
			Usage:  curlCommand(token),
		}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to render output: %w", err)
		}
		return string(out), nil
	case "curl":
		return curlCommand(token), nil
	default:
		return token, nil
	}
}

// formatDecoded renders the claims of a verified token.
func formatDecoded(claims *auth.Claims, format string) (string, error) {
	if format == "json" {
		out, err := json.MarshalIndent(claims, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to render claims: %w", err)
		}
		return string(out), nil
	}

	compact, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to render claims: %w", err)
	}
	return fmt.Sprintf("Token is valid. Claims: %s", compact), nil
}
