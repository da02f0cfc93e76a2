package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"http": map[string]any{
			"maxRequestBodySize": "10M",
			"cors": map[string]any{
				"allowOrigins": []any{},
			},
		},
		"store": map[string]any{
			"idStrategy": "length",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"usersEndpoint": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "HTTP_CORS_ALLOWORIGINS", want: "http.cors.allowOrigins"},
		{envKey: "STORE_IDSTRATEGY", want: "store.idStrategy"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_USERSENDPOINT", want: "auth.usersEndpoint"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
