package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, WithToken("test-token")), server
}

func writeError(w http.ResponseWriter, status int, code, message string, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
			"fields":  fields,
		},
	})
}

func TestClient_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/signin", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "nimal@example.org", body["email"])

			json.NewEncoder(w).Encode(AuthResponse{
				Token:   "session-token",
				Account: Account{ID: 7, Email: "nimal@example.org"},
			})
		})

		resp, err := c.SignIn(ctx, "nimal@example.org", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "session-token", resp.Token)
		assert.Equal(t, uint(7), resp.Account.ID)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password.", nil)
		})

		_, err := c.SignIn(ctx, "nimal@example.org", "wrong")
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindUnauthorized, apiErr.Kind)
		assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	})
}

func TestClient_ErrorKinds(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		status int
		want   Kind
	}{
		{"validation", http.StatusBadRequest, KindValidation},
		{"unauthorized", http.StatusUnauthorized, KindUnauthorized},
		{"forbidden", http.StatusForbidden, KindForbidden},
		{"not found", http.StatusNotFound, KindNotFound},
		{"conflict", http.StatusConflict, KindConflict},
		{"internal", http.StatusInternalServerError, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeError(w, tt.status, "SOME_CODE", "failed", nil)
			})

			_, err := c.Me(ctx)
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Kind)
		})
	}
}

func TestClient_ValidationFields(t *testing.T) {
	ctx := context.Background()

	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadRequest, "VALIDATION", "Validation failed.", map[string]string{
			"email": "Please enter a valid email address.",
		})
	})

	_, err := c.SignUp(ctx, SignUpInput{Email: "not-an-email"})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, "Please enter a valid email address.", apiErr.Fields["email"])
}

func TestClient_Requests(t *testing.T) {
	ctx := context.Background()

	t.Run("filter becomes query parameters", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/requests", r.URL.Path)
			assert.Equal(t, "Ration", r.URL.Query().Get("requestType"))
			assert.Equal(t, "true", r.URL.Query().Get("includeCompleted"))
			assert.Equal(t, "rice", r.URL.Query().Get("q"))
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			json.NewEncoder(w).Encode(map[string]interface{}{
				"requests": []Request{{ID: 1, ItemName: "Rice"}},
			})
		})

		requests, err := c.Requests(ctx, RequestFilter{
			Type:             "Ration",
			IncludeCompleted: true,
			Query:            "rice",
		})
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, "Rice", requests[0].ItemName)
	})

	t.Run("delete has no body", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/requests/4", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, c.DeleteRequest(ctx, 4))
	})
}

func TestClient_Transport(t *testing.T) {
	ctx := context.Background()

	t.Run("connection failure", func(t *testing.T) {
		c, server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
		server.Close()

		_, err := c.Me(ctx)
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindTransport, apiErr.Kind)
	})

	t.Run("malformed success body", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})

		_, err := c.Me(ctx)
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindTransport, apiErr.Kind)
	})

	t.Run("non-json error body keeps the status kind", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gateway timeout", http.StatusBadGateway)
		})

		_, err := c.Me(ctx)
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindInternal, apiErr.Kind)
	})
}
