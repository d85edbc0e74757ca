package sendgrid_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/ensaladazo/ensaladazo-backend/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mailPayload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

const apiKey = "SG.test-key"

func TestEmailService_Send(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.EmailRequest
		status        int
		expectedError string
		check         func(t *testing.T, p mailPayload)
	}{
		{
			name: "Plain and HTML content",
			req: &models.EmailRequest{
				To:          "ana@example.com",
				Subject:     "Recibimos tu mensaje",
				Content:     "Gracias por escribirnos",
				HTMLContent: "<p>Gracias por escribirnos</p>",
			},
			status: http.StatusAccepted,
			check: func(t *testing.T, p mailPayload) {
				require.Len(t, p.Personalizations, 1)
				assert.Equal(t, "ana@example.com", p.Personalizations[0].To[0]["email"])
				assert.Equal(t, "Recibimos tu mensaje", p.Personalizations[0].Subject)
				assert.Equal(t, "hola@ensaladazo.com", p.From["email"])
				assert.Equal(t, "Ensaladazo!", p.From["name"])
				require.Len(t, p.Content, 2)
				assert.Equal(t, "text/plain", p.Content[0].Type)
				assert.Equal(t, "text/html", p.Content[1].Type)
			},
		},
		{
			name: "Plain content only",
			req: &models.EmailRequest{
				To:      "ana@example.com",
				Subject: "Hola",
				Content: "Texto",
			},
			status: http.StatusAccepted,
			check: func(t *testing.T, p mailPayload) {
				require.Len(t, p.Content, 1)
				assert.Equal(t, "Texto", p.Content[0].Value)
			},
		},
		{
			name:          "Rejected by API",
			req:           &models.EmailRequest{To: "bad", Subject: "x", Content: "x"},
			status:        http.StatusBadRequest,
			expectedError: "failed to send email, status code: 400",
		},
		{
			name:          "Server error",
			req:           &models.EmailRequest{To: "ana@example.com", Subject: "x", Content: "x"},
			status:        http.StatusInternalServerError,
			expectedError: "status code: 500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var payload mailPayload

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer "+apiKey, r.Header.Get("Authorization"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			svc := sendgrid.NewEmailService(apiKey, "hola@ensaladazo.com", "Ensaladazo!", sendgrid.WithBaseURL(server.URL))

			err := svc.Send(t.Context(), tc.req)

			if tc.expectedError == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			}

			if tc.check != nil {
				tc.check(t, payload)
			}
		})
	}

	t.Run("Unreachable host", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		svc := sendgrid.NewEmailService(apiKey, "hola@ensaladazo.com", "Ensaladazo!", sendgrid.WithBaseURL(url))

		err := svc.Send(t.Context(), &models.EmailRequest{To: "ana@example.com", Subject: "x", Content: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send email")
	})
}
