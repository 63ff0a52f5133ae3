package ledger_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"card-exchange/config"
	"card-exchange/internal/adapter/ledger"
	"card-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Transfer(t *testing.T) {
	from, to := uuid.New(), uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/transfers", r.URL.Path)

		var body struct {
			From   uuid.UUID `json:"from"`
			To     uuid.UUID `json:"to"`
			Amount int64     `json:"amount"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, from, body.From)
		assert.Equal(t, to, body.To)
		assert.Equal(t, int64(100), body.Amount)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := ledger.NewClient(config.LedgerConfig{BaseURL: srv.URL, Timeout: time.Second}, nil, zerolog.Nop())

	err := client.Transfer(context.Background(), from, to, 100)
	assert.NoError(t, err)
}

func TestClient_Transfer_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "insufficient balance"}) //nolint:errcheck
	}))
	defer srv.Close()

	client := ledger.NewClient(config.LedgerConfig{BaseURL: srv.URL, Timeout: time.Second}, nil, zerolog.Nop())

	err := client.Transfer(context.Background(), uuid.New(), uuid.New(), 100)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_001", appErr.Code)
	assert.Contains(t, appErr.Err.Error(), "insufficient balance")
}

func TestClient_Transfer_Unreachable(t *testing.T) {
	client := ledger.NewClient(config.LedgerConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}, nil, zerolog.Nop())

	err := client.Transfer(context.Background(), uuid.New(), uuid.New(), 100)
	require.Error(t, err)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
}
