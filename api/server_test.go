package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallychain/blockchain"
	"tallychain/blockchain/store"
)

type fixedClock struct {
	at time.Time
}

func (f fixedClock) Now() time.Time { return f.at }

func newTestServer() (*Server, *store.MemoryChainStore) {
	chainStore := store.NewMemoryChainStore()
	clk := fixedClock{at: time.UnixMilli(1700000000000)}
	return NewServer(chainStore, clk, zerolog.Nop(), "0"), chainStore
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	decoded := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestAppendRecord(t *testing.T) {
	s, chainStore := newTestServer()

	w, resp := doJSON(t, s, http.MethodPost, "/api/records",
		`{"sender":"alice","receiver":"bob","amount":"01.50"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), resp["index"])
	assert.Equal(t, "1700000000000", resp["timestamp"])

	payload := resp["payload"].(map[string]any)
	assert.Equal(t, "1.5", payload["amount"], "amount is canonicalized before storage")

	assert.Equal(t, 2, chainStore.Height())
	assert.True(t, chainStore.Validate())
}

func TestAppendRecordRejectsInvalidPayload(t *testing.T) {
	s, chainStore := newTestServer()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"sender":`},
		{name: "empty sender", body: `{"sender":"","receiver":"bob","amount":"1"}`},
		{name: "bad amount", body: `{"sender":"alice","receiver":"bob","amount":"lots"}`},
		{name: "negative amount", body: `{"sender":"alice","receiver":"bob","amount":"-2"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doJSON(t, s, http.MethodPost, "/api/records", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, resp, "error")
		})
	}

	assert.Equal(t, 1, chainStore.Height(), "rejected records must not reach the chain")
}

func TestGetChainEndpoints(t *testing.T) {
	s, _ := newTestServer()
	_, _ = doJSON(t, s, http.MethodPost, "/api/records",
		`{"sender":"alice","receiver":"bob","amount":"2.5"}`)

	t.Run("chain", func(t *testing.T) {
		w, resp := doJSON(t, s, http.MethodGet, "/api/chain", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, resp["chain"], 2)
	})

	t.Run("head", func(t *testing.T) {
		w, resp := doJSON(t, s, http.MethodGet, "/api/chain/head", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), resp["index"])
	})

	t.Run("height", func(t *testing.T) {
		w, resp := doJSON(t, s, http.MethodGet, "/api/chain/height", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(2), resp["height"])
	})

	t.Run("validate", func(t *testing.T) {
		w, resp := doJSON(t, s, http.MethodGet, "/api/chain/validate", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, resp["valid"])
	})
}

func TestGetBlockByIndex(t *testing.T) {
	s, _ := newTestServer()

	t.Run("genesis", func(t *testing.T) {
		w, resp := doJSON(t, s, http.MethodGet, "/api/blocks/0", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, blockchain.GenesisPreviousHash, resp["previous_hash"])
	})

	t.Run("out of range", func(t *testing.T) {
		w, _ := doJSON(t, s, http.MethodGet, "/api/blocks/5", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("not an integer", func(t *testing.T) {
		w, _ := doJSON(t, s, http.MethodGet, "/api/blocks/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBlockEncoding(t *testing.T) {
	s, chainStore := newTestServer()
	_, _ = doJSON(t, s, http.MethodPost, "/api/records",
		`{"sender":"alice","receiver":"bob","amount":"2.5"}`)

	w, resp := doJSON(t, s, http.MethodGet, "/api/blocks/1/encoding", "")
	require.Equal(t, http.StatusOK, w.Code)

	block, err := chainStore.BlockByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, blockchain.SerializePayload(block.Payload), resp["encoding"])
	assert.Equal(t, `{"sender":"alice","receiver":"bob","amount":"2.5"}`, resp["encoding"])
}

func TestRequestIDHeader(t *testing.T) {
	s, _ := newTestServer()

	w, _ := doJSON(t, s, http.MethodGet, "/api/chain/height", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/chain/height", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-ID"))
}
