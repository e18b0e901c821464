package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arctraders-backend/lib/catalog"
	"arctraders-backend/lib/testutil"
	"arctraders-backend/services/trades"
	tradesdb "arctraders-backend/services/trades/db"

	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) (*http.ServeMux, func()) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "trades/server",
		DbSchema: tradesdb.Schema,
	})

	store := catalog.New([]catalog.Entry{
		{Name: "Anvil", Aliases: []string{"Anvil Blueprint"}},
	})
	svc := trades.NewService(res.DB, store, trades.Options{})

	mux := http.NewServeMux()
	New(svc).Register(mux)
	return mux, cleanup
}

func postCommand(t *testing.T, mux *http.ServeMux, name string, inv trades.Invocation) *httptest.ResponseRecorder {
	body, err := json.Marshal(inv)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/commands/"+name, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCommandRoundtrip(t *testing.T) {
	mux, cleanup := setupServer(t)
	defer cleanup()

	rec := postCommand(t, mux, "offer", trades.Invocation{
		UserID:   "100",
		UserName: "Doug",
		Args:     "Anvil Blueprint",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var reply trades.Reply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	require.Len(t, reply.Offers, 1)
	require.Equal(t, "Anvil", reply.Offers[0].Item)

	rec = postCommand(t, mux, "accept", trades.Invocation{
		UserID:   "200",
		UserName: "Ava",
		Args:     "anvil from Doug",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postCommand(t, mux, "complete", trades.Invocation{
		UserID: "200",
		Args:   "anvil",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/trades/recent?count=1", nil)
	getRec := httptest.NewRecorder()
	mux.ServeHTTP(getRec, req)
	require.Equal(t, http.StatusOK, getRec.Code)

	var offers []trades.Offer
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &offers))
	require.Len(t, offers, 1)
	require.Equal(t, trades.StatusCompleted, offers[0].Status)
}

func TestCommandErrors(t *testing.T) {
	mux, cleanup := setupServer(t)
	defer cleanup()

	// nothing to accept yet
	rec := postCommand(t, mux, "accept", trades.Invocation{UserID: "200", Args: "anvil"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	// self trade
	rec = postCommand(t, mux, "offer", trades.Invocation{UserID: "100", UserName: "Doug", Args: "Anvil"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = postCommand(t, mux, "accept", trades.Invocation{UserID: "100", Args: "anvil"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// ambiguity carries candidates
	rec = postCommand(t, mux, "offer", trades.Invocation{UserID: "300", UserName: "Kit", Args: "Anvil"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = postCommand(t, mux, "accept", trades.Invocation{UserID: "200", Args: "anvil"})
	require.Equal(t, http.StatusConflict, rec.Code)

	var body failure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ambiguous_match", body.Kind)
	require.Len(t, body.Candidates, 2)

	// unknown command
	rec = postCommand(t, mux, "yeet", trades.Invocation{UserID: "100"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
