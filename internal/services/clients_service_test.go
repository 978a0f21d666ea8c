// internal/services/clients_service_test.go
package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubingroup/rubin-backend/internal/config"
)

func feedService(url string) *ClientsService {
	return NewClientsService(config.ClientsConfig{FeedURL: url, TimeoutSeconds: 2})
}

func TestFetchClientsParsesBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"Al Noor Pharmacy","country":"Syria","city":"Damascus","sector":"pharmacy","phone":"+963111234567"}]`))
	}))
	defer srv.Close()

	clients, err := feedService(srv.URL).FetchClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Al Noor Pharmacy", clients[0].Name)
	assert.Equal(t, "Damascus", clients[0].City)
}

func TestFetchClientsParsesWrappedArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"clients":[{"name":"Beirut Beauty Co"},{"name":"Amman Cosmetics"}]}`))
	}))
	defer srv.Close()

	clients, err := feedService(srv.URL).FetchClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Amman Cosmetics", clients[1].Name)
}

func TestFetchClientsParsesDataWrapper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"name":"Gulf Distribution"}]}`))
	}))
	defer srv.Close()

	clients, err := feedService(srv.URL).FetchClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestFetchClientsUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := feedService(srv.URL).FetchClients(context.Background())
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}

func TestFetchClientsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := feedService(srv.URL).FetchClients(context.Background())
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}

func TestFetchClientsObjectWithoutClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	_, err := feedService(srv.URL).FetchClients(context.Background())
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}

func TestFetchClientsUnconfiguredFeed(t *testing.T) {
	_, err := feedService("").FetchClients(context.Background())
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}
