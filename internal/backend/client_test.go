package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sabha/internal/roster"
)

func TestUnconfiguredClientFailsFast(t *testing.T) {
	c := New("")
	_, err := c.ListPersonalDetails(context.Background(), "token", nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestListPersonalDetailsSendsBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode([]roster.Entry{{ID: "u1"}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	entries, err := c.ListPersonalDetails(context.Background(), "tok-123", nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/api/admin/personal-details", gotPath)
}

func TestListPersonalDetailsNormalizesResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id":"u1"},{"id":"u2"}]`, 2},
		{"data envelope", `{"data":[{"id":"u1"}]}`, 1},
		{"empty array", `[]`, 0},
		{"unexpected object", `{"users":[{"id":"u1"}]}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			entries, err := New(srv.URL).ListPersonalDetails(context.Background(), "t", nil)
			require.NoError(t, err)
			assert.Len(t, entries, tt.want)
		})
	}
}

func TestErrorStatusBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"admin role required"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListPersonalDetails(context.Background(), "t", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "admin role required", apiErr.Message)
	assert.Equal(t, "API Error [403]: admin role required", apiErr.Error())
}

func TestErrorStatusWithoutMessageFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteUser(context.Background(), "t", "u1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not Found", apiErr.Message)
}

func TestMalformedSuccessBodyIsInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>proxy error</html>`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).MyPersonalDetails(context.Background(), "t")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid JSON response", apiErr.Message)
}

func TestDeleteUserEscapesID(t *testing.T) {
	var gotQuery url.Values
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).DeleteUser(context.Background(), "t", "id with spaces&x=1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "id with spaces&x=1", gotQuery.Get("id"))
}

func TestEditUserPostsFullEntry(t *testing.T) {
	var got roster.Entry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	entry := roster.Entry{ID: "u1", Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, New(srv.URL).EditUser(context.Background(), "t", entry))
	assert.Equal(t, entry, got)
}

func TestCheckRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/check-role", r.URL.Path)
		_, _ = w.Write([]byte(`{"role":"admin"}`))
	}))
	defer srv.Close()

	role, err := New(srv.URL).CheckRole(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, "admin", role)
}

func TestExportUsersCSVReturnsRawBlob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("\"Email\"\n\"a@b.c\""))
	}))
	defer srv.Close()

	blob, err := New(srv.URL).ExportUsersCSV(context.Background(), "t", nil)
	require.NoError(t, err)
	assert.Equal(t, "\"Email\"\n\"a@b.c\"", string(blob))
}

func TestAnnouncementsRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":"a1","title":"Diwali","content":"hall booked"}]`))
		case r.Method == http.MethodPost:
			_, _ = w.Write([]byte(`{"data":{"id":"a2","title":"AGM","content":"sunday"}}`))
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	items, err := c.ListAnnouncements(ctx, "t")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Diwali", items[0].Title)

	created, err := c.CreateAnnouncement(ctx, "t", "AGM", "sunday")
	require.NoError(t, err)
	assert.Equal(t, "a2", created.ID)

	require.NoError(t, c.UpdateAnnouncement(ctx, "t", "a1", "AGM", "moved"))
	require.NoError(t, c.DeleteAnnouncement(ctx, "t", "a1"))
}
