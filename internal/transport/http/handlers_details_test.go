package httptransport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sabha/internal/roster"
)

func TestMyDetailsFormatsDOBForDisplay(t *testing.T) {
	f := newFixture(t)
	token := f.loginAs(t, "new_user")
	f.backend.EXPECT().
		MyPersonalDetails(gomock.Any(), upstreamToken).
		Return(roster.Entry{ID: "u1", Email: "a@b.c", DateOfBirth: "1990-03-07"}, nil)

	rec := f.do(t, http.MethodGet, "/api/me/details", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "07/03/1990", decodeBody[roster.Entry](t, rec).DateOfBirth)
}

func TestSaveDetailsRejectsInvalidRecord(t *testing.T) {
	f := newFixture(t)
	token := f.loginAs(t, "new_user")

	rec := f.do(t, http.MethodPost, "/api/me/details", token,
		roster.Entry{ID: "u1", Email: "not-an-email", PhoneNumber: "123"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody[errorBody](t, rec)
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "phone_number")
}

func TestSaveDetails(t *testing.T) {
	f := newFixture(t)
	token := f.loginAs(t, "new_user")

	entry := roster.Entry{ID: "u1", Email: "asha@example.com", DateOfBirth: "07/03/1990"}
	f.backend.EXPECT().
		SavePersonalDetails(gomock.Any(), upstreamToken, entry).
		Return(nil)

	rec := f.do(t, http.MethodPost, "/api/me/details", token, entry)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
