package httptransport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sabha/internal/announce"
)

func TestListAnnouncementsForAnyMember(t *testing.T) {
	f := newFixture(t)
	token := f.loginAs(t, "new_user")
	f.backend.EXPECT().
		ListAnnouncements(gomock.Any(), upstreamToken).
		Return([]announce.Announcement{{ID: "a1", Title: "Diwali"}}, nil)

	rec := f.do(t, http.MethodGet, "/api/announcements", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	items := decodeBody[[]announce.Announcement](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "Diwali", items[0].Title)
}

func TestListAnnouncementsEmptyIsJSONArray(t *testing.T) {
	f := newFixture(t)
	token := f.loginAs(t, "new_user")
	f.backend.EXPECT().
		ListAnnouncements(gomock.Any(), upstreamToken).
		Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/api/announcements", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateAnnouncementRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	token := f.loginAs(t, "new_user")

	rec := f.do(t, http.MethodPost, "/api/announcements", token,
		map[string]string{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateAnnouncement(t *testing.T) {
	f := newFixture(t)
	token := f.loginAs(t, "admin")
	f.backend.EXPECT().
		CreateAnnouncement(gomock.Any(), upstreamToken, "AGM", "sunday 10am").
		Return(announce.Announcement{ID: "a2", Title: "AGM", Content: "sunday 10am"}, nil)

	rec := f.do(t, http.MethodPost, "/api/announcements", token,
		map[string]string{"title": "AGM", "content": "sunday 10am"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "a2", decodeBody[announce.Announcement](t, rec).ID)
}

func TestCreateAnnouncementValidatesBody(t *testing.T) {
	f := newFixture(t)
	token := f.loginAs(t, "admin")

	rec := f.do(t, http.MethodPost, "/api/announcements", token,
		map[string]string{"title": "AGM"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDeleteAnnouncement(t *testing.T) {
	f := newFixture(t)
	token := f.loginAs(t, "admin")
	f.backend.EXPECT().
		UpdateAnnouncement(gomock.Any(), upstreamToken, "a1", "AGM", "moved").
		Return(nil)
	f.backend.EXPECT().
		DeleteAnnouncement(gomock.Any(), upstreamToken, "a1").
		Return(nil)

	rec := f.do(t, http.MethodPut, "/api/announcements/a1", token,
		map[string]string{"title": "AGM", "content": "moved"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/announcements/a1", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
