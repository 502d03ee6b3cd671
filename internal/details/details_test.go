package details

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sabha/internal/roster"
)

func validEntry() roster.Entry {
	return roster.Entry{
		ID:          "u1",
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
		Adhaar:      "123456789012",
		DateOfBirth: "07/03/1990",
	}
}

func TestValidateAcceptsCompleteEntry(t *testing.T) {
	assert.Nil(t, Validate(validEntry()))
}

func TestValidateOptionalFieldsMayBeEmpty(t *testing.T) {
	e := roster.Entry{ID: "u1", Email: "asha@example.com"}
	assert.Nil(t, Validate(e))
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*roster.Entry)
		wantField string
	}{
		{"missing email", func(e *roster.Entry) { e.Email = "" }, "email"},
		{"malformed email", func(e *roster.Entry) { e.Email = "not-an-email" }, "email"},
		{"short phone", func(e *roster.Entry) { e.PhoneNumber = "12345" }, "phone_number"},
		{"phone with letters", func(e *roster.Entry) { e.PhoneNumber = "98765abcde" }, "phone_number"},
		{"adhaar wrong length", func(e *roster.Entry) { e.Adhaar = "123" }, "adhaar"},
		{"dob wrong format", func(e *roster.Entry) { e.DateOfBirth = "1990-03-07" }, "date_of_birth"},
		{"dob impossible day", func(e *roster.Entry) { e.DateOfBirth = "31/04/1990" }, "date_of_birth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)
			verr := Validate(e)
			require.NotNil(t, verr)
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	verr := Validate(roster.Entry{PhoneNumber: "1", Adhaar: "2", DateOfBirth: "bad"})
	require.NotNil(t, verr)
	assert.Len(t, verr.Fields, 4)
	assert.Equal(t, "invalid personal details: adhaar, date_of_birth, email, phone_number", verr.Error())
}

type fakeDetailsAPI struct {
	entry roster.Entry
	saved *roster.Entry
	err   error
}

func (f *fakeDetailsAPI) MyPersonalDetails(context.Context, string) (roster.Entry, error) {
	return f.entry, f.err
}

func (f *fakeDetailsAPI) SavePersonalDetails(_ context.Context, _ string, entry roster.Entry) error {
	f.saved = &entry
	return f.err
}

func TestServiceLoadFormatsDOB(t *testing.T) {
	api := &fakeDetailsAPI{entry: roster.Entry{ID: "u1", Email: "a@b.c", DateOfBirth: "1990-03-07"}}
	svc := NewService(api)

	got, err := svc.Load(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "07/03/1990", got.DateOfBirth)
}

func TestServiceSubmitValidatesBeforeSaving(t *testing.T) {
	api := &fakeDetailsAPI{}
	svc := NewService(api)

	err := svc.Submit(context.Background(), "token", roster.Entry{ID: "u1"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Nil(t, api.saved, "an invalid record must never reach the backend")
}

func TestServiceSubmitSavesValidRecord(t *testing.T) {
	api := &fakeDetailsAPI{}
	svc := NewService(api)

	entry := validEntry()
	require.NoError(t, svc.Submit(context.Background(), "token", entry))
	require.NotNil(t, api.saved)
	assert.Equal(t, entry, *api.saved)
}

func TestServiceSubmitPropagatesBackendError(t *testing.T) {
	api := &fakeDetailsAPI{err: errors.New("backend down")}
	svc := NewService(api)

	err := svc.Submit(context.Background(), "token", validEntry())
	assert.EqualError(t, err, "backend down")
}
