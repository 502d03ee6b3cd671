package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVHeaderOnlyForEmptyView(t *testing.T) {
	got := string(ExportCSV(nil))
	assert.Equal(t,
		`"Email","Adhaar","Name","Father Name","Nationality","Phone Number","Date of Birth","Caste","Gender","Gotra","Education","Occupation","Postal Address","Mother Tongue","Marital Status","State","District"`,
		got)
}

func TestExportCSVRowPerEntry(t *testing.T) {
	view := []Entry{
		{ID: "u1", Email: "asha@example.com", Name: "Asha", Gender: "Female"},
		{ID: "u2", Email: "ravi@example.com", Name: "Ravi", Gender: "Male"},
	}
	lines := strings.Split(string(ExportCSV(view)), "\n")
	require.Len(t, lines, 3)

	// The id column is excluded; 17 attribute cells per row, all quoted,
	// missing values as empty quoted fields.
	row := strings.Split(lines[1], ",")
	require.Len(t, row, 17)
	assert.Equal(t, `"asha@example.com"`, row[0])
	assert.Equal(t, `"Asha"`, row[2])
	assert.Equal(t, `""`, row[1])
	assert.NotContains(t, lines[1], "u1")
}

func TestExportCSVEscapesEmbeddedQuotes(t *testing.T) {
	view := []Entry{{ID: "u1", Name: `Asha "Ash" Sharma`}}
	got := string(ExportCSV(view))
	assert.Contains(t, got, `"Asha ""Ash"" Sharma"`)
}

func TestExportCSVPreservesViewOrder(t *testing.T) {
	view := []Entry{
		{ID: "b", Name: "Second"},
		{ID: "a", Name: "First"},
	}
	lines := strings.Split(string(ExportCSV(view)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Second")
	assert.Contains(t, lines[2], "First")
}

func TestExportCSVNeverRendersPlaceholders(t *testing.T) {
	got := string(ExportCSV([]Entry{{ID: "u1"}}))
	assert.NotContains(t, got, "undefined")
	assert.NotContains(t, got, "null")
}
