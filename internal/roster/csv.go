package roster

import "strings"

// CSVFileName and CSVContentType describe the export artifact offered for
// download.
const (
	CSVFileName    = "users.csv"
	CSVContentType = "text/csv"
)

// csvHeader is the fixed 17-column header row of the export.
var csvHeader = []string{
	"Email", "Adhaar", "Name", "Father Name", "Nationality", "Phone Number",
	"Date of Birth", "Caste", "Gender", "Gotra", "Education", "Occupation",
	"Postal Address", "Mother Tongue", "Marital Status", "State", "District",
}

// ExportCSV serializes a filtered view into CSV bytes: the fixed header plus
// one row per entry in view order. Every cell is double-quote wrapped, missing
// values render as an empty quoted field, and embedded quotes are doubled per
// CSV convention. Rows are joined with \n. The operation is synchronous and
// touches no network; it exports exactly the in-memory view it is given.
func ExportCSV(view []Entry) []byte {
	lines := make([]string, 0, len(view)+1)
	lines = append(lines, csvLine(csvHeader))
	for _, e := range view {
		values := e.attributeValues()
		lines = append(lines, csvLine(values[:]))
	}
	return []byte(strings.Join(lines, "\n"))
}

func csvLine(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
