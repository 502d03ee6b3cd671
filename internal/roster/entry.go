package roster

// Entry is one person's personal-details record as stored by the community
// backend. ID is the only required attribute; it is immutable once loaded and
// unique within the roster. Every other attribute is optional free text, with
// the empty string standing in for an absent value. DateOfBirth is stored
// canonically as YYYY-MM-DD (legacy rows may already hold DD/MM/YYYY) and is
// displayed as DD/MM/YYYY, see FormatDMY.
type Entry struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Adhaar        string `json:"adhaar"`
	Name          string `json:"name"`
	FatherName    string `json:"father_name"`
	Nationality   string `json:"nationality"`
	PhoneNumber   string `json:"phone_number"`
	DateOfBirth   string `json:"date_of_birth"`
	Caste         string `json:"caste"`
	Gender        string `json:"gender"`
	Gotra         string `json:"gotra"`
	Education     string `json:"education"`
	Occupation    string `json:"occupation"`
	PostalAddress string `json:"postal_address"`
	MotherTongue  string `json:"mother_tongue"`
	MaritalStatus string `json:"marital_status"`
	State         string `json:"state"`
	District      string `json:"district"`
}

// Attributes lists the filterable attribute names in display order, matching
// the backend's snake_case field names.
var Attributes = []string{
	"email", "adhaar", "name", "father_name", "nationality", "phone_number",
	"date_of_birth", "caste", "gender", "gotra", "education", "occupation",
	"postal_address", "mother_tongue", "marital_status", "state", "district",
}

// attributeValues returns the entry's attributes in display order.
func (e Entry) attributeValues() [17]string {
	return [17]string{
		e.Email, e.Adhaar, e.Name, e.FatherName, e.Nationality, e.PhoneNumber,
		e.DateOfBirth, e.Caste, e.Gender, e.Gotra, e.Education, e.Occupation,
		e.PostalAddress, e.MotherTongue, e.MaritalStatus, e.State, e.District,
	}
}

// Field returns the value of the named attribute. The second return reports
// whether the name is a known attribute; an entry "has" a field only when the
// name is known and the value is non-empty.
func (e Entry) Field(name string) (string, bool) {
	switch name {
	case "id":
		return e.ID, true
	case "email":
		return e.Email, true
	case "adhaar":
		return e.Adhaar, true
	case "name":
		return e.Name, true
	case "father_name":
		return e.FatherName, true
	case "nationality":
		return e.Nationality, true
	case "phone_number":
		return e.PhoneNumber, true
	case "date_of_birth":
		return e.DateOfBirth, true
	case "caste":
		return e.Caste, true
	case "gender":
		return e.Gender, true
	case "gotra":
		return e.Gotra, true
	case "education":
		return e.Education, true
	case "occupation":
		return e.Occupation, true
	case "postal_address":
		return e.PostalAddress, true
	case "mother_tongue":
		return e.MotherTongue, true
	case "marital_status":
		return e.MaritalStatus, true
	case "state":
		return e.State, true
	case "district":
		return e.District, true
	default:
		return "", false
	}
}

// SetField assigns the named attribute and reports whether the name is a
// known attribute. The id is immutable and cannot be set this way.
func (e *Entry) SetField(name, value string) bool {
	switch name {
	case "email":
		e.Email = value
	case "adhaar":
		e.Adhaar = value
	case "name":
		e.Name = value
	case "father_name":
		e.FatherName = value
	case "nationality":
		e.Nationality = value
	case "phone_number":
		e.PhoneNumber = value
	case "date_of_birth":
		e.DateOfBirth = value
	case "caste":
		e.Caste = value
	case "gender":
		e.Gender = value
	case "gotra":
		e.Gotra = value
	case "education":
		e.Education = value
	case "occupation":
		e.Occupation = value
	case "postal_address":
		e.PostalAddress = value
	case "mother_tongue":
		e.MotherTongue = value
	case "marital_status":
		e.MaritalStatus = value
	case "state":
		e.State = value
	case "district":
		e.District = value
	default:
		return false
	}
	return true
}
