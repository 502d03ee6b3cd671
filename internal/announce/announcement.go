package announce

// Announcement is one community notice. Timestamps stay in the backend's
// RFC 3339 string form; the portal displays them without reinterpreting.
type Announcement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	AuthorEmail string `json:"author_email"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
