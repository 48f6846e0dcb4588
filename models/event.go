package models

// Event ids are assigned server-side and are strictly increasing for the
// lifetime of the stored collection. Date is a caller-supplied string; the
// backend does not interpret its format.
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Organizer   string `json:"organizer"`
	ImageURL    string `json:"image_url"`
}
