package models

// Link belongs to exactly one room. DomainName is derived from URL at insert
// time and is never edited independently.
type Link struct {
	ID          int64  `db:"id"`
	RoomID      int64  `db:"room_id"`
	URL         string `db:"url"`
	DomainName  string `db:"domain_name"`
	Description string `db:"description"`
	Label       string `db:"label"`
}
