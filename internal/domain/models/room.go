package models

// Room is a password-protected collection of labeled links, addressed by its
// slug and grouped with other rooms under a floor name.
type Room struct {
	ID           int64  `db:"id"`
	Title        string `db:"title"`
	FloorName    string `db:"floor_name"`
	Slug         string `db:"slug"`
	PasswordHash string `db:"password_hash"`
}
