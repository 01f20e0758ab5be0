package input

// RoomForm carries the raw fields of the create and edit forms. Links holds
// the unparsed link-list text exactly as submitted, so it can be echoed back
// together with validation errors.
type RoomForm struct {
	Title     string
	FloorName string
	Password  string
	Links     string

	// NewPassword is only present on the edit form. Empty means keep the
	// current password.
	NewPassword string
}
