package constant

const (
	Error = "error"
	Slug  = "slug"
	Floor = "floor"
)
