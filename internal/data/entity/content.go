package entity

// Content is a CMS page served to the frontend by slug.
type Content struct {
	Base
	Slug  string `db:"slug"`
	Title string `db:"title"`
	Body  string `db:"body"`
}
