package entity

type Branch struct {
	Base
	Name     string `db:"name"`
	City     string `db:"city"`
	IsActive bool   `db:"is_active"`
}
