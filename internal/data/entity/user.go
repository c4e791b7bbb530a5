package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleOperator UserRole = "operator"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	Phone        string   `db:"phone"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	IsPaid       bool     `db:"is_paid"`
	IsActive     bool     `db:"is_active"`
}
