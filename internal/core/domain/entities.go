package domain

// Role represents the kind of principal behind a session token
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// FeeStatus represents a student's fee state. The only transition is pending -> paid.
type FeeStatus string

const (
	FeeStatusPending FeeStatus = "pending"
	FeeStatusPaid    FeeStatus = "paid"
)

// Fixed payment values recorded on every fee payment
const (
	PaymentMethodPayPoint = "Bank of Baroda PayPoint"
	PaymentStatusSuccess  = "success"
)

// Principal is an authenticated actor resolved at login
type Principal struct {
	ID         string
	Email      string
	Name       string
	Role       Role
	RollNumber string
	ClassName  string
}
