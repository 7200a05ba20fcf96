package models

import "time"

// Principal roles.
const (
	RoleAdmin    = "ADMIN"
	RoleStaff    = "STAFF"
	RoleCustomer = "CUSTOMER"
)

// Staff is an employee account for the admin portal.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	EmployeeID   string    `bson:"employee_id" json:"employeeId"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	Role         string    `bson:"role" json:"role"` // ADMIN or STAFF
	PasswordHash string    `bson:"password_hash" json:"-"`
	IsActive     bool      `bson:"is_active" json:"isActive"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// Principal is the role-bearing identity yielded by authentication.
type Principal struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Name string `json:"displayName"`
}
