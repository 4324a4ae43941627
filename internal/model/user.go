package model

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	EmployeeCode string `json:"employee_code"`
	Role         string `json:"role"`
	Section      string `json:"section"`
}
