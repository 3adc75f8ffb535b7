package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Role is one of the closed set of work roles
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// Department is one of the closed set of departments
type Department string

const (
	DepartmentHR    Department = "HR"
	DepartmentIT    Department = "IT"
	DepartmentSales Department = "Sales"
)

// ValidDepartments defines allowed departments
var ValidDepartments = map[Department]bool{
	DepartmentHR:    true,
	DepartmentIT:    true,
	DepartmentSales: true,
}

var ErrInvalidDepartment = errors.New("invalid department")

// ParseDepartment converts text into a Department.
// Matching is case-insensitive so "sales" and "Sales" both resolve.
func ParseDepartment(s string) (Department, error) {
	for d := range ValidDepartments {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q, must be one of: HR, IT, Sales", ErrInvalidDepartment, s)
}

// Employee represents a person with a work department
type Employee struct {
	ID         int        `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Email      *string    `json:"email,omitempty" db:"email"`
	Skills     []string   `json:"skills" db:"skills"`
	Department Department `json:"department" db:"department"`
}

// String renders the employee as compact JSON
func (e Employee) String() string {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf("Employee(%d)", e.ID)
	}
	return string(data)
}

// Clone returns a copy that shares no memory with e
func (e Employee) Clone() Employee {
	out := e
	if e.Email != nil {
		email := *e.Email
		out.Email = &email
	}
	if e.Skills != nil {
		out.Skills = append([]string(nil), e.Skills...)
	}
	return out
}

// Preview projects the employee down to its id and name
func (e Employee) Preview() EmployeePreview {
	return EmployeePreview{ID: e.ID, Name: e.Name}
}

// WithoutSkills projects every field except the skills
func (e Employee) WithoutSkills() EmployeeWithoutSkills {
	c := e.Clone()
	return EmployeeWithoutSkills{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Department: c.Department,
	}
}

// EmployeeUpdate is a partial employee where every field is optional.
// It describes a patch and is never applied to a stored record.
type EmployeeUpdate struct {
	ID         *int        `json:"id,omitempty"`
	Name       *string     `json:"name,omitempty"`
	Email      *string     `json:"email,omitempty"`
	Skills     []string    `json:"skills,omitempty"`
	Department *Department `json:"department,omitempty"`
}

// IsEmpty reports whether no field of the patch is set
func (u EmployeeUpdate) IsEmpty() bool {
	return u.ID == nil && u.Name == nil && u.Email == nil && u.Skills == nil && u.Department == nil
}

// EmployeePreview carries only the identifying fields
type EmployeePreview struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EmployeeWithoutSkills is an employee with the skills field dropped
type EmployeeWithoutSkills struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Email      *string    `json:"email,omitempty"`
	Department Department `json:"department"`
}

// EmployeeTuple is the ordered (id, name) pair
type EmployeeTuple struct {
	ID   int
	Name string
}

// StringPtr returns a pointer to s, for optional fields in literals
func StringPtr(s string) *string {
	return &s
}
