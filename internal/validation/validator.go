package validation

import (
	"regexp"
	"strings"

	"github.com/employee-playground/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError is the field error carried in API responses
type ValidationError = models.ValidationError

// Validator checks employee records and update patches
type Validator struct {
	knownIDs map[int]bool
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{knownIDs: make(map[int]bool)}
}

// SetKnownIDs sets the ids an update may refer to. With an empty set any
// positive id is accepted.
func (v *Validator) SetKnownIDs(ids []int) {
	for _, id := range ids {
		v.knownIDs[id] = true
	}
}

// ValidateEmployee validates a complete employee record
func (v *Validator) ValidateEmployee(emp *models.Employee) []ValidationError {
	var errors []ValidationError

	if emp.ID <= 0 {
		errors = append(errors, ValidationError{Field: "id", Message: "id must be positive", Value: emp.ID})
	}
	if strings.TrimSpace(emp.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	if emp.Email != nil {
		errors = append(errors, validateEmail(*emp.Email)...)
	}
	if emp.Skills == nil {
		errors = append(errors, ValidationError{Field: "skills", Message: "skills is required"})
	}
	errors = append(errors, validateSkills(emp.Skills)...)
	if !models.ValidDepartments[emp.Department] {
		errors = append(errors, ValidationError{
			Field:   "department",
			Message: "invalid department, must be one of: HR, IT, Sales",
			Value:   emp.Department,
		})
	}

	return errors
}

// ValidateUpdate validates a partial employee patch. Only fields that are
// set are checked; a patch with no fields is rejected.
func (v *Validator) ValidateUpdate(update *models.EmployeeUpdate) []ValidationError {
	var errors []ValidationError

	if update.IsEmpty() {
		return []ValidationError{{Field: "", Message: "update must set at least one field"}}
	}

	if update.ID != nil {
		switch {
		case *update.ID <= 0:
			errors = append(errors, ValidationError{Field: "id", Message: "id must be positive", Value: *update.ID})
		case len(v.knownIDs) > 0 && !v.knownIDs[*update.ID]:
			errors = append(errors, ValidationError{Field: "id", Message: "referenced employee does not exist", Value: *update.ID})
		}
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name must not be blank"})
	}
	if update.Email != nil {
		errors = append(errors, validateEmail(*update.Email)...)
	}
	errors = append(errors, validateSkills(update.Skills)...)
	if update.Department != nil && !models.ValidDepartments[*update.Department] {
		errors = append(errors, ValidationError{
			Field:   "department",
			Message: "invalid department, must be one of: HR, IT, Sales",
			Value:   *update.Department,
		})
	}

	return errors
}

func validateEmail(email string) []ValidationError {
	if email == "" {
		return []ValidationError{{Field: "email", Message: "email must not be empty when set"}}
	}
	if !emailRegex.MatchString(email) {
		return []ValidationError{{Field: "email", Message: "invalid email format", Value: email}}
	}
	return nil
}

// Duplicate skills are permitted; blank ones are not
func validateSkills(skills []string) []ValidationError {
	var errors []ValidationError
	for _, s := range skills {
		if strings.TrimSpace(s) == "" {
			errors = append(errors, ValidationError{Field: "skills", Message: "skill must not be blank", Value: s})
		}
	}
	return errors
}
