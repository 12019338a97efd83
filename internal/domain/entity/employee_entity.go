package entity

// Employee is the aggregate root for the employee domain.
// ID is assigned by the store on insert and never changes afterwards.
type Employee struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// NewEmployee returns an employee that has not been persisted yet.
func NewEmployee(firstName, lastName, email string) *Employee {
	return &Employee{FirstName: firstName, LastName: lastName, Email: email}
}

// IsNew reports whether the employee still waits for a store-assigned ID.
func (e *Employee) IsNew() bool {
	return e.ID == 0
}
