package core

import "context"

// Registry maps department names to the ordered list of employees added to them.
type Registry interface {
	AddEmployee(ctx context.Context, employee, department string) error
	ListByDepartment(ctx context.Context, department string) ([]string, error)
	ListAll(ctx context.Context) ([]Department, error)
}

// Department is one entry of a Registry snapshot.
type Department struct {
	Name      string   `json:"name"`
	Employees []string `json:"employees"`
}
