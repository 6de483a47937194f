package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sandevgo/roster/internal/core"
)

// RegistryRepo is a core.Registry backed by the departments and employees tables.
type RegistryRepo struct {
	db *sql.DB
}

func NewRegistryRepo(db *sql.DB) *RegistryRepo {
	return &RegistryRepo{db: db}
}

func (r *RegistryRepo) AddEmployee(ctx context.Context, employee, department string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Ensure the department row exists
	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO departments (name) VALUES (?)`, department); err != nil {
		return fmt.Errorf("failed to insert department: %w", err)
	}

	// 2. Append the employee
	query := `INSERT INTO employees (department_id, name)
		SELECT id, ? FROM departments WHERE name = ?`
	if _, err := tx.ExecContext(ctx, query, employee, department); err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}

	return tx.Commit()
}

func (r *RegistryRepo) ListByDepartment(ctx context.Context, department string) ([]string, error) {
	var departmentID int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM departments WHERE name = ?`, department).Scan(&departmentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &core.LookupMiss{Department: department}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query department: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT name FROM employees WHERE department_id = ? ORDER BY id`, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		employees = append(employees, name)
	}
	return employees, rows.Err()
}

func (r *RegistryRepo) ListAll(ctx context.Context) ([]core.Department, error) {
	query := `
		SELECT d.name, e.name
		FROM departments d
		JOIN employees e ON e.department_id = d.id
		ORDER BY d.id, e.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query registry: %w", err)
	}
	defer rows.Close()

	result := make([]core.Department, 0)
	for rows.Next() {
		var department, employee string
		if err := rows.Scan(&department, &employee); err != nil {
			return nil, err
		}
		if n := len(result); n > 0 && result[n-1].Name == department {
			result[n-1].Employees = append(result[n-1].Employees, employee)
			continue
		}
		result = append(result, core.Department{Name: department, Employees: []string{employee}})
	}
	return result, rows.Err()
}
