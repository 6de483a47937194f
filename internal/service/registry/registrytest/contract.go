// Package registrytest holds the behaviour every core.Registry backend must show.
package registrytest

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/roster/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Factory func(t *testing.T) core.Registry

type add struct {
	employee   string
	department string
}

func Run(t *testing.T, newRegistry Factory) {
	t.Run("empty_registry_lists_nothing", func(t *testing.T) {
		r := newRegistry(t)

		all, err := r.ListAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("unknown_department_is_lookup_miss", func(t *testing.T) {
		r := newRegistry(t)
		ctx := context.Background()
		require.NoError(t, r.AddEmployee(ctx, "Alice", "Engineering"))

		employees, err := r.ListByDepartment(ctx, "Marketing")
		require.Error(t, err)
		assert.Nil(t, employees)
		assert.True(t, errors.Is(err, core.ErrDepartmentNotFound))

		department, ok := core.IsLookupMiss(err)
		assert.True(t, ok)
		assert.Equal(t, "Marketing", department)
	})

	tests := []struct {
		name       string
		adds       []add
		department string
		want       []string
	}{
		{
			name:       "single_employee",
			adds:       []add{{"Alice", "Engineering"}},
			department: "Engineering",
			want:       []string{"Alice"},
		},
		{
			name:       "same_department_keeps_order",
			adds:       []add{{"Bob", "Sales"}, {"Carol", "Sales"}},
			department: "Sales",
			want:       []string{"Bob", "Carol"},
		},
		{
			name:       "three_in_order",
			adds:       []add{{"E1", "Ops"}, {"E2", "Ops"}, {"E3", "Ops"}},
			department: "Ops",
			want:       []string{"E1", "E2", "E3"},
		},
		{
			name:       "duplicates_kept",
			adds:       []add{{"Dave", "Support"}, {"Dave", "Support"}},
			department: "Support",
			want:       []string{"Dave", "Dave"},
		},
		{
			name:       "other_departments_untouched",
			adds:       []add{{"Alice", "Engineering"}, {"Bob", "Sales"}, {"Eve", "Engineering"}},
			department: "Engineering",
			want:       []string{"Alice", "Eve"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRegistry(t)
			ctx := context.Background()

			for _, a := range tt.adds {
				require.NoError(t, r.AddEmployee(ctx, a.employee, a.department))
			}

			got, err := r.ListByDepartment(ctx, tt.department)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, lastAddedTo(tt.adds, tt.department), got[len(got)-1])
		})
	}

	t.Run("list_all_in_department_order", func(t *testing.T) {
		r := newRegistry(t)
		ctx := context.Background()
		require.NoError(t, r.AddEmployee(ctx, "Bob", "Sales"))
		require.NoError(t, r.AddEmployee(ctx, "Alice", "Engineering"))
		require.NoError(t, r.AddEmployee(ctx, "Carol", "Sales"))

		all, err := r.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []core.Department{
			{Name: "Sales", Employees: []string{"Bob", "Carol"}},
			{Name: "Engineering", Employees: []string{"Alice"}},
		}, all)
	})

	t.Run("returned_slices_are_copies", func(t *testing.T) {
		r := newRegistry(t)
		ctx := context.Background()
		require.NoError(t, r.AddEmployee(ctx, "Alice", "Engineering"))

		got, err := r.ListByDepartment(ctx, "Engineering")
		require.NoError(t, err)
		got[0] = "Mallory"

		all, err := r.ListAll(ctx)
		require.NoError(t, err)
		all[0].Employees[0] = "Mallory"

		again, err := r.ListByDepartment(ctx, "Engineering")
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice"}, again)
	})
}

func lastAddedTo(adds []add, department string) string {
	last := ""
	for _, a := range adds {
		if a.department == department {
			last = a.employee
		}
	}
	return last
}
