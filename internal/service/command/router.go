package command

import (
	"context"

	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/pkg/log"
)

var usage = []string{
	"Add <employee> to <department>",
	"Show employees from <department>",
	"Show all employees",
}

// Router classifies a line, applies it to the registry and renders the outcome.
type Router struct {
	classifier core.Classifier
	registry   core.Registry
	formatter  *ResponseFormatter
}

func New(classifier core.Classifier, registry core.Registry) *Router {
	return &Router{
		classifier: classifier,
		registry:   registry,
		formatter:  NewResponseFormatter(),
	}
}

func (r *Router) Execute(ctx context.Context, line string) core.Reply {
	logger := log.FromCtx(ctx)

	cmd, err := r.classifier.Classify(line)
	if err != nil {
		logger.Debug().Err(err).Msg("line not classified")
		return r.fail(err, r.formatter.Usage(usage))
	}

	switch c := cmd.(type) {
	case core.AddEmployee:
		if err := r.registry.AddEmployee(ctx, c.Employee, c.Department); err != nil {
			logger.Error().Err(err).Msg("failed to add employee")
			return r.fail(err)
		}
		logger.Info().
			Str("employee", c.Employee).
			Str("department", c.Department).
			Msg("employee added")
		return core.Reply{Markdown: r.formatter.Added(c.Employee, c.Department)}

	case core.ListByDepartment:
		employees, err := r.registry.ListByDepartment(ctx, c.Department)
		if department, ok := core.IsLookupMiss(err); ok {
			return core.Reply{Markdown: r.formatter.NotFound(department)}
		}
		if err != nil {
			logger.Error().Err(err).Str("department", c.Department).Msg("failed to list department")
			return r.fail(err)
		}
		return core.Reply{Markdown: r.formatter.Department(c.Department, employees)}

	case core.ListAll:
		departments, err := r.registry.ListAll(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("failed to list registry")
			return r.fail(err)
		}
		return core.Reply{Markdown: r.formatter.Registry(departments)}
	}

	return r.fail(core.NewClassificationError(line))
}

func (r *Router) fail(err error, extra ...string) core.Reply {
	sections := append([]string{r.formatter.Error(err)}, extra...)
	return core.Reply{Markdown: r.formatter.Combine(sections...), Failed: true}
}
