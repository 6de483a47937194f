package core

import "context"

// Command is a classified input line ready for dispatch to a Registry.
// The set of variants is closed: AddEmployee, ListByDepartment and ListAll.
type Command interface {
	command()
}

type AddEmployee struct {
	Employee   string
	Department string
}

type ListByDepartment struct {
	Department string
}

type ListAll struct{}

func (AddEmployee) command()      {}
func (ListByDepartment) command() {}
func (ListAll) command()          {}

type Classifier interface {
	Classify(line string) (Command, error)
}

type CmdRouter interface {
	Execute(ctx context.Context, line string) Reply
}

// Reply is the rendered outcome of one input line.
type Reply struct {
	Markdown string
	Failed   bool
}
