package handler

import (
	"github.com/alem-hub/gradebook/internal/application/command"
	"github.com/alem-hub/gradebook/internal/application/query"
	"github.com/alem-hub/gradebook/internal/interface/console"
	"github.com/alem-hub/gradebook/internal/interface/console/presenter"
)

// Menu names, used as log and metric labels.
const (
	StudentMenuName = "students"
	PersonMenuName  = "persons"
)

// StudentMenu builds the six-option gradebook menu.
func StudentMenu(deps StudentDeps) console.Menu {
	return console.Menu{
		Name:   StudentMenuName,
		Header: presenter.MenuSeparator,
		Items: []console.Item{
			{Option: 1, Label: "Add student", Handler: NewAddStudentHandler(deps)},
			{Option: 2, Label: "See students", Handler: NewListStudentsHandler(deps)},
			{Option: 3, Label: "Add grade", Handler: NewAddGradeHandler(deps)},
			{Option: 4, Label: "See student info", Handler: NewStudentInfoHandler(deps)},
			{Option: 5, Label: "Check if approved", Handler: NewCheckApprovalHandler(deps)},
			{Option: 6, Label: "Exit"},
		},
	}
}

// PersonMenu builds the three-option person roster menu.
func PersonMenu(create *command.CreatePersonHandler, list *query.ListPersonsHandler) console.Menu {
	return console.Menu{
		Name: PersonMenuName,
		Items: []console.Item{
			{Option: 1, Label: "Add person", Handler: NewAddPersonHandler(create)},
			{Option: 2, Label: "See persons", Handler: NewListPersonsHandler(list)},
			{Option: 3, Label: "Exit"},
		},
	}
}
