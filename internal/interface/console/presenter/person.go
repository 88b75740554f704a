package presenter

import (
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/person"
)

// Подсказки и сообщения реестра людей.
const (
	PromptPersonName   = "Enter the person name: "
	PromptPersonAge    = "Enter the person age: "
	PromptPersonGender = "Enter the person gender: "
	PromptPersonHeight = "Enter the person height: "

	InvalidHeightFormat = "Invalid height. Please enter a valid number."
	InvalidHeightValue  = "Invalid height. Please enter a positive number."

	NoPersons = "No persons"
)

// PersonLine возвращает строку вида "Name: Lucas, Age: 17, Gender: Male, Height: 1.95".
func PersonLine(p *person.Person) string {
	return fmt.Sprintf("Name: %s, Age: %d, Gender: %s, Height: %s",
		p.Name(), p.Age(), p.Gender(), FormatFloat(p.Height()))
}
