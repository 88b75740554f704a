package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/character"
	"github.com/alem-hub/gradebook/internal/domain/payment"
	"github.com/alem-hub/gradebook/internal/domain/person"
	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/internal/domain/student"
	"github.com/alem-hub/gradebook/internal/domain/vehicle"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{23.0 / 3, "7.666666666666667"},
		{17.0 / 3, "5.666666666666667"},
		{16.0 / 3, "5.333333333333333"},
		{8, "8.0"},
		{0, "0.0"},
		{6.5, "6.5"},
		{1.95, "1.95"},
		{0.00001, "1e-05"},
		{1e16, "1e+16"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.in))
		})
	}
}

func TestFormatIntList(t *testing.T) {
	assert.Equal(t, "[10, 7, 6]", FormatIntList([]student.Grade{10, 7, 6}))
	assert.Equal(t, "[]", FormatIntList([]int{}))
	assert.Equal(t, "[3]", FormatIntList([]int{3}))
}

func TestRenderMenu(t *testing.T) {
	got := RenderMenu(MenuSeparator, []MenuEntry{{1, "Add student"}, {2, "Exit"}})
	assert.Equal(t, "--------------------------------\n1. Add student\n2. Exit\n", got)

	assert.Equal(t, "1. Add person\n", RenderMenu("", []MenuEntry{{1, "Add person"}}))
}

func TestStudentPresenter_Describe(t *testing.T) {
	p := NewStudentPresenter()

	juan, err := student.NewStudent(student.NewStudentParams{ID: 1, Name: "Juan", Age: 20, Grades: []int{10, 7, 6}})
	require.NoError(t, err)

	line, err := p.Describe(juan)
	require.NoError(t, err)
	assert.Equal(t, "Name: Juan, ID: 1, Age: 20, Grades: [10, 7, 6], Average: 7.666666666666667", line)

	empty, err := student.NewStudent(student.NewStudentParams{ID: 2, Name: "Empty", Age: 20})
	require.NoError(t, err)
	_, err = p.Describe(empty)
	assert.ErrorIs(t, err, shared.ErrNoGrades)
	assert.Equal(t, "Name: Empty, ID: 2, Age: 20, Grades: [] (no grades yet)", p.NoGrades(empty))
}

func TestStudentPresenter_Approval(t *testing.T) {
	p := NewStudentPresenter()
	assert.Equal(t, "The student passed with 7.666666666666667", p.Approval(true, 23.0/3))
	assert.Equal(t, "The student did not pass with 5.666666666666667", p.Approval(false, 17.0/3))
	assert.Equal(t, "The student passed with 6.0", p.Approval(true, 6))
}

func TestGradePrompt(t *testing.T) {
	assert.Equal(t, "Enter the grade 2: ", GradePrompt(2))
}

func TestPersonLine(t *testing.T) {
	lucas, err := person.NewPerson(person.NewPersonParams{ID: 1, Name: "Lucas", Age: 17, Gender: "male", Height: 1.95})
	require.NoError(t, err)
	assert.Equal(t, "Name: Lucas, Age: 17, Gender: Male, Height: 1.95", PersonLine(lucas))

	tall, err := person.NewPerson(person.NewPersonParams{ID: 2, Name: "Ana", Age: 30, Gender: "x", Height: 2})
	require.NoError(t, err)
	assert.Equal(t, "Name: Ana, Age: 30, Gender: Other, Height: 2.0", PersonLine(tall))
}

func TestBattleNarration(t *testing.T) {
	attack := character.AttackResult{
		Attacker: "Arthur",
		Weapon:   "Iron Sword",
		Damage:   character.DamageResult{Target: "Dark Knight", Dealt: 20},
	}
	assert.Equal(t, []string{
		"Arthur attacks Dark Knight with Iron Sword!",
		"Dark Knight has taken 20 damage.",
	}, Attack(attack))

	attack.Damage.Defeated = true
	assert.Len(t, Attack(attack), 3)

	assert.Equal(t, "Arthur has been healed by 23 points (including 3 bonus).",
		Heal(character.HealResult{Healer: "Arthur", Target: "Arthur", Healed: 23, Bonus: 3}))
	assert.Equal(t, "Arthur heals Squire by 13 points (including 3 bonus).",
		Heal(character.HealResult{Healer: "Arthur", Target: "Squire", Healed: 13, Bonus: 3}))
	assert.Equal(t, "Dark Knight has been healed by 5 points.",
		Heal(character.HealResult{Healer: "Dark Knight", Target: "Dark Knight", Healed: 5}))

	assert.Equal(t, "Peasant has no weapon equipped!", AttackError("Peasant", shared.ErrNoWeapon))
	assert.Equal(t, "Arthur is already at full health.",
		HealError(character.HealResult{Healer: "Arthur", Target: "Arthur"}, shared.ErrAlreadyFullHealth))
}

func TestShowcaseLines(t *testing.T) {
	assert.Equal(t, "=== Fleet ===", Section("Fleet"))

	truck, err := vehicle.NewTruck("Ford", "F-150", "Black", 1000)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Brand: Ford, Model: F-150",
		"Color: Black",
		"Load Capacity: 1000 kg",
		"The car is moving",
	}, Vehicle(truck))

	assert.Equal(t, "Paying 250.00 with credit card (**** 3456)",
		Payment(payment.Receipt{Method: payment.KindCreditCard, Amount: 250, Account: "**** 3456"}))
	assert.Equal(t, "Paying 12.50 with PayPal (john@example.com)",
		Payment(payment.Receipt{Method: payment.KindPayPal, Amount: 12.5, Account: "john@example.com"}))

	assert.Equal(t, "Cannot pay -5.00 with PayPal: the amount must be positive.",
		PaymentError(payment.KindPayPal, -5, shared.ErrInvalidAmount))
	assert.Equal(t, "Cannot pay with PayPal: sign in first.",
		PaymentError(payment.KindPayPal, 10, shared.ErrNotSignedIn))
	assert.Equal(t, "Cannot pay with credit card: the card has expired.",
		PaymentError(payment.KindCreditCard, 10, shared.ErrCardExpired))
}
