package runner

import (
	"strings"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
)

// Field names one input of the serviceability calculator.
type Field string

const (
	FieldLoanAmount      Field = "loan_amount"
	FieldPrimaryIncome   Field = "primary_income"
	FieldSecondaryIncome Field = "secondary_income"
	FieldDependents      Field = "dependents"
	FieldInterestRate    Field = "interest_rate"
	FieldHECSPrimaryFlag Field = "hecs_primary_flag"
	FieldHECSSecondFlag  Field = "hecs_secondary_flag"
	FieldHECSPrimary     Field = "hecs_primary"
	FieldHECSSecondary   Field = "hecs_secondary"
	FieldRentalIncome    Field = "rental_income"
	FieldCurrentRent     Field = "current_rent"
)

// Layout is where one region keeps its inputs and its maximum loan.
type Layout struct {
	Sheet  string
	Result string
	Cells  map[Field]string
}

// writes reports whether cell is one of the layout's input cells.
func (l Layout) writes(cell string) bool {
	for _, c := range l.Cells {
		if strings.EqualFold(c, cell) {
			return true
		}
	}
	return false
}

// Layouts holds the layout of each region.
type Layouts struct {
	Single Layout
	Dual   Layout
}

// For returns the layout of region.
func (l Layouts) For(region models.Region) Layout {
	if region == models.RegionDual {
		return l.Dual
	}
	return l.Single
}

func defaultCells() map[Field]string {
	return map[Field]string{
		FieldLoanAmount:      "F5",
		FieldPrimaryIncome:   "F8",
		FieldSecondaryIncome: "I8",
		FieldDependents:      "E3",
		FieldInterestRate:    "B7",
		FieldHECSPrimaryFlag: "F9",
		FieldHECSSecondFlag:  "I9",
		FieldHECSPrimary:     "F16",
		FieldHECSSecondary:   "I16",
		FieldRentalIncome:    "F10",
		FieldCurrentRent:     "F33",
	}
}

// DefaultLayouts returns the calculator's layouts: both sheets share input
// cells and differ in where the maximum loan is shown.
func DefaultLayouts() Layouts {
	return Layouts{
		Single: Layout{Sheet: "Single income", Result: "F42", Cells: defaultCells()},
		Dual:   Layout{Sheet: "Dual income", Result: "F43", Cells: defaultCells()},
	}
}

// Assignment is a value written to a field.
type Assignment struct {
	Field Field
	Value interface{}
}

const (
	debtYes = "Y"
	debtNo  = "N"
	// triggerLoanAmount is written to the loan amount so the sheet has a
	// loan to assess.
	triggerLoanAmount = 500000
	defaultRate       = 0.055
)

// Defaults returns the neutral values every run starts from.
func Defaults() []Assignment {
	return []Assignment{
		{FieldPrimaryIncome, 0},
		{FieldSecondaryIncome, 0},
		{FieldDependents, 0},
		{FieldInterestRate, defaultRate},
		{FieldHECSPrimaryFlag, debtNo},
		{FieldHECSSecondFlag, debtNo},
		{FieldHECSPrimary, 0},
		{FieldHECSSecondary, 0},
		{FieldRentalIncome, 0},
		{FieldCurrentRent, 0},
		{FieldLoanAmount, triggerLoanAmount},
	}
}

// Inputs returns the writes for s. Optional fields are only written when
// set, leaving their defaults in place otherwise.
func Inputs(s models.Scenario) []Assignment {
	in := []Assignment{{FieldPrimaryIncome, s.PrimaryIncome}}
	if s.SecondaryIncome > 0 {
		in = append(in, Assignment{FieldSecondaryIncome, s.SecondaryIncome})
	}
	in = append(in,
		Assignment{FieldDependents, s.Dependents},
		Assignment{FieldInterestRate, s.InterestRate / 100},
	)
	if s.HECSPrimary > 0 {
		in = append(in,
			Assignment{FieldHECSPrimaryFlag, debtYes},
			Assignment{FieldHECSPrimary, s.HECSPrimary})
	}
	if s.HECSSecondary > 0 {
		in = append(in,
			Assignment{FieldHECSSecondFlag, debtYes},
			Assignment{FieldHECSSecondary, s.HECSSecondary})
	}
	if s.RentalIncome > 0 {
		in = append(in, Assignment{FieldRentalIncome, s.RentalIncome})
	}
	if s.CurrentRent > 0 {
		in = append(in, Assignment{FieldCurrentRent, s.CurrentRent})
	}
	return in
}
