package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
)

func fields(assignments []Assignment) map[Field]interface{} {
	m := make(map[Field]interface{}, len(assignments))
	for _, a := range assignments {
		m[a.Field] = a.Value
	}
	return m
}

func TestLayoutsFor(t *testing.T) {
	l := DefaultLayouts()
	assert.Equal(t, "Single income", l.For(models.RegionSingle).Sheet)
	assert.Equal(t, "F42", l.For(models.RegionSingle).Result)
	assert.Equal(t, "Dual income", l.For(models.RegionDual).Sheet)
	assert.Equal(t, "F43", l.For(models.RegionDual).Result)
}

func TestEveryFieldHasACell(t *testing.T) {
	l := DefaultLayouts()
	for _, a := range append(Defaults(), Inputs(youngCouple)...) {
		assert.Contains(t, l.Single.Cells, a.Field)
		assert.Contains(t, l.Dual.Cells, a.Field)
	}
}

func TestInputsOmitUnsetOptionalFields(t *testing.T) {
	got := fields(Inputs(singleLowIncome))

	assert.Equal(t, map[Field]interface{}{
		FieldPrimaryIncome: 65000.0,
		FieldDependents:    0,
		FieldInterestRate:  5.5 / 100,
		FieldCurrentRent:   650.0,
	}, got)
}

func TestInputsInvestmentScenario(t *testing.T) {
	s := models.Scenario{
		Name:          "Scenario 2: Single, Medium Income, Investment",
		PrimaryIncome: 95000,
		HECSPrimary:   25000,
		PropertyUsage: models.UsageInvestment,
		InterestRate:  5.8,
		RentalIncome:  450 * 52,
	}
	got := fields(Inputs(s))

	assert.Equal(t, "Y", got[FieldHECSPrimaryFlag])
	assert.Equal(t, 25000.0, got[FieldHECSPrimary])
	assert.Equal(t, 23400.0, got[FieldRentalIncome])
	assert.InDelta(t, 0.058, got[FieldInterestRate], 1e-12)
	assert.NotContains(t, got, FieldHECSSecondFlag)
	assert.NotContains(t, got, FieldCurrentRent)
}

func TestDefaultsAreNeutral(t *testing.T) {
	got := fields(Defaults())

	assert.Equal(t, 0, got[FieldSecondaryIncome])
	assert.Equal(t, "N", got[FieldHECSPrimaryFlag])
	assert.Equal(t, "N", got[FieldHECSSecondFlag])
	assert.Equal(t, 0.055, got[FieldInterestRate])
	assert.Equal(t, 500000, got[FieldLoanAmount])
}
