package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func TestValidateCreateCampaignInput(t *testing.T) {
	errs := usecase.ValidateCreateCampaignInput(usecase.CreateCampaignInput{
		Name:         "Q3 Outreach",
		Offer:        "demo call",
		CalendarLink: "https://cal.example.com/me",
	})
	assert.Empty(t, errs)

	errs = usecase.ValidateCreateCampaignInput(usecase.CreateCampaignInput{})
	assert.Len(t, errs, 2)

	errs = usecase.ValidateCreateCampaignInput(usecase.CreateCampaignInput{
		Name:  strings.Repeat("x", 121),
		Offer: "demo call",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestValidateParsedLead(t *testing.T) {
	errs := usecase.ValidateParsedLead(2, usecase.ParsedLead{Email: "ana@example.com"})
	assert.Empty(t, errs)

	errs = usecase.ValidateParsedLead(2, usecase.ParsedLead{Phone: "+55 11 99999-0001"})
	assert.Empty(t, errs)

	errs = usecase.ValidateParsedLead(3, usecase.ParsedLead{FirstName: "Ana"})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "row 3")

	errs = usecase.ValidateParsedLead(4, usecase.ParsedLead{Email: "not-an-email"})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid email")

	// Too few digits to dial.
	errs = usecase.ValidateParsedLead(5, usecase.ParsedLead{Phone: "12345"})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid phone")
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5511999990001", usecase.NormalizePhone("+55 (11) 99999-0001"))
	assert.Equal(t, "5511999990001", usecase.NormalizePhone("5511999990001"))
	assert.Equal(t, "", usecase.NormalizePhone("ext."))
}
