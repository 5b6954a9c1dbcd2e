package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateCampaignInput(input CreateCampaignInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 120 {
		errors = append(errors, ValidationError{"name", "must not exceed 120 characters"})
	}

	if strings.TrimSpace(input.Offer) == "" {
		errors = append(errors, ValidationError{"offer", "is required"})
	}

	if input.CalendarLink != "" && !isValidURL(input.CalendarLink) {
		errors = append(errors, ValidationError{"calendar_link", "must be an http(s) URL"})
	}

	return errors
}

// ValidateParsedLead checks one mapped CSV row. Row number only feeds the
// error message.
func ValidateParsedLead(row int, lead ParsedLead) []ValidationError {
	var errors []ValidationError

	if lead.Email == "" && lead.Phone == "" {
		errors = append(errors, ValidationError{
			fmt.Sprintf("row %d", row), "needs at least an email or a phone",
		})
		return errors
	}

	if lead.Email != "" && !isValidEmail(lead.Email) {
		errors = append(errors, ValidationError{
			fmt.Sprintf("row %d", row), fmt.Sprintf("invalid email %q", lead.Email),
		})
	}

	if lead.Phone != "" && !isValidPhoneNumber(lead.Phone) {
		errors = append(errors, ValidationError{
			fmt.Sprintf("row %d", row), fmt.Sprintf("invalid phone %q", lead.Phone),
		})
	}

	return errors
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(cleaned) >= 8 && len(cleaned) <= 15
}

func isValidURL(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

// NormalizePhone strips formatting so "+1 (415) 555-2671" and
// "14155552671" dedupe to the same lead.
func NormalizePhone(phone string) string {
	return regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
}
