package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// headerPatterns drives the heuristic column mapper. First hit wins, so
// more specific substrings come before generic ones ("first name" before
// "name").
var headerPatterns = []struct {
	substrings []string
	field      LeadField
}{
	{[]string{"first name", "first_name", "firstname", "given"}, FieldFirstName},
	{[]string{"last name", "last_name", "lastname", "surname", "family"}, FieldLastName},
	{[]string{"e-mail", "email"}, FieldEmail},
	{[]string{"phone", "mobile", "cell", "whatsapp", "tel"}, FieldPhone},
	{[]string{"company", "organization", "organisation", "employer", "account"}, FieldCompany},
	{[]string{"job title", "job_title", "title", "position", "role"}, FieldJobTitle},
	{[]string{"full name", "full_name", "contact name", "name"}, FieldFullName},
}

// InferColumnMapping assigns lead fields to CSV columns by lower-cased
// substring matching. Each field is claimed at most once; unmatched
// columns stay ignored.
func InferColumnMapping(header []string) ColumnMapping {
	mapping := make(ColumnMapping, len(header))
	claimed := make(map[LeadField]bool)

	for i, raw := range header {
		h := strings.ToLower(strings.TrimSpace(stripQuotes(raw)))
		if h == "" {
			continue
		}

		for _, p := range headerPatterns {
			if claimed[p.field] {
				continue
			}
			for _, sub := range p.substrings {
				if strings.Contains(h, sub) {
					mapping[i] = p.field
					claimed[p.field] = true
					break
				}
			}
			if claimed[p.field] && mapping[i] == p.field {
				break
			}
		}
	}

	return mapping
}

// ApplyMapping turns one CSV record into a ParsedLead. A mapped FULL_NAME
// column splits on the first space when no dedicated first/last columns
// exist.
func ApplyMapping(record []string, mapping ColumnMapping) ParsedLead {
	var lead ParsedLead
	var fullName string

	for i, value := range record {
		field, ok := mapping[i]
		if !ok {
			continue
		}

		v := strings.TrimSpace(stripQuotes(value))
		switch field {
		case FieldFirstName:
			lead.FirstName = v
		case FieldLastName:
			lead.LastName = v
		case FieldFullName:
			fullName = v
		case FieldEmail:
			lead.Email = strings.ToLower(v)
		case FieldPhone:
			lead.Phone = v
		case FieldCompany:
			lead.Company = v
		case FieldJobTitle:
			lead.JobTitle = v
		}
	}

	if lead.FirstName == "" && fullName != "" {
		first, last, found := strings.Cut(fullName, " ")
		lead.FirstName = first
		if found {
			lead.LastName = strings.TrimSpace(last)
		}
	}

	return lead
}

// ParseColumnMapping converts the wire form of a user-confirmed mapping,
// column index to field name, into a ColumnMapping. An empty field name
// marks the column as ignored.
func ParseColumnMapping(spec map[string]string) (ColumnMapping, error) {
	if len(spec) == 0 {
		return nil, nil
	}

	mapping := make(ColumnMapping, len(spec))
	for key, name := range spec {
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 {
			return nil, fmt.Errorf("invalid column index %q", key)
		}

		field := LeadField(name)
		switch field {
		case FieldIgnored:
			continue
		case FieldFirstName, FieldLastName, FieldFullName, FieldEmail, FieldPhone, FieldCompany, FieldJobTitle:
			mapping[index] = field
		default:
			return nil, fmt.Errorf("unknown lead field %q", name)
		}
	}

	if len(mapping) == 0 {
		return nil, nil
	}

	return mapping, nil
}

// HasContactColumn reports whether the mapping can ever produce a
// reachable lead. Imports without it are rejected up front.
func (m ColumnMapping) HasContactColumn() bool {
	for _, field := range m {
		if field == FieldEmail || field == FieldPhone {
			return true
		}
	}
	return false
}

func (m ColumnMapping) FieldFor(index int) string {
	return string(m[index])
}

// stripQuotes removes a single layer of wrapping quotes left behind by
// naive CSV exporters.
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
