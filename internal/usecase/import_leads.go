package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const previewRowLimit = 5

type ImportLeadsUseCase struct {
	CampaignRepo CampaignRepositoryInterface
	LeadRepo     LeadRepositoryInterface
	ProgressRepo ProgressRepositoryInterface
	HistoryRepo  ImportHistoryRepositoryInterface
}

func NewImportLeadsUseCase(
	campaignRepo CampaignRepositoryInterface,
	leadRepo LeadRepositoryInterface,
	progressRepo ProgressRepositoryInterface,
	historyRepo ImportHistoryRepositoryInterface,
) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{
		CampaignRepo: campaignRepo,
		LeadRepo:     leadRepo,
		ProgressRepo: progressRepo,
		HistoryRepo:  historyRepo,
	}
}

// Preview parses the file, infers the column mapping and returns the first
// rows so the user can confirm before importing. Nothing is written.
func (uc *ImportLeadsUseCase) Preview(ctx context.Context, userID, campaignID, fileName string, data []byte) (*PreviewOutput, error) {
	if _, err := uc.CampaignRepo.FindByID(ctx, userID, campaignID); err != nil {
		return nil, NewDomainError("CAMPAIGN_NOT_FOUND", "campaign not found")
	}

	header, records, err := parseCSV(data)
	if err != nil {
		return nil, NewDomainError("INVALID_CSV", err.Error())
	}

	mapping := InferColumnMapping(header)

	out := &PreviewOutput{
		FileName:  fileName,
		TotalRows: len(records),
	}

	for i, h := range header {
		out.Columns = append(out.Columns, PreviewColumn{
			Index:  i,
			Header: strings.TrimSpace(stripQuotes(h)),
			Field:  mapping.FieldFor(i),
		})
	}

	if !mapping.HasContactColumn() {
		out.Warnings = append(out.Warnings, "no email or phone column detected; import will be rejected")
	}

	for i, record := range records {
		if i >= previewRowLimit {
			break
		}
		out.Rows = append(out.Rows, ApplyMapping(record, mapping))
	}

	return out, nil
}

// Execute runs the full pipeline: map, validate, dedupe, insert, seed the
// sequence cursors, and record the import in history. Valid rows land even
// when other rows are rejected.
func (uc *ImportLeadsUseCase) Execute(ctx context.Context, input ImportLeadsInput) (*ImportLeadsOutput, error) {
	if _, err := uc.CampaignRepo.FindByID(ctx, input.UserID, input.CampaignID); err != nil {
		return nil, NewDomainError("CAMPAIGN_NOT_FOUND", "campaign not found")
	}

	header, records, err := parseCSV(input.Data)
	if err != nil {
		return nil, NewDomainError("INVALID_CSV", err.Error())
	}

	mapping := input.Mapping
	if mapping == nil {
		mapping = InferColumnMapping(header)
	}
	if !mapping.HasContactColumn() {
		return nil, NewDomainError("NO_CONTACT_COLUMN", "csv has no email or phone column")
	}

	history := entity.NewImportHistory(input.CampaignID, input.UserID, input.FileName)
	history.TotalRows = len(records)

	out := &ImportLeadsOutput{
		ImportID:  history.ID,
		TotalRows: len(records),
	}

	// Collect candidate contact keys first so existing duplicates are one
	// query per kind. Phone only matters as a key when the row has no email.
	var emails, phones []string
	parsed := make([]ParsedLead, len(records))
	for i, record := range records {
		parsed[i] = ApplyMapping(record, mapping)
		if parsed[i].Email != "" {
			emails = append(emails, parsed[i].Email)
		} else if parsed[i].Phone != "" {
			phones = append(phones, NormalizePhone(parsed[i].Phone))
		}
	}

	existing, err := uc.LeadRepo.ExistingEmails(ctx, input.CampaignID, emails)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	existingPhones := map[string]bool{}
	if len(phones) > 0 {
		existingPhones, err = uc.LeadRepo.ExistingPhones(ctx, input.CampaignID, phones)
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
	}

	seenEmails := make(map[string]bool)
	seenPhones := make(map[string]bool)
	var leads []*entity.UploadedLead

	for i, lead := range parsed {
		rowNum := i + 2 // 1-based plus the header row

		if verrs := ValidateParsedLead(rowNum, lead); len(verrs) > 0 {
			out.InvalidRows++
			for _, ve := range verrs {
				out.RowErrors = append(out.RowErrors, ve.Error())
			}
			continue
		}

		// Dedupe inside the file, then against the campaign.
		if lead.Email != "" {
			if seenEmails[lead.Email] || existing[lead.Email] {
				out.SkippedRows++
				continue
			}
			seenEmails[lead.Email] = true
		} else {
			normalized := NormalizePhone(lead.Phone)
			if seenPhones[normalized] || existingPhones[normalized] {
				out.SkippedRows++
				continue
			}
			seenPhones[normalized] = true
		}

		l := entity.NewUploadedLead(input.CampaignID, input.UserID)
		l.FirstName = lead.FirstName
		l.LastName = lead.LastName
		l.Email = lead.Email
		l.Phone = lead.Phone
		l.Company = lead.Company
		l.JobTitle = lead.JobTitle
		l.SourceFile = input.FileName
		leads = append(leads, l)
	}

	if err := uc.LeadRepo.CreateBatch(ctx, leads); err != nil {
		history.Status = entity.ImportStatusFailed
		if herr := uc.HistoryRepo.Create(ctx, history); herr != nil {
			log.Printf("[IMPORT] failed to record failed import: %v", herr)
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: fmt.Sprintf("inserting leads: %v", err)}
	}

	// Seed a sequence cursor per imported lead.
	progress := make([]*entity.SequenceProgress, 0, len(leads))
	for _, l := range leads {
		progress = append(progress, entity.NewSequenceProgress(l.ID, input.CampaignID))
	}
	if err := uc.ProgressRepo.CreateBatch(ctx, progress); err != nil {
		// Leads are in; a missing cursor is recoverable, so don't fail the import.
		log.Printf("[IMPORT] seeding sequence progress failed: %v", err)
	}

	out.ImportedRows = len(leads)
	out.Status = entity.ImportStatusCompleted
	if out.InvalidRows > 0 || out.SkippedRows > 0 {
		out.Status = entity.ImportStatusPartial
	}

	history.ImportedRows = out.ImportedRows
	history.SkippedRows = out.SkippedRows
	history.InvalidRows = out.InvalidRows
	history.Status = out.Status
	if err := uc.HistoryRepo.Create(ctx, history); err != nil {
		log.Printf("[IMPORT] recording import history failed: %v", err)
	}

	log.Printf("[IMPORT] campaign=%s file=%s imported=%d skipped=%d invalid=%d",
		input.CampaignID, input.FileName, out.ImportedRows, out.SkippedRows, out.InvalidRows)

	return out, nil
}

// parseCSV reads the whole file, tolerating ragged rows and a UTF-8 BOM.
// Returns header and data records separately.
func parseCSV(data []byte) ([]string, [][]string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // exporters disagree on trailing commas
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("csv file is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv header: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading csv row: %w", err)
		}
		// Skip fully blank lines.
		blank := true
		for _, v := range record {
			if strings.TrimSpace(v) != "" {
				blank = false
				break
			}
		}
		if !blank {
			records = append(records, record)
		}
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv file has a header but no rows")
	}

	return header, records, nil
}
