// internal/services/sheets_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/rubingroup/rubin-backend/internal/config"
	"github.com/rubingroup/rubin-backend/internal/models"
)

// RegistrationSink receives accepted registration submissions. The hosted
// implementation appends to a spreadsheet; tests substitute a recorder.
type RegistrationSink interface {
	AppendRegistration(ctx context.Context, req *models.RegistrationRequest) error
}

// SheetsService appends one row per registration to a fixed-range tab of
// the intake spreadsheet. There is no idempotency key: a client retry
// after a timeout can produce a duplicate row.
type SheetsService struct {
	svc           *sheets.Service
	spreadsheetID string
	appendRange   string
}

func NewSheetsService(ctx context.Context, cfg config.SheetsConfig) (*SheetsService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsService{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		appendRange:   cfg.AppendRange,
	}, nil
}

func (s *SheetsService) AppendRegistration(ctx context.Context, req *models.RegistrationRequest) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{req.Row(time.Now())},
	}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.appendRange, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append registration row: %w", err)
	}
	return nil
}
