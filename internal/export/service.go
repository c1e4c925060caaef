package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/monailabs/monai/internal/repository"
)

// Service is a tiny façade over the audit repository that produces XLSX
// bytes for dashboard exports.
type Service struct {
	audit  repository.QueryLogRepository
	logger *slog.Logger
}

func NewService(audit repository.QueryLogRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{audit: audit, logger: logger}
}

// ExportAuditLogXLSX returns an XLSX workbook (as bytes) with the audit
// entries for the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all entries.
func (s *Service) ExportAuditLogXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	entries, err := s.audit.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "AuditLog"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Received At",
		"Job ID",
		"Result",
		"Explanation",
		"Attributes",
		"History Count",
		"IP Address",
		"User Agent",
		"Referer",
		"Fingerprint",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range entries {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		attrs := ""
		if len(e.Attributes) > 0 {
			if b, err := json.Marshal(e.Attributes); err == nil {
				attrs = string(b)
			}
		}

		write(1, e.ReceivedAt.Format(time.RFC3339))
		write(2, e.JobID)
		write(3, e.Result)
		write(4, truncate(e.Explanation, 500))
		write(5, attrs)
		write(6, e.HistoryCount)
		write(7, e.IPAddress)
		write(8, truncate(e.UserAgent, 200))
		write(9, truncate(e.Referer, 200))
		write(10, e.Fingerprint)
		row++
	}

	// Delete excelize's default sheet if it's not ours.
	if defIdx, _ := f.GetSheetIndex("Sheet1"); defIdx != -1 && sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.audit_log",
		"rows", len(entries),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// truncate cuts s to at most max runes, never splitting a UTF-8
// sequence.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
