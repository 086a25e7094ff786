package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/pkg/apperror"
)

var transcriptColumns = []string{"TIMESTAMP (UTC)", "ROLE", "MESSAGE"}

type exportUsecase struct {
	messages domain.ChatRepository
}

func NewExportUsecase(messages domain.ChatRepository) domain.ExportUsecase {
	return &exportUsecase{messages: messages}
}

func (u *exportUsecase) ExportTranscript(ctx context.Context, sessionID, format string) ([]byte, string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, "", domain.ErrEmptySessionID
	}

	messages, err := u.messages.ListBySession(ctx, sessionID, 0)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch transcript: %w", err)
	}
	if len(messages) == 0 {
		return nil, "", apperror.NotFound("No messages for this session")
	}

	switch format {
	case domain.ExportFormatCSV:
		return exportTranscriptCSV(sessionID, messages)
	case domain.ExportFormatXLSX, "":
		return exportTranscriptExcel(sessionID, messages)
	default:
		return nil, "", apperror.BadRequest(fmt.Sprintf("unsupported export format: %s", format))
	}
}

func exportTranscriptExcel(sessionID string, messages []domain.ChatMessage) ([]byte, string, error) {
	f := excelize.NewFile()
	sheetName := "Transcript"
	f.SetSheetName("Sheet1", sheetName)

	for i, header := range transcriptColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(transcriptColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, msg := range messages {
		values := []any{
			msg.CreatedAt.UTC().Format(time.RFC3339),
			strings.ToUpper(msg.Role),
			msg.Content,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 24)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 80)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("transcript_%s_%s.xlsx", sessionID, time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func exportTranscriptCSV(sessionID string, messages []domain.ChatMessage) ([]byte, string, error) {
	var buf bytes.Buffer
	buf.WriteString("timestamp,role,message\n")

	for _, msg := range messages {
		values := []string{
			msg.CreatedAt.UTC().Format(time.RFC3339),
			msg.Role,
			msg.Content,
		}
		for i, v := range values {
			if strings.ContainsAny(v, ",\"\n") {
				v = "\"" + strings.ReplaceAll(v, "\"", "\"\"") + "\""
			}
			values[i] = v
		}
		buf.WriteString(strings.Join(values, ",") + "\n")
	}

	filename := fmt.Sprintf("transcript_%s_%s.csv", sessionID, time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
