package domain

import "context"

// Transcript export formats
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"
)

// ExportUsecase produces downloadable conversation transcripts for the
// admin console. The returned filename carries the session id and a
// timestamp.
type ExportUsecase interface {
	ExportTranscript(ctx context.Context, sessionID, format string) ([]byte, string, error)
}
