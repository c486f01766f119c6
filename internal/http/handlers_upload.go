package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"salesboard/internal/dataset"
)

// handleImportDataset replaces the stored dataset with an uploaded CSV.
// A single malformed row rejects the whole upload; the previous dataset
// stays untouched.
func (s *Server) handleImportDataset(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}

	upload, errResp := ExtractDatasetUpload(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}
	defer upload.Close()

	records, err := dataset.Parse(upload)
	if err != nil {
		slog.WarnContext(r.Context(), "Rejected malformed dataset", "error", err)
		UnprocessableEntityError("Invalid CSV: " + err.Error()).
			TriggerNotification(NotificationError, "Import failed: "+err.Error(), 5000).
			Write(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rows, err := s.writer.ReplaceDataset(ctx, records)
	if err != nil {
		slog.ErrorContext(ctx, "Dataset replace failed", "error", err)
		InternalServerError("Unable to store dataset").
			TriggerNotification(NotificationError, "Import failed", 5000).
			Write(w)
		return
	}

	s.invalidateReport()
	slog.InfoContext(ctx, "Dataset imported", "rows", rows)

	NewHTMXResponse().
		TriggerDatasetImported(rows).
		TriggerNotification(NotificationSuccess, "Dataset imported", 3000).
		BodyHTML(`<div class="success">Imported</div>`).
		Write(w)
}
