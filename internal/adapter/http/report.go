package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
)

// handleCampaignReport exports the session's campaign records as an xlsx
// workbook.
func (h *Handler) handleCampaignReport(w http.ResponseWriter, r *http.Request) {
	recs := h.sim.List(r.Context(), sessionID(r))

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Campaigns"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Headline", "Platform", "Status", "Budget", "Ad Spend", "Impressions", "Clicks", "Duration (days)", "Started"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	for row, rec := range recs {
		started := ""
		if !rec.StartDate.IsZero() {
			started = rec.StartDate.Format(time.RFC3339)
		}
		values := []any{
			rec.Headline,
			rec.Platform,
			string(rec.Status),
			rec.Budget,
			rec.AdSpend,
			rec.Impressions,
			rec.Clicks,
			rec.DurationDays,
			started,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("campaigns_%d.xlsx", time.Now().Unix())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(w); err != nil {
		h.logger.Error("write report error", slog.Any("error", err))
	}
}
