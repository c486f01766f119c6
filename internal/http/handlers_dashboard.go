package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"salesboard/internal/chart"
)

// rowView is one record prepared for the report table.
type rowView struct {
	Month    string
	Sales    string
	Expenses string
	Profit   string
	Loss     bool
}

// reportView holds everything the report partial renders.
type reportView struct {
	HasData       bool
	Rows          []rowView
	Chart         chart.BarChart
	TotalSales    string
	TotalExpenses string
	TotalProfit   string
	ProfitLoss    bool
}

// handleIndex renders the dashboard page shell.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded")
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	if err := s.templates.ExecuteTemplate(w, "index_page", nil); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleReport returns the report partial: monthly table, totals summary
// and the bar chart. Results are cached until the next import.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if resp := RequireMethod(r, http.MethodGet); resp != nil {
		resp.Write(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 7*time.Second)
	defer cancel()

	view, ok := s.reportCache.Get(reportCacheKey)
	if !ok {
		built, err := s.buildReportView(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "Failed building report", "error", err)
			InternalServerError("Unable to load report").Write(w)
			return
		}
		view = built
		s.reportCache.Set(reportCacheKey, view)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "report", view); err != nil {
		slog.ErrorContext(ctx, "Report template failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) buildReportView(ctx context.Context) (reportView, error) {
	records, err := s.lister.ListRecords(ctx)
	if err != nil {
		return reportView{}, err
	}

	totals, err := s.totals.ReadTotals(ctx)
	if err != nil {
		return reportView{}, err
	}

	rows := make([]rowView, 0, len(records))
	for _, rec := range records {
		profit := rec.Profit()
		rows = append(rows, rowView{
			Month:    rec.Month,
			Sales:    formatAmount(rec.Sales),
			Expenses: formatAmount(rec.Expenses),
			Profit:   formatAmount(profit),
			Loss:     profit < 0,
		})
	}

	return reportView{
		HasData:       len(records) > 0,
		Rows:          rows,
		Chart:         chart.Build(records),
		TotalSales:    formatAmount(totals.Sales),
		TotalExpenses: formatAmount(totals.Expenses),
		TotalProfit:   formatAmount(totals.Profit),
		ProfitLoss:    totals.Profit < 0,
	}, nil
}
