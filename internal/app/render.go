package app

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.autols.dev/autols/pkg/domain"
	"go.autols.dev/autols/pkg/engine"
)

// reportRow is the machine readable form of one decision.
type reportRow struct {
	Server  string `json:"server"`
	Outcome string `json:"outcome"`
	Command string `json:"command,omitempty"`
	Path    string `json:"path,omitempty"`
	Error   string `json:"error,omitempty"`
}

// reportDoc is the machine readable form of a detection report.
type reportDoc struct {
	ScannedAt time.Time   `json:"scanned_at"`
	FromCache bool        `json:"from_cache"`
	Enabled   int         `json:"enabled"`
	Servers   []reportRow `json:"servers"`
}

func (a *App) renderReport(report *engine.Report, asJSON bool) error {
	if asJSON {
		return a.renderReportJSON(report)
	}
	a.renderReportTable(report)
	return nil
}

func (a *App) renderReportJSON(report *engine.Report) error {
	doc := reportDoc{
		ScannedAt: report.Timestamp.UTC(),
		FromCache: report.FromCache,
		Enabled:   len(report.Enabled()),
		Servers:   make([]reportRow, 0, len(report.Decisions)),
	}
	for _, decision := range report.Decisions {
		row := reportRow{
			Server:  decision.Server.String(),
			Outcome: string(decision.Outcome),
			Command: decision.Command,
			Path:    decision.Path,
		}
		if decision.Err != nil {
			row.Error = decision.Err.Error()
		}
		doc.Servers = append(doc.Servers, row)
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func (a *App) renderReportTable(report *engine.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(a.out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Server", "Status", "Command", "Detail"})
	for _, decision := range report.Decisions {
		detail := decision.Path
		if decision.Err != nil {
			detail = decision.Err.Error()
		}
		t.AppendRow(table.Row{
			decision.Server.String(),
			string(decision.Outcome),
			decision.Command,
			detail,
		})
	}
	t.Render()

	source := "registry scan"
	if report.FromCache {
		source = "cache"
	}
	fmt.Fprintf(a.out, "%d servers, %d enabled (source: %s)\n",
		len(report.Decisions), len(report.Enabled()), source)
}

func (a *App) renderCacheStatus(options domain.Options, record domain.CacheRecord, ok bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(a.out)
	t.SetStyle(table.StyleRounded)
	t.AppendRow(table.Row{"Path", options.Cache.Path})
	t.AppendRow(table.Row{"Enabled", options.Cache.Enable})
	t.AppendRow(table.Row{"TTL", options.Cache.TTL.String()})

	if !ok {
		t.AppendRow(table.Row{"Record", "none"})
		t.Render()
		return nil
	}

	state := "valid"
	if record.Expired(time.Now(), options.Cache.TTL) {
		state = "expired"
	}
	ids := make([]string, 0, len(record.Servers))
	for _, id := range record.Servers {
		ids = append(ids, id.String())
	}

	t.AppendRow(table.Row{"Written", record.Timestamp.Format(time.RFC3339)})
	t.AppendRow(table.Row{"Age", time.Since(record.Timestamp).Round(time.Second).String()})
	t.AppendRow(table.Row{"State", state})
	t.AppendRow(table.Row{"Servers", fmt.Sprintf("%d (%s)", len(ids), strings.Join(ids, ", "))})
	t.Render()
	return nil
}
