package main

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const exportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Code}} Flight Information</title>
<style>
body { background: #0c0c0c; color: #f2f2f2; font-family: Menlo, Consolas, monospace; }
h1, h2 { text-align: center; font-weight: normal; }
table { border-collapse: collapse; margin: 0 auto; }
th, td { border: 1px solid #444; padding: 4px 10px; }
th { font-weight: bold; }
.left { text-align: left; }
.right { text-align: right; }
.flight { color: #3fc5c5; }
.departure-country { color: #c53fc5; }
.departure-time { color: #c5c53f; }
.arrival-country { color: #f2f2f2; }
.arrival-time { color: #7ff2f2; }
.temperature { color: #3f7fc5; }
.conditions { color: #8f3fc5; }
.status-cancelled { color: #c53f3f; }
.status-scheduled { color: #f2f2f2; }
.status-active { color: #c5c53f; }
footer { text-align: center; color: #888; margin-top: 1em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<h2>------Flight Information------</h2>
<table>
<thead>
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>
<td class="left flight">{{.FlightNumber}}</td>
<td class="left departure-country">{{.DepartureCountry}}</td>
<td class="right departure-time">{{.DepartureTime}}</td>
<td class="left arrival-country">{{.ArrivalCountry}}</td>
<td class="right arrival-time">{{.ArrivalTime}}</td>
<td class="left {{statusClass .Status}}">{{.Status}}</td>
<td class="right temperature">{{.Temperature}}</td>
<td class="right conditions">{{.Conditions}}</td>
</tr>
{{end}}</tbody>
</table>
<footer>Generated {{.Generated}}</footer>
</body>
</html>
`

var exportPage = template.Must(template.New("export").Funcs(template.FuncMap{
	"statusClass": statusClass,
}).Parse(exportTemplate))

// statusClass mirrors StatusColor for the HTML export
func statusClass(status FlightStatus) string {
	switch status {
	case StatusCancelled, StatusScheduled, StatusActive:
		return "status-" + string(status)
	}
	return ""
}

// HTMLExporter writes reports as static HTML documents
type HTMLExporter struct {
	dir    string
	now    func() time.Time
	logger *zap.Logger
}

// NewHTMLExporter creates an exporter writing into dir
func NewHTMLExporter(dir string, log *zap.Logger) *HTMLExporter {
	return &HTMLExporter{
		dir:    dir,
		now:    time.Now,
		logger: log.Named("exporter"),
	}
}

// ExportPath is where a report for the given airport code is written
func (e *HTMLExporter) ExportPath(code string) string {
	return filepath.Join(e.dir, code+" Flight Information.html")
}

// Export renders the report and writes it, returning the file path
func (e *HTMLExporter) Export(report Report) (string, error) {
	if report.DepartureIATA == "" {
		return "", fmt.Errorf("cannot export a report without flights")
	}

	data := struct {
		Code      string
		Title     string
		Header    []string
		Rows      []EnrichedRow
		Generated string
	}{
		Code:      report.DepartureIATA,
		Title:     airportTitle(report.Airport),
		Header:    tableHeader,
		Rows:      report.Rows,
		Generated: e.now().Format(time.RFC1123),
	}

	var buf bytes.Buffer
	if err := exportPage.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute export template: %w", err)
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := e.ExportPath(report.DepartureIATA)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	e.logger.Debug("Exported report",
		zap.String("path", path),
		zap.Int("rows", len(report.Rows)))

	return path, nil
}
