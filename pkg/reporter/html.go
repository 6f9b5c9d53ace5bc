package reporter

import (
	"html/template"
	"io"

	"revquiz/pkg/session"
)

type HTMLReporter struct {
	Writer io.Writer
	Title  string
}

func (r HTMLReporter) Report(report session.Report) error {
	title := r.Title
	if title == "" {
		title = "Revision Quiz Report"
	}

	data := struct {
		Title  string
		Report session.Report
	}{
		Title:  title,
		Report: report,
	}

	tpl := template.Must(template.New("report").Parse(htmlTemplate))
	return tpl.Execute(r.Writer, data)
}

const htmlTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 24px; }
    table { border-collapse: collapse; width: 100%; margin-top: 16px; }
    th, td { border: 1px solid #ddd; padding: 8px; }
    th { background: #f5f5f5; text-align: left; }
    .meta { margin-bottom: 12px; }
    .correct { color: #1a7f37; }
    .incorrect { color: #b42318; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <div class="meta">
    <div><strong>Level:</strong> {{ .Report.Level }}</div>
    <div><strong>Subject:</strong> {{ .Report.Subject }}</div>
    <div><strong>Filter:</strong> {{ .Report.Filter }}</div>
    <div><strong>Session:</strong> {{ .Report.SessionID }}</div>
  </div>
  <table>
    <tr><th>Topic</th><th>Question</th><th>Reply</th><th>Verdict</th><th>Method</th><th>Score</th></tr>
    {{ range .Report.Results }}
    <tr>
      <td>{{ .Question.Topic }}</td>
      <td>{{ .Question.Prompt }}</td>
      <td>{{ .Reply }}</td>
      {{ if .Match.Verdict }}<td class="correct">correct</td>{{ else }}<td class="incorrect">incorrect</td>{{ end }}
      <td>{{ .Match.Method }}</td>
      <td>{{ printf "%.2f" .Match.Score }}</td>
    </tr>
    {{ end }}
  </table>
</body>
</html>
`
