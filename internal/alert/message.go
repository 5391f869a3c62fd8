package alert

import (
	"bytes"
	"domainfinder/pkg/domain"
	"fmt"
	"html/template"

	"github.com/go-faster/jx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// webhookSections is the number of domains listed in a webhook message.
const webhookSections = 5

var printer = message.NewPrinter(language.English) //nolint: gochecknoglobals

func formatValue(v float64) string {
	return printer.Sprintf("$%.0f", v)
}

func formatROI(v float64) string {
	return printer.Sprintf("%.0f%%", v)
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

var emailTemplate = template.Must(template.New("email").Funcs(template.FuncMap{ //nolint: gochecknoglobals
	"rank":  func(i int) int { return i + 1 },
	"score": formatScore,
	"value": formatValue,
	"roi":   formatROI,
}).Parse(`<html>
<head>
<style>
body { font-family: Arial, sans-serif; color: #333; }
.container { max-width: 900px; margin: 0 auto; padding: 20px; }
h1 { color: #2196F3; }
table { width: 100%; border-collapse: collapse; }
th { background: #2196F3; color: white; padding: 12px; text-align: left; }
td { padding: 12px; border-bottom: 1px solid #ddd; }
.footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="container">
<h1>Domain Finder Pro - Daily Opportunities</h1>
<p>Here are today's top {{len .}} domain opportunities matching your criteria:</p>
<table>
<thead><tr><th>#</th><th>Domain</th><th>Score</th><th>Est. Value</th><th>ROI</th><th>Backlinks</th></tr></thead>
<tbody>
{{- range $i, $d := .}}
<tr><td>{{rank $i}}</td><td><strong>{{$d.Key.String}}</strong></td><td>{{score $d.Score.TotalScore}} ({{$d.Valuation.Grade}})</td><td>{{value $d.Valuation.PriceHigh}}</td><td>{{roi $d.Valuation.ROIPercent}}</td><td>{{$d.Enrichment.BacklinkCount}}</td></tr>
{{- end}}
</tbody>
</table>
<div class="footer">
<p>Scores are based on domain age, backlinks, authority, brandability, keywords and traffic.</p>
</div>
</div>
</body>
</html>
`))

// EmailSubject is the subject line of a digest of n domains.
func EmailSubject(n int) string {
	return fmt.Sprintf("Domain Finder Pro - Top %d Opportunities", n)
}

// EmailHTML renders the digest table of records.
func EmailHTML(records []domain.DomainRecord) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, records); err != nil {
		return "", fmt.Errorf("could not render email: %w", err)
	}

	return buf.String(), nil
}

// WebhookPayload builds a Slack block kit message: a header followed by one
// section per domain for the first few records.
func WebhookPayload(records []domain.DomainRecord) []byte {
	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("blocks")
	e.ArrStart()

	e.ObjStart()
	e.FieldStart("type")
	e.Str("header")
	e.FieldStart("text")
	e.ObjStart()
	e.FieldStart("type")
	e.Str("plain_text")
	e.FieldStart("text")
	e.Str(fmt.Sprintf("Top %d Domain Opportunities", len(records)))
	e.ObjEnd()
	e.ObjEnd()

	for _, rec := range records[:min(len(records), webhookSections)] {
		e.ObjStart()
		e.FieldStart("type")
		e.Str("section")
		e.FieldStart("text")
		e.ObjStart()
		e.FieldStart("type")
		e.Str("mrkdwn")
		e.FieldStart("text")
		e.Str(fmt.Sprintf("*%s*\nScore: %s (Grade %s) | Value: %s | ROI: %s",
			rec.Key, formatScore(rec.Score.TotalScore), rec.Valuation.Grade,
			formatValue(rec.Valuation.PriceHigh), formatROI(rec.Valuation.ROIPercent)))
		e.ObjEnd()
		e.ObjEnd()
	}

	e.ArrEnd()
	e.ObjEnd()

	return e.Bytes()
}
