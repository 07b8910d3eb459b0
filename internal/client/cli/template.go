package cli

import (
	"fmt"
	"text/template"
)

var funcs = template.FuncMap{
	"percent": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v*100)
	},
}

const statsTemplate = `
=== Your Progress ===

Level:          {{.Level}}
Total XP:       {{.TotalXP}}
Current streak: {{.CurrentStreak}} days
Longest streak: {{.LongestStreak}} days
{{- if .BonusTasks}}
Bonus tasks:    {{.BonusTasks}}
{{- end}}
{{- if .PenaltyTasks}}
Penalty tasks:  {{.PenaltyTasks}}
{{- end}}
`

const statusTemplate = `
=== Sync Status ===

Connection: {{if .Offline}}offline{{else}}online{{end}}
Last sync:  {{if .LastSync.IsZero}}never{{else}}{{.LastSync.Format "2006-01-02 15:04:05"}}{{end}}

Operations: {{len .Pending}} pending, {{len .Failed}} failed
{{- range .Failed}}
  ✗ {{.Type}} {{.Endpoint}}: {{.LastError}}
{{- end}}
Queue:      {{len .Queued}} queued, {{.Progress.Completed}} completed, {{.Progress.Failed}} failed
{{- range .Queued}}
  • [{{.Priority}}] {{.Mutation.Method}} {{.Mutation.Endpoint}} (retries: {{.RetryCount}})
{{- end}}
Cache:      {{.Cache.Size}} entries, hit rate {{percent .HitRate}}, {{.Cache.Evictions}} evictions
`

var (
	statsTmpl  = template.Must(template.New("stats").Funcs(funcs).Parse(statsTemplate))
	statusTmpl = template.Must(template.New("status").Funcs(funcs).Parse(statusTemplate))
)
