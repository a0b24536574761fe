package api

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/researchflow/config"
	"github.com/spacesedan/researchflow/internal/dispatch"
	"github.com/spacesedan/researchflow/internal/models"
	"github.com/spacesedan/researchflow/internal/prompts"
	"github.com/spacesedan/researchflow/internal/render"
)

const DASHBOARD_TEMPLATE = "dashboard"

type dashboardPage struct {
	Keywords  string
	Limit     int
	MinLimit  int
	MaxLimit  int
	Error     string
	Report    *models.ResearchReport
	Structure []string
}

func newDashboardPage() dashboardPage {
	return dashboardPage{
		Limit:     config.DEFAULT_LIMIT,
		MinLimit:  config.MIN_LIMIT,
		MaxLimit:  config.MAX_LIMIT,
		Structure: prompts.LinkedInStructure,
	}
}

// DashboardTemplate parses the dashboard page with the markdown helper.
func DashboardTemplate() *template.Template {
	return template.Must(template.New(DASHBOARD_TEMPLATE).Funcs(template.FuncMap{
		"markdown": render.HTML,
		"inc":      func(i int) int { return i + 1 },
		"isTitle":  func(s string) bool { return s != "" && s != models.MISSING_RESULT_TITLE },
	}).Parse(dashboardHTML))
}

type DashboardHandler struct {
	svc Researcher
}

func NewDashboardHandler(svc Researcher) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Index handles GET /.
func (h *DashboardHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, DASHBOARD_TEMPLATE, newDashboardPage())
}

// SubmitResearch handles the POST /research form.
func (h *DashboardHandler) SubmitResearch(c *gin.Context) {
	page := newDashboardPage()
	page.Keywords = c.PostForm("keywords")
	if raw := c.PostForm("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			page.Limit = config.ClampLimit(limit)
		}
	}

	keywords, err := dispatch.ParseKeywords(page.Keywords)
	if err != nil {
		page.Error = err.Error()
		c.HTML(http.StatusBadRequest, DASHBOARD_TEMPLATE, page)
		return
	}

	report, err := h.svc.Run(c.Request.Context(), keywords, page.Limit)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dispatch.ErrNoKeywords) {
			status = http.StatusBadRequest
		} else {
			slog.Error("[Dashboard] Research run failed", slog.String("error", err.Error()))
		}
		page.Error = err.Error()
		c.HTML(status, DASHBOARD_TEMPLATE, page)
		return
	}

	page.Report = &report
	c.HTML(http.StatusOK, DASHBOARD_TEMPLATE, page)
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Research Agent</title>
<style>
body { font-family: sans-serif; max-width: 1100px; margin: 2rem auto; padding: 0 1rem; }
.error { color: #b00020; }
.warning { color: #8a6d00; }
.columns { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1rem; }
.post { display: grid; grid-template-columns: 2fr 1fr; gap: 1rem; }
article { border-top: 1px solid #ddd; padding-top: 1rem; }
</style>
</head>
<body>
<h1>Research Agent</h1>
<p>Enter keywords to search for information and news, and generate content ideas.</p>

<form method="post" action="/research">
  <label for="keywords">Enter keywords (one per line)</label><br>
  <textarea id="keywords" name="keywords" rows="5" cols="60">{{.Keywords}}</textarea><br>
  <label for="limit">Maximum results: {{.Limit}}</label>
  <input id="limit" name="limit" type="range" min="{{.MinLimit}}" max="{{.MaxLimit}}" value="{{.Limit}}"><br>
  <button type="submit">Start Research</button>
</form>

{{if .Error}}<p class="error">{{.Error}}</p>{{end}}

{{with .Report}}
{{range .Warnings}}<p class="warning">{{.}}</p>{{end}}
<p><a href="/api/v1/reports/{{.ID}}/download">Download report (markdown)</a></p>

<h2>Search Results</h2>
{{if not .SearchResults}}<p class="warning">No results found.</p>{{end}}
{{range $i, $r := .SearchResults}}
<section>
  <h3>Result {{inc $i}}</h3>
  {{if isTitle $r.Title}}<p>{{$r.Title}}</p>{{end}}
  {{if $r.Link}}<p><a href="{{$r.Link}}">{{$r.Link}}</a></p>{{end}}
  {{if $r.Snippet}}{{markdown $r.Snippet}}{{end}}
</section>
{{end}}

<h2>Content Ideas</h2>
{{markdown .ContentIdeas}}

<h2>News Articles</h2>
{{if not .Articles}}<p class="warning">No news articles found.</p>{{end}}
{{range $i, $a := .Articles}}
<article>
  <h3>Article {{inc $i}}: {{$a.Article.Title}}</h3>
  {{with $a.Sentiment}}<p>Sentiment: {{.Label}} ({{printf "%.2f" .Score}})</p>{{end}}

  <h4>Social Media Posts</h4>
  <div class="columns">
  {{range $a.SocialPosts.Channels}}
    <div><h5>{{.Label}}</h5>{{markdown .Text}}</div>
  {{end}}
  </div>

  <h4>Content Ideas From This Article</h4>
  {{markdown $a.ContentIdeas}}

  <h4>LinkedIn Posts</h4>
  <div class="post">
    <div>{{markdown $a.MainLinkedIn.Text}}</div>
    <div><strong>Post Structure:</strong><ul>{{range $.Structure}}<li>{{.}}</li>{{end}}</ul></div>
  </div>
  {{range $j, $p := $a.AltLinkedInPost}}
  <h5>Alternative {{inc $j}}: {{$p.Angle}}</h5>
  <div class="post">
    <div>{{markdown $p.Text}}</div>
    <div><strong>Post Structure:</strong><ul>{{range $.Structure}}<li>{{.}}</li>{{end}}</ul></div>
  </div>
  {{end}}
</article>
{{end}}
{{end}}

<hr>
<p>Built with Go, gin and Groq</p>
</body>
</html>`
