package transport

import (
	"html/template"
	"io"
	"strings"

	"activityBoardWs/internal/board/domain"
)

// The board page is a full tear-down render of the current snapshot: cards,
// selector options, sign-up form, and the notice region. The in-browser script
// rebuilds the same regions from websocket snapshots.
const boardTemplateText = `{{define "card"}}<div class="activity-card" data-activity="{{.Name}}">
  <h4>{{.Name}}</h4>
  <p>{{.Description}}</p>
  <p><strong>Schedule:</strong> {{.Schedule}}</p>
  <p><strong>Availability:</strong> {{.SpotsLeft}} spots left</p>
  <div class="participants-container">
    <h5>Participants:</h5>
    <ul class="participants-list">
{{- range .Roster}}
{{- if .Placeholder}}
      <li class="placeholder">{{.Email}}</li>
{{- else}}
      <li><span class="participant-badge">{{.Initials}}</span><span class="participant-email">{{.Email}}</span><button type="button" class="delete-participant" data-activity="{{$.Name}}" data-email="{{.Email}}" title="Unregister">&times;</button></li>
{{- end}}
{{- end}}
    </ul>
  </div>
</div>
{{end}}{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Activity Sign-Up Board</title>
  <link rel="stylesheet" href="/static/styles.css">
</head>
<body>
  <header>
    <h1>Activity Sign-Up Board</h1>
  </header>
  <main>
    <section id="activities-container">
      <h3>Available Activities</h3>
      <div id="activities-list">
{{- if .LoadError}}
        <p class="error">{{.LoadError}}</p>
{{- else}}
{{- range .Cards}}
{{template "card" .}}
{{- end}}
{{- end}}
      </div>
    </section>
    <section id="signup-container">
      <h3>Sign Up for an Activity</h3>
      <form id="signup-form" method="post" action="/board/signup">
        <label for="email">Student Email:</label>
        <input type="email" id="email" name="email" required>
        <label for="activity">Select Activity:</label>
        <select id="activity" name="activity" required>
          <option value="">-- Select an activity --</option>
{{- range .Names}}
          <option value="{{.}}">{{.}}</option>
{{- end}}
        </select>
        <button type="submit">Sign Up</button>
      </form>
      <div id="message" class="{{if .Notice}}{{.Notice.Kind}}{{else}}hidden{{end}}">{{if .Notice}}{{.Notice.Text}}{{end}}</div>
    </section>
  </main>
  <script src="/static/app.js"></script>
</body>
</html>
{{end}}`

var boardTemplate = template.Must(template.New("board").Parse(boardTemplateText))

type activityCard struct {
	Name        string
	Description string
	Schedule    string
	SpotsLeft   int
	Roster      []domain.RosterEntry
}

type boardView struct {
	Cards     []activityCard
	Names     []string
	Notice    *domain.Notice
	LoadError string
}

func newActivityCard(name string, details domain.Activity) activityCard {
	return activityCard{
		Name:        name,
		Description: details.Description,
		Schedule:    details.Schedule,
		SpotsLeft:   details.SpotsLeft(),
		Roster:      details.Roster(),
	}
}

// RenderActivityCard maps one catalog entry to its rendered card fragment.
func RenderActivityCard(name string, details domain.Activity) (string, error) {
	var sb strings.Builder
	if err := boardTemplate.ExecuteTemplate(&sb, "card", newActivityCard(name, details)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderBoardPage writes the full board page for the given snapshot. A nil
// snapshot renders the static catalog failure message instead of cards.
func RenderBoardPage(w io.Writer, snapshot *domain.CatalogSnapshot, notice *domain.Notice) error {
	view := boardView{Notice: notice}
	if snapshot == nil {
		view.LoadError = "Failed to load activities. Please try again later."
	} else {
		view.Names = snapshot.Catalog.Names()
		view.Cards = make([]activityCard, 0, len(view.Names))
		for _, name := range view.Names {
			view.Cards = append(view.Cards, newActivityCard(name, snapshot.Catalog[name]))
		}
	}
	return boardTemplate.ExecuteTemplate(w, "page", view)
}
