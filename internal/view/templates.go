package view

// pageTemplate is the html/template for the comparison page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}{{with .Selected}}: {{.Name}}{{end}}</title>
  <link rel="stylesheet" href="{{.AssetPrefix}}style.css{{with .BuildID}}?v={{.}}{{end}}">
</head>
<body data-static="{{.Static}}" data-livereload="{{.LiveReload}}" data-title="{{.Title}}">
  <div class="content">
    <header>
      <h1 class="header">{{.Title}}<span id="topic-suffix">{{with .Selected}}: {{.Name}}{{end}}</span></h1>
      <button class="modal-trigger" id="about-open" type="button" aria-label="About">?</button>
      <nav class="topics">
        {{- range .Nav}}
        <a class="topic{{if .Active}} selected{{end}}" href="{{.Href}}" data-topic="{{.ID}}">{{.Name}}</a>
        {{- end}}
      </nav>
    </header>
    {{- range .Details}}
    <section class="columns" id="topic-{{.ID}}" data-topic="{{.ID}}" data-name="{{.Name}}"{{if not .Active}} hidden{{end}}>
      {{- range .Columns}}
      <div class="column" data-side="{{.Side}}">
        <h2 class="header">{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noreferrer">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h2>
        <div class="metadata">
          {{- if .Keywords}}
          <div class="metadata-item keywords"><strong>Keywords: </strong>{{join .Keywords}}</div>
          {{- end}}
          {{- if .Excluded}}
          <div class="metadata-item excluded"><strong>Excluding: </strong>{{join .Excluded}}</div>
          {{- end}}
        </div>
        {{- range .Quotes}}
        <blockquote>{{range .Segments}}{{if .Match}}<mark class="keyword-match">{{.Content}}</mark>{{else}}{{.Content}}{{end}}{{end}}</blockquote>
        {{- end}}
      </div>
      {{- end}}
    </section>
    {{- end}}
    <dialog class="modal" id="about-dialog">
      <div class="modal-body">{{.About}}</div>
      <button class="modal-close" id="about-close" type="button">Close</button>
    </dialog>
  </div>
  <script src="{{.AssetPrefix}}script.js{{with .BuildID}}?v={{.}}{{end}}"></script>
</body>
</html>
`
