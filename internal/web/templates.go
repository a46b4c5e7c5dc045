package web

import "html/template"

// pageTemplates holds every page of the UI. Pages share the "head" and
// "nav" blocks; no external assets are required.
var pageTemplates = func() *template.Template {
	t := template.New("pages")
	for _, src := range []string{sharedTpl, homeTpl, projectsTpl, uploadTpl, aboutTpl} {
		t = template.Must(t.Parse(src))
	}
	return t
}()

const sharedTpl = `{{define "head"}}<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>foliod</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;max-width:1100px;margin:0 auto;padding:1rem}
nav{display:flex;gap:12px;margin-bottom:1rem;border-bottom:1px solid #ddd;padding-bottom:8px}
nav a{text-decoration:none;color:#444;padding:4px 10px;border-radius:6px}
nav a.active{background:#eef5ff;color:#0b57d0;font-weight:600}
.panel{border:1px solid #ddd;border-radius:8px;padding:12px;margin-bottom:12px}
.card{display:flex;gap:14px;align-items:flex-start}
.card img{width:120px;height:90px;object-fit:cover;border-radius:6px}
.card .placeholder{width:120px;height:90px;display:flex;align-items:center;justify-content:center;font-size:2rem;background:#f6f6f6;border-radius:6px}
.pills{display:flex;gap:8px;flex-wrap:wrap;margin-bottom:12px}
.pills a{padding:4px 12px;border:1px solid #ddd;border-radius:999px;text-decoration:none;color:#444}
.pills a.selected{background:#eef5ff;border-color:#0b57d0;color:#0b57d0}
.tabs{display:flex;gap:4px;margin:12px 0;border-bottom:1px solid #ddd}
.tabs a{padding:6px 14px;text-decoration:none;color:#444;border-radius:6px 6px 0 0}
.tabs a.selected{background:#eef5ff;color:#0b57d0;font-weight:600}
table{border-collapse:collapse;margin:8px 0}
th,td{border:1px solid #ddd;padding:4px 10px;text-align:left;font-size:.9rem}
.bar{background:#0b57d0;height:14px;border-radius:3px}
.histrow{display:grid;grid-template-columns:160px 1fr 48px;gap:8px;align-items:center;font-size:.85rem}
.muted,small{color:#666}
.error{color:#b00020}
.ok{color:#0a7d33}
iframe{width:100%;height:800px;border:1px solid #ddd;border-radius:6px}
video{max-width:100%}
button{padding:6px 14px;border-radius:6px;border:1px solid #0b57d0;background:#eef5ff;color:#0b57d0;cursor:pointer}
input[type=text]{padding:6px;border:1px solid #ddd;border-radius:6px;min-width:320px}
</style>
{{end}}

{{define "nav"}}<nav>
  <a href="/"{{if eq . "home"}} class="active"{{end}}>Home</a>
  <a href="/projects"{{if eq . "projects"}} class="active"{{end}}>Projects</a>
  <a href="/upload"{{if eq . "upload"}} class="active"{{end}}>Upload</a>
  <a href="/about"{{if eq . "about"}} class="active"{{end}}>About</a>
</nav>{{end}}`

const homeTpl = `{{define "home"}}{{template "head"}}
{{template "nav" .Active}}
<h1>Data Analysis Portfolio</h1>
<p>Explore datasets, notebooks, analyses, and dashboards.</p>
{{if .Empty}}
  <p class="muted">No projects found.</p>
{{else}}
  {{range .Groups}}
    {{if .Label}}<h2>{{.Label}}{{if .Highlight}} <small>featured</small>{{end}}</h2>{{end}}
    {{range .Cards}}
    <div class="panel card">
      {{if .PreviewURL}}<img src="{{.PreviewURL}}" alt="preview">{{else}}<div class="placeholder">&#128450;</div>{{end}}
      <div>
        <h3>{{.Title}}</h3>
        <p>{{.Description}}</p>
        <form method="post" action="/open">
          <input type="hidden" name="category" value="{{.Category}}">
          <input type="hidden" name="project" value="{{.Name}}">
          <button type="submit">Open {{.Name}}</button>
        </form>
      </div>
    </div>
    {{end}}
  {{end}}
{{end}}
</html>{{end}}`

const projectsTpl = `{{define "projects"}}{{template "head"}}
{{template "nav" .Active}}
<h1>Projects</h1>
{{if .Empty}}
  <p class="muted">{{.Empty}}</p>
{{else}}
  {{if .Categorized}}
  <div class="pills">
    {{range .Categories}}<a href="/projects?category={{.Folder}}"{{if .Selected}} class="selected"{{end}}>{{.Label}}</a>{{end}}
  </div>
  {{end}}
  <div class="pills">
    {{range .Projects}}<a href="/projects?project={{.Name}}"{{if .Selected}} class="selected"{{end}}>{{.Title}}</a>{{end}}
  </div>

  {{if .NotFound}}
    <p class="error">Project {{.NotFound}} was not found. It may have been removed.</p>
  {{else if .Detail}}{{with .Detail}}
    <h2>{{.Title}}</h2>
    <p class="muted">{{.Description}}</p>
    <div class="tabs">
      {{range .Tabs}}<a href="{{.URL}}"{{if .Selected}} class="selected"{{end}}>{{.Label}}</a>{{end}}
    </div>

    {{if eq .Tab "video"}}
      {{if not .Video.Configured}}
        <p class="muted">No video configured.</p>
      {{else if .Video.Local}}
        <video controls src="{{.Video.FileURL}}"></video>
      {{else}}
        <p><a href="{{.Video.LinkURL}}">Watch video</a></p>
      {{end}}
    {{end}}

    {{if eq .Tab "dataset"}}
      {{if not .Datasets}}
        <p class="muted">No datasets found.</p>
      {{end}}
      {{range .Datasets}}
      <div class="panel">
        <h3>{{.Name}}</h3>
        {{if .Err}}
          <p class="error">{{.Err}}</p>
        {{else}}
          <table>
            <tr>{{range .Table.Header}}<th>{{.}}</th>{{end}}</tr>
            {{range .Table.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
          </table>
          {{if .Table.Truncated}}<small>Preview truncated.</small>{{end}}
        {{end}}
        <p><a href="{{.DownloadURL}}">Download CSV</a></p>
      </div>
      {{end}}
    {{end}}

    {{if eq .Tab "notebook"}}
      {{if not .Notebooks}}
        <p class="muted">No notebook HTML files found.</p>
      {{end}}
      {{range .Notebooks}}
      <div class="panel">
        <h3>{{.Name}}</h3>
        <iframe src="{{.URL}}"></iframe>
      </div>
      {{end}}
    {{end}}

    {{if eq .Tab "dashboard"}}
      {{with .Dashboard}}
        {{if .NoData}}
          <p class="muted">No CSV found to build dashboard.</p>
        {{else if .Err}}
          <p class="error">{{.Err}}</p>
        {{else if .NoNumeric}}
          <p class="muted">No numeric columns in {{.Source}}.</p>
        {{else}}
          <h3>Quick Summary of {{.Source}}</h3>
          <table>
            <tr><th>column</th><th>count</th><th>mean</th><th>std</th><th>min</th><th>25%</th><th>50%</th><th>75%</th><th>max</th></tr>
            {{range .Columns}}
            <tr>
              <td>{{.Name}}</td><td>{{.Count}}</td>
              <td>{{printf "%.4f" .Mean}}</td><td>{{printf "%.4f" .Std}}</td>
              <td>{{printf "%.4f" .Min}}</td><td>{{printf "%.4f" .Q25}}</td>
              <td>{{printf "%.4f" .Q50}}</td><td>{{printf "%.4f" .Q75}}</td>
              <td>{{printf "%.4f" .Max}}</td>
            </tr>
            {{end}}
          </table>
          <h3>Distribution of {{.HistColumn}}</h3>
          {{range .Bars}}
          <div class="histrow">
            <small>{{.Label}}</small>
            <div><div class="bar" style="width:{{.Pct}}%"></div></div>
            <small>{{.Count}}</small>
          </div>
          {{end}}
        {{end}}
      {{end}}
    {{end}}

    {{if eq .Tab "files"}}
      <ul>
        {{range .Files}}<li>{{.}}</li>{{end}}
      </ul>
    {{end}}
  {{end}}{{end}}
{{end}}
</html>{{end}}`

const uploadTpl = `{{define "upload"}}{{template "head"}}
{{template "nav" .Active}}
<h1>Upload a Dataset</h1>
{{if .Saved}}<p class="ok">Saved to {{.Saved}}</p>{{end}}
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form class="panel" method="post" action="/upload" enctype="multipart/form-data">
  <p><input type="file" name="file"></p>
  <p><input type="text" name="dest" placeholder="business_sales/q1_sales/new.csv"></p>
  <p><small>The destination is a relative path inside the project catalog.</small></p>
  <p><button type="submit">Save file</button></p>
</form>
</html>{{end}}`

const aboutTpl = `{{define "about"}}{{template "head"}}
{{template "nav" .Active}}
<h1>About This Portfolio</h1>
<p>A simple portfolio server for showcasing data analysis projects: datasets,
exported notebooks, dashboards, and demo videos, all read straight from a
directory tree.</p>
</html>{{end}}`
