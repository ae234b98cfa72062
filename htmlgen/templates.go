package htmlgen

import "html/template"

// pageData carries the fields shared by every page.
type pageData struct {
	Title     string
	Bootstrap string
	StyleDir  string // "" for top-level pages, "../" for kabi pages
}

type affectionView struct {
	Name     string
	Href     string
	OldStack []string
	NewStack []string
}

type differencePage struct {
	pageData
	Symbol      string
	Kind        string
	OldLocation string
	NewLocation string
	Diff        template.HTML
	Affections  []affectionView
}

type impactView struct {
	Name     string
	Href     string
	Location string
	OldStack []string
	NewStack []string
}

type externalPage struct {
	pageData
	Symbol  string
	Kind    string
	Impacts []impactView
}

type indexRow struct {
	Name string
	Href string
	Kind string
}

type indexPage struct {
	pageData
	Internal []indexRow
	External []indexRow
}

var pageTemplates = template.Must(template.New("pages").Parse(pageTemplateText))

const pageTemplateText = `
{{define "head"}}<head>
  <title>{{.Title}}</title>
  <meta charset="utf-8">
  <link rel="stylesheet" href="{{.Bootstrap}}">
  <link rel="stylesheet" href="{{.StyleDir}}highlight.css">
  <link rel="stylesheet" href="{{.StyleDir}}htmlgen.css">
</head>{{end}}

{{define "callstack"}}
<ul>
{{- range .}}
  <li>{{.}}</li>
{{- end}}
</ul>{{end}}

{{define "symboltable"}}<table class="table">
  <thead>
    <tr>
      <th scope="col">symbol</th>
      <th scope="col">kind</th>
    </tr>
  </thead>
  <tbody>
{{- range .}}
    <tr>
      <td><a href="{{.Href}}">{{.Name}}</a></td>
      <td>{{.Kind}}</td>
    </tr>
{{- end}}
  </tbody>
</table>{{end}}

{{define "difference"}}<!DOCTYPE html>
<html lang="en">
{{template "head" .}}
<body class="py-4">
<div class="container">
<h2>{{.Symbol}}</h2>
<p><a href="index.html">go back</a></p>
<ul>
  <li>kind: {{.Kind}}</li>
  <li>old location: {{.OldLocation}}</li>
  <li>new location: {{.NewLocation}}</li>
  <li>difference: {{.Diff}}</li>
  <li>affects symbols:
    <ul>
{{- range .Affections}}
      <li><a href="{{.Href}}">{{.Name}}</a>
        <ul>
          <li>old callstack:{{template "callstack" .OldStack}}</li>
          <li>new callstack:{{template "callstack" .NewStack}}</li>
        </ul>
      </li>
{{- end}}
    </ul>
  </li>
</ul>
</div>
</body>
</html>
{{end}}

{{define "external"}}<!DOCTYPE html>
<html lang="en">
{{template "head" .}}
<body class="py-4">
<div class="container">
<h2>{{.Symbol}}</h2>
<p><a href="../index.html">go back</a></p>
<ul>
  <li>kind: {{.Kind}}</li>
  <li>affected by symbols:
    <ul>
{{- range .Impacts}}
      <li><a href="{{.Href}}">{{.Name}}</a>
        <ul>
          <li>location: {{.Location}}</li>
          <li>old callstack:{{template "callstack" .OldStack}}</li>
          <li>new callstack:{{template "callstack" .NewStack}}</li>
        </ul>
      </li>
{{- end}}
    </ul>
  </li>
</ul>
</div>
</body>
</html>
{{end}}

{{define "index"}}<!DOCTYPE html>
<html lang="en">
{{template "head" .}}
<body class="py-4">
<div class="container">
<h1>{{.Title}}</h1>
<ul>
  <li>differing symbols:
    {{template "symboltable" .Internal}}
  </li>
  <li>affected KABI symbols:
    {{template "symboltable" .External}}
  </li>
</ul>
</div>
</body>
</html>
{{end}}
`
