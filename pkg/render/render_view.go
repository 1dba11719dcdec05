// Render HTML for viewing a subnetwork

package render

import (
	"html/template"
	"io"

	"github.com/yumyai/netalign/logger"
	"go.uber.org/zap"
)

const (
	ModeOrthology = "orthology"
	ModeAlignment = "alignment"
)

var view_page_template *template.Template

// ViewPageData describes one rendered subnetwork view.
type ViewPageData struct {
	Mode     string
	Query1   string
	Query2   string
	Species1 string
	Species2 string
	DataURL  string
}

// ParseMode maps a query parameter to a view mode, defaulting to orthology.
func ParseMode(mode string) string {
	if mode == ModeAlignment {
		return ModeAlignment
	}
	return ModeOrthology
}

func init() {
	mainTmpl := `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>{{ .Query1 }} / {{ .Query2 }} ({{ .Mode }})</title>
	<script src="https://unpkg.com/cytoscape@3.30.2/dist/cytoscape.min.js"></script>
	<style>
		body { font-family: sans-serif; margin: 0; }
		header { padding: 8px 16px; }
		#cy { width: 100%; height: 90vh; }
		.s1 { color: #037324; }
		.s2 { color: #95136a; }
	</style>
</head>
<body>
	<header>
		<strong class="s1">{{ .Species1 }}</strong>: {{ .Query1 }}
		&nbsp;|&nbsp;
		<strong class="s2">{{ .Species2 }}</strong>: {{ .Query2 }}
		&nbsp;|&nbsp;
		{{ if eq .Mode "alignment" -}}
		<a href="?q1={{ .Query1 }}&q2={{ .Query2 }}&mode=orthology">orthology view</a>
		{{- else -}}
		<a href="?q1={{ .Query1 }}&q2={{ .Query2 }}&mode=alignment">alignment view</a>
		{{- end }}
	</header>
	<div id="cy"></div>
	{{ template "view_script" . }}
</body>
</html>`

	scriptTmpl := `{{ define "view_script" }}
	<script>
	const style = [
		{ selector: 'node', style: { 'label': 'data(name)', 'text-valign': 'center', 'text-halign': 'center', 'border-color': 'black', 'border-width': 8, 'height': 80, 'width': 80 } },
		{ selector: 'edge', style: { 'curve-style': 'haystack', 'width': 6 } },
		{ selector: ':parent', style: { 'text-valign': 'top', 'text-halign': 'center', 'font-size': '100px' } },
		{ selector: 'node.compound', style: { 'background-opacity': 0, 'border-width': 0 } },
		{ selector: 'node.container', style: { 'border-width': 10, 'z-index': 1 } },
		{ selector: 'node.s1', style: { 'border-color': '#037324' } },
		{ selector: 'node.s2', style: { 'border-color': '#95136a' } },
		{ selector: 'node.species1', style: { 'border-color': '#037324', 'z-index': 7 } },
		{ selector: 'node.species2', style: { 'border-color': '#95136a', 'z-index': 6 } },
		{ selector: 'edge.species1', style: { 'line-color': '#037324', 'z-index': 7 } },
		{ selector: 'edge.species2', style: { 'line-color': '#95136a', 'z-index': 6 } },
		{ selector: 'node.query', style: { 'shape': 'round-triangle' } },
		{ selector: 'node.ortho_nonexist', style: { 'background-color': '#9889e2' } },
		{ selector: 'node.ortho_exists_in', style: { 'background-color': '#b885d3' } },
		{ selector: 'node.ortho_exists_out', style: { 'background-color': '#db8ebb' } },
		{ selector: 'node.nonortho', style: { 'background-color': '#ea979f' } },
		{ selector: 'node.align_nonortho', style: { 'background-color': '#89a1e5' } },
		{ selector: 'node.nonalign_ortho', style: { 'background-color': '#978ae2' } },
		{ selector: 'node.align_ortho', style: { 'background-color': '#b885d3' } },
		{ selector: 'edge.align_nonortho', style: { 'line-color': '#89a1e5' } },
		{ selector: 'edge.nonalign_ortho', style: { 'line-color': '#978ae2' } },
		{ selector: 'edge.align_ortho', style: { 'line-color': '#b885d3' } },
		{ selector: 'edge.align_edge', style: { 'line-color': '#acd5b2' } },
		{ selector: 'edge.ortho_edge', style: { 'line-color': '#f4c0c5' } },
		{ selector: 'edge.alignortho_edge', style: { 'line-color': '#f2d79e' } },
		{ selector: 'edge.plain_interaction', style: { 'line-color': '#cccccc', 'width': 2 } },
		{ selector: 'node.alignment', style: { 'display': 'none' } },
	];

	fetch({{ .DataURL }})
		.then(resp => {
			if (!resp.ok) { return resp.json().then(body => { throw new Error(body.error); }); }
			return resp.json();
		})
		.then(elements => {
			const cy = window.cy = cytoscape({
				container: document.getElementById('cy'),
				boxSelectionEnabled: false,
				autounselectify: true,
				style: style,
				elements: elements,
			});
			{{ if eq .Mode "alignment" -}}
			cy.layout({ name: 'cose', fit: true, idealEdgeLength: 150, nestingFactor: 0.1, nodeRepulsion: 3000 }).run();
			{{- else -}}
			cy.nodes('.species1').layout({ name: 'concentric', boundingBox: { x1: 0, y1: 0, w: 1000, h: 1000 } }).run();
			cy.nodes('.species2').layout({ name: 'concentric', boundingBox: { x1: 1500, y1: 0, w: 1000, h: 1000 } }).run();
			cy.fit();
			{{- end }}
		})
		.catch(err => { document.getElementById('cy').textContent = err.message; });
	</script>
	{{ end }}`

	view_page_template = template.New("view_page")
	view_page_template = template.Must(view_page_template.Parse(mainTmpl))
	view_page_template = template.Must(view_page_template.Parse(scriptTmpl))
}

// RenderViewPage writes the cytoscape page for one view.
func RenderViewPage(w io.Writer, data ViewPageData) error {
	logger.Info("Rendering view page",
		zap.String("mode", data.Mode),
		zap.String("query1", data.Query1),
		zap.String("query2", data.Query2))
	return view_page_template.Execute(w, data)
}
