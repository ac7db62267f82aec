package ui

import (
	"strings"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"titanic-dash/internal/chart"
)

const datastarSrc = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"

func pageHead(title string) Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(title)),
		Link(Rel("icon"), Href("data:,")),
		Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
		Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
		Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Cinzel:wght@400;700&display=swap")),
		Link(Rel("stylesheet"), Href(uiStylesheetHref())),
		Script(Type("module"), Src(datastarSrc)),
	)
}

func appPage(title string, sidebar Node, body ...Node) Node {
	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Main(Class("app-shell"),
				Aside(Class("app-sidebar"), sidebar),
				Section(
					Class("app-main"),
					H1(Class("page-title"), Text(title)),
					Div(Class("content"), Group(body)),
					footerQuote(),
				),
			),
		),
	)
}

func errorPage(title, message string) Node {
	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Main(
				Class("app-main"),
				H1(Class("page-title"), Text(title)),
				Div(Class(cardClass()), P(Text(message))),
				P(A(Href("/ui"), Text("Back to the dashboard"))),
			),
		),
	)
}

func footerQuote() Node {
	return P(Class("footer-quote"), Text(chart.FooterQuote))
}

func cardClass(extra ...string) string {
	parts := []string{"card"}
	parts = append(parts, extra...)
	return strings.Join(parts, " ")
}

func mutedClass() string {
	return "muted"
}
