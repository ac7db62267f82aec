package ui

import (
	"fmt"
	"strconv"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"

	"titanic-dash/internal/api"
	"titanic-dash/internal/chart"
	"titanic-dash/internal/domain"
)

const pageTitle = "R.M.S. Titanic"

func dashboardPage(sel domain.Selection, sum domain.Summary) Node {
	donut := chart.FromSummary(sum)
	return appPage(pageTitle,
		sidebar(sel),
		If(sel.SoulsUnmapped, unmappedNotice(sel.Souls)),
		statsCard(donut, sum),
		chartCard(sel, donut),
	)
}

func sidebar(sel domain.Selection) Node {
	ages := sel.Criteria.Ages
	return Form(
		Method("get"),
		Action("/ui"),
		data.Signals(map[string]any{"ageMin": ages.Lo, "ageMax": ages.Hi}),
		H3(Text("Navigation")),
		selectField("Souls", api.ParamSouls, domain.SoulsOptions, sel.Souls),
		selectField("Deck", api.ParamDeck, domain.DeckOptions, sel.Deck),
		Div(
			Class("field"),
			Label(Text("Age range "), Span(data.Text("$ageMin + '–' + $ageMax"), Text(fmt.Sprintf("%d–%d", ages.Lo, ages.Hi)))),
			ageInput(api.ParamAgeMin, "ageMin", ages.Lo),
			ageInput(api.ParamAgeMax, "ageMax", ages.Hi),
			P(Class("warning"), data.Show("Number($ageMin) > Number($ageMax)"), Text("The lower bound must not exceed the upper bound.")),
		),
		Button(Type("submit"), Class("btn"), Text("Chart course")),
	)
}

func selectField(label, name string, options []string, selected string) Node {
	opts := make([]Node, 0, len(options))
	for _, o := range options {
		opts = append(opts, Option(Value(o), Text(o), If(o == selected, Selected())))
	}
	return Div(
		Class("field"),
		Label(For(name), Text(label)),
		Select(ID(name), Name(name), Group(opts)),
	)
}

func ageInput(name, signal string, value int) Node {
	return Input(
		Type("range"),
		Name(name),
		Min(strconv.Itoa(domain.MinAge)),
		Max(strconv.Itoa(domain.MaxAge)),
		Step("1"),
		Value(strconv.Itoa(value)),
		data.Bind(signal),
	)
}

func unmappedNotice(label string) Node {
	return Div(
		Class(cardClass("notice")),
		P(Text(fmt.Sprintf("The %q selection has no entry in the souls mapping, so no sex filter is applied.", label))),
	)
}

func statsCard(donut chart.Donut, sum domain.Summary) Node {
	return Div(
		Class(cardClass("stats")),
		stat("", donut.Title, ""),
		stat("", chart.FormatCount(sum.Survived), "saved"),
		stat("perished", chart.FormatCount(sum.Perished), "perished at sea"),
	)
}

func stat(extra, value, caption string) Node {
	className := "stat"
	if extra != "" {
		className += " " + extra
	}
	return Div(Class(className), Strong(Text(value)), If(caption != "", Span(Class(mutedClass()), Text(caption))))
}

func chartCard(sel domain.Selection, donut chart.Donut) Node {
	if donut.Empty() {
		return Div(
			Class(cardClass("chart")),
			P(Text("No souls match these filters.")),
			P(Class(mutedClass()), Text(donut.Subtitle)),
		)
	}
	src := "/ui/chart.svg"
	if q := api.QueryFromSelection(sel).Encode(); q != "" {
		src += "?" + q
	}
	return Div(
		Class(cardClass("chart")),
		Img(Src(src), Alt(donut.Title+", "+donut.Subtitle+", "+donut.Centre), Width("680"), Height("680")),
		P(Class(mutedClass()), A(Href(pngHref(src)), Text("Download PNG"))),
	)
}

func pngHref(svgSrc string) string {
	return "/ui/chart.png" + svgSrc[len("/ui/chart.svg"):]
}
