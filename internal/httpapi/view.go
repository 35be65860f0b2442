package httpapi

import (
	"bytes"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/aaronromeo/healthplanner/internal/planner"
)

// Model replies are markdown. Raw HTML in them is dropped by goldmark's
// default (non-unsafe) renderer.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

// stateView is the JSON sent to the page: the state plus rendered HTML for
// the model-written fields.
type stateView struct {
	planner.State
	HTML renderedText `json:"html"`
}

type renderedText struct {
	MealPlan string   `json:"meal_plan,omitempty"`
	Routine  string   `json:"routine,omitempty"`
	Answers  []string `json:"answers"`
}

func newStateView(st planner.State) stateView {
	v := stateView{State: st, HTML: renderedText{Answers: make([]string, 0, len(st.History))}}
	if st.Dietary != nil {
		v.HTML.MealPlan = renderMarkdown(st.Dietary.MealPlan)
	}
	if st.Fitness != nil {
		v.HTML.Routine = renderMarkdown(st.Fitness.Routine)
	}
	for _, qa := range st.History {
		v.HTML.Answers = append(v.HTML.Answers, renderMarkdown(qa.Answer))
	}
	return v
}

func renderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return buf.String()
}
