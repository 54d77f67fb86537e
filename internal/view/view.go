// Package view enumerates the shell's learning views and dispatches the shared
// context to the module behind each one.
package view

import (
	"fmt"

	"github.com/verte-zerg/aetheris/internal/i18n"
	"github.com/verte-zerg/aetheris/internal/model"
)

// View identifies a screen reachable from the sidebar.
type View int

// Views in declaration order. Sidebar order comes from Sections.
const (
	Dashboard View = iota
	NeuroMap
	MindMeld
	VisionLab
	QuantumQuiz
	NexusChat
	CosmosLearn
	IdeaVault
	MathPath
	SkillForge
	CodeNexus
)

// All lists every view.
var All = []View{
	Dashboard, NeuroMap, MindMeld, VisionLab, QuantumQuiz, NexusChat,
	CosmosLearn, IdeaVault, MathPath, SkillForge, CodeNexus,
}

// Section groups views under a sidebar heading.
type Section struct {
	LabelKey string
	Views    []View
}

// Sections is the sidebar layout.
var Sections = []Section{
	{LabelKey: i18n.KeySectionCommand, Views: []View{Dashboard, NexusChat, IdeaVault}},
	{LabelKey: i18n.KeySectionAcademy, Views: []View{CosmosLearn, MathPath, CodeNexus, SkillForge, QuantumQuiz}},
	{LabelKey: i18n.KeySectionTools, Views: []View{NeuroMap, MindMeld, VisionLab}},
}

// Order returns the views in sidebar order.
func Order() []View {
	out := make([]View, 0, len(All))
	for _, s := range Sections {
		out = append(out, s.Views...)
	}
	return out
}

// LabelKey returns the i18n key naming v.
func (v View) LabelKey() string {
	switch v {
	case Dashboard:
		return i18n.KeyDashboard
	case NeuroMap:
		return i18n.KeyNeuroMap
	case MindMeld:
		return i18n.KeyMindMeld
	case VisionLab:
		return i18n.KeyVisionLab
	case QuantumQuiz:
		return i18n.KeyQuantumQuiz
	case NexusChat:
		return i18n.KeyNexusChat
	case CosmosLearn:
		return i18n.KeyCosmosLearn
	case IdeaVault:
		return i18n.KeyIdeaVault
	case MathPath:
		return i18n.KeyMathPath
	case SkillForge:
		return i18n.KeySkillForge
	case CodeNexus:
		return i18n.KeyCodeNexus
	default:
		return i18n.KeyDashboard
	}
}

// Label returns the localized name of v.
func (v View) Label(lang model.LanguageCode) string {
	return i18n.T(lang, v.LabelKey())
}

func (v View) String() string {
	if v < Dashboard || v > CodeNexus {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return i18n.T(model.LangEnglish, v.LabelKey())
}

// Context is what a module receives on every render and key press.
type Context struct {
	Stats    model.UserStats
	Update   func(model.StatsDelta)
	Language model.LanguageCode
	User     model.UserProfile
}

// Report hands delta to the shell. A nil Update drops it.
func (c Context) Report(delta model.StatsDelta) {
	if c.Update != nil && !delta.Empty() {
		c.Update(delta)
	}
}

// Module is a learning feature mounted behind a view.
type Module interface {
	// Render returns the module's body for the content pane.
	Render(ctx Context) string
	// HandleKey reacts to a key press and reports whether it was consumed.
	HandleKey(key string, ctx Context) bool
}

// ModuleFor returns the module behind v. Unknown views fall back to the dashboard.
func ModuleFor(v View) Module {
	switch v {
	case Dashboard:
		return dashboardModule{}
	case QuantumQuiz:
		return practiceModule{view: v, action: "answer a question", delta: quizDelta}
	case NeuroMap:
		return practiceModule{view: v, action: "explore a node", delta: nodeDelta}
	case MindMeld:
		return practiceModule{view: v, action: "debate for a minute", delta: minuteDelta}
	case VisionLab, NexusChat, CosmosLearn, IdeaVault, MathPath, SkillForge, CodeNexus:
		return practiceModule{view: v, action: "complete a session", delta: sessionDelta}
	default:
		return dashboardModule{}
	}
}
