package ui

import (
	"myarticles/internal/article"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// AppModel is the root model. It hosts the article list and owns the
// app-level key bindings.
type AppModel struct {
	List *ArticleListView
	Keys KeyMap
	Help help.Model
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.List.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.Keys.Quit) {
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.Help.Width = msg.Width
	}

	v, cmd := a.List.Update(msg)
	if l, ok := v.(*ArticleListView); ok {
		a.List = l
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return Styles.Frame.Render(a.List.View() + "\n" + a.Help.View(a.Keys))
}

// NewAppModel creates the root application model around src.
func NewAppModel(src article.Source, logger *zap.Logger) *AppModel {
	h := help.New()
	h.Styles.ShortKey = Styles.Hint
	h.Styles.ShortDesc = Styles.Hint
	return &AppModel{
		List: NewArticleListView(src, logger),
		Keys: DefaultKeyMap(),
		Help: h,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
