package ui

import (
	"testing"

	"myarticles/internal/article"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestAppModel_InitFetchesOnce(t *testing.T) {
	src := &fakeSource{articles: testArticles()}
	m := NewAppModel(src, nil).AsTeaModel()

	for _, msg := range runCmd(m.Init()) {
		m.Update(msg)
	}
	assert.Nil(t, m.Init())
	assert.Equal(t, int32(1), src.calls.Load())

	out := m.View()
	assert.Contains(t, out, "all articles")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")
	assert.Contains(t, out, "quit")
}

func TestAppModel_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := NewAppModel(&fakeSource{}, nil).AsTeaModel()
			_, cmd := m.Update(keyMsg(k))
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestAppModel_OtherKeysDoNotQuit(t *testing.T) {
	m := NewAppModel(&fakeSource{}, nil).AsTeaModel()
	_, cmd := m.Update(keyMsg("x"))
	assert.Nil(t, cmd)
}

func TestAppModel_ForwardsLoadMessages(t *testing.T) {
	app := NewAppModel(&fakeSource{}, nil)
	m := app.AsTeaModel()

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m.Update(ArticlesFailedMsg{ViewID: app.List.ID(), Err: article.ErrStatus})

	assert.IsType(t, Failed{}, app.List.State())
	assert.Equal(t, 60, app.Help.Width)
	assert.Contains(t, m.View(), "load failed")
}
