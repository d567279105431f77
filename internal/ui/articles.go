package ui

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"myarticles/internal/article"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var lastViewID atomic.Int64

// ArticlesLoadedMsg is sent when the fetch issued on mount succeeds.
type ArticlesLoadedMsg struct {
	ViewID   int64
	Articles []article.Article
}

// ArticlesFailedMsg is sent when the fetch issued on mount fails.
type ArticlesFailedMsg struct {
	ViewID int64
	Err    error
}

// ArticleListView shows every article title under a fixed heading.
// It fetches from its source exactly once, on mount.
type ArticleListView struct {
	id       int64
	source   article.Source
	logger   *zap.Logger
	spinner  spinner.Model
	mounted  bool
	state    LoadState
	articles []article.Article
	width    int
}

// Ensure ArticleListView implements View.
var _ View = (*ArticleListView)(nil)

// NewArticleListView creates a view in the Loading state. Nothing is fetched
// until the view is mounted.
func NewArticleListView(src article.Source, logger *zap.Logger) *ArticleListView {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Spinner

	return &ArticleListView{
		id:       lastViewID.Add(1),
		source:   src,
		logger:   logger,
		spinner:  s,
		state:    Loading{},
		articles: []article.Article{},
	}
}

// ID returns the identifier carried by this view's messages.
func (v *ArticleListView) ID() int64 {
	return v.id
}

// State returns the current load state.
func (v *ArticleListView) State() LoadState {
	return v.state
}

// Articles returns the articles currently held. Never nil.
func (v *ArticleListView) Articles() []article.Article {
	return v.articles
}

// Mount returns the fetch command the first time it is called and nil on
// every later call.
func (v *ArticleListView) Mount() tea.Cmd {
	if v.mounted {
		return nil
	}
	v.mounted = true
	v.logger.Debug("article list mounted", zap.Int64("view", v.id))
	return v.fetch()
}

// Init implements View.
func (v *ArticleListView) Init() tea.Cmd {
	fetch := v.Mount()
	if fetch == nil {
		return nil
	}
	return tea.Batch(v.spinner.Tick, fetch)
}

func (v *ArticleListView) fetch() tea.Cmd {
	id, src := v.id, v.source
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = ArticlesFailedMsg{ViewID: id, Err: fmt.Errorf("fetch panicked: %v", r)}
			}
		}()
		if src == nil {
			return ArticlesFailedMsg{ViewID: id, Err: fmt.Errorf("no article source configured")}
		}
		articles, err := src.Fetch(context.Background())
		if err != nil {
			return ArticlesFailedMsg{ViewID: id, Err: err}
		}
		return ArticlesLoadedMsg{ViewID: id, Articles: articles}
	}
}

// Update implements View.
func (v *ArticleListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ArticlesLoadedMsg:
		if msg.ViewID != v.id || !v.loading() {
			return v, nil
		}
		articles := msg.Articles
		if articles == nil {
			articles = []article.Article{}
		}
		v.articles = articles
		v.state = Loaded{Articles: articles}
		v.logger.Info("articles loaded", zap.Int64("view", v.id), zap.Int("count", len(articles)))
		return v, nil
	case ArticlesFailedMsg:
		if msg.ViewID != v.id || !v.loading() {
			return v, nil
		}
		v.state = Failed{Err: msg.Err}
		v.logger.Error("articles load failed", zap.Int64("view", v.id), zap.Error(msg.Err))
		return v, nil
	case spinner.TickMsg:
		if !v.loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil
	}
	return v, nil
}

func (v *ArticleListView) loading() bool {
	_, ok := v.state.(Loading)
	return ok
}

// Tree returns the render tree for the current state.
func (v *ArticleListView) Tree() Tree {
	items := make([]Item, 0, len(v.articles))
	for _, a := range v.articles {
		items = append(items, Item{Key: a.Key(), Text: a.Title})
	}
	return Tree{Heading: Heading, Items: items, Status: v.state}
}

// View implements View.
func (v *ArticleListView) View() string {
	tree := v.Tree()

	var b strings.Builder
	b.WriteString(Styles.Heading.Render(tree.Heading))
	if v.loading() {
		b.WriteString(" " + v.spinner.View())
	}
	b.WriteString("\n\n")

	itemStyle := Styles.Item
	if v.width > 0 {
		itemStyle = itemStyle.MaxWidth(v.width)
	}
	for _, it := range tree.Items {
		b.WriteString(itemStyle.Render(it.Text) + "\n")
	}

	if failed, ok := tree.Status.(Failed); ok {
		b.WriteString(Styles.Error.Render("load failed: "+failed.Err.Error()) + "\n")
	}
	return b.String()
}
