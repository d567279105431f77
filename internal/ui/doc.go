// Package ui renders the article list as a Bubble Tea program.
//
// Core abstractions:
//   - View: a screen with its own model, update and view (Elm-style)
//   - ArticleListView: fetches the article collection once on mount and
//     renders a heading followed by one line per article
//   - Tree: the render tree a view produces, independent of terminal styling
//   - AppModel: root tea.Model that hosts the list view and handles quitting
package ui
