package ui

import "myarticles/internal/article"

// LoadState is the tagged variant driving what ArticleListView renders.
// It is one of Loading, Loaded or Failed.
type LoadState interface {
	loadState()
	String() string
}

// Loading is the state from mount until the fetch completes.
type Loading struct{}

// Loaded carries the articles from the first successful response.
type Loaded struct {
	Articles []article.Article
}

// Failed carries the error that ended the load.
type Failed struct {
	Err error
}

func (Loading) loadState() {}
func (Loaded) loadState()  {}
func (Failed) loadState()  {}

func (Loading) String() string { return "loading" }
func (Loaded) String() string  { return "loaded" }
func (Failed) String() string  { return "failed" }
