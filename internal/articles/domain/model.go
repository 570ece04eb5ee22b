package domain

import (
	"errors"
	"time"
)

var ErrArticleNotFound = errors.New("article not found")

// Categories is the known set shown as filters. The stored category is an
// open string.
var Categories = []string{"Trends", "Education", "Events", "Student Contributions", "Career Tips"}

const DefaultCategory = "Trends"

type Article struct {
	ID        string    `firestore:"id" json:"id"`
	Title     string    `firestore:"title" json:"title"`
	Content   string    `firestore:"content" json:"content"`
	Author    string    `firestore:"author" json:"author"`
	AuthorUID string    `firestore:"authorUid,omitempty" json:"author_uid,omitempty"`
	Category  string    `firestore:"category" json:"category"`
	Image     string    `firestore:"image,omitempty" json:"image,omitempty"`
	Date      time.Time `firestore:"date" json:"date"`
}

// Excerpt returns at most n runes of the content.
func (a Article) Excerpt(n int) string {
	runes := []rune(a.Content)
	if len(runes) <= n {
		return a.Content
	}
	return string(runes[:n]) + "…"
}

// FilterByCategory keeps the articles in category, preserving order. An
// empty category or "All" keeps everything.
func FilterByCategory(list []Article, category string) []Article {
	if category == "" || category == "All" {
		return list
	}
	out := make([]Article, 0, len(list))
	for _, a := range list {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}
