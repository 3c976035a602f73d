package portfoliodata

import (
	"cmp"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ozzgio/portfolio-data/internal/fileutil"
)

// collectBooks gathers reading-list records from blog/books/, sorted by
// rating descending then title descending.
func (s *Service) collectBooks(ctx context.Context, vaultDir string) []Book {
	books := []Book{}

	dir := filepath.Join(vaultDir, booksSubdir)
	if !fileutil.DirExists(dir) {
		s.cfg.logf("Warning: books directory not found at %s", dir)
		return books
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.cfg.logf("Warning: cannot list %s: %v", dir, err)
		return books
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return books
		}
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		fields, body, ok := s.readDocument(path)
		if !ok {
			continue
		}

		if stringField(fields, "status") != "read" && !hasRating(fields["rating"]) {
			continue
		}

		lesson := stringField(fields, "lesson")
		if lesson == "" {
			lesson = body
		}
		lesson = strings.TrimSpace(lesson)

		book := Book{
			Title:  stringField(fields, "title"),
			Author: stringField(fields, "author"),
			Cover:  stringField(fields, "cover"),
			Rating: ratingValue(fields["rating"]),
			URL:    stringField(fields, "url"),
			Tags:   stringList(fields["tags"]),
			Lesson: lesson,
		}

		if s.renderer != nil && lesson != "" {
			html, err := s.renderer.ToHTML(ctx, lesson)
			if err != nil {
				s.cfg.logf("Warning: rendering lesson for %s: %v", entry.Name(), err)
			} else {
				book.LessonHTML = html
			}
		}

		books = append(books, book)
	}

	slices.SortStableFunc(books, func(a, b Book) int {
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return cmp.Compare(b.Title, a.Title)
	})

	return books
}
