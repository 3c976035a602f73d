package portfoliodata

import (
	"cmp"
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/ozzgio/portfolio-data/internal/dateutil"
	"github.com/ozzgio/portfolio-data/internal/fileutil"
)

// collectArticles gathers published articles from
// blog/articles/<year>/published/ folders, newest first.
func (s *Service) collectArticles(ctx context.Context, vaultDir string) []Article {
	articles := []Article{}

	dir := filepath.Join(vaultDir, articlesSubdir)
	if !fileutil.DirExists(dir) {
		s.cfg.logf("Warning: articles directory not found at %s", dir)
		return articles
	}

	years, err := os.ReadDir(dir)
	if err != nil {
		s.cfg.logf("Warning: cannot list %s: %v", dir, err)
		return articles
	}

	for _, year := range years {
		if !year.IsDir() {
			continue
		}

		publishedDir := filepath.Join(dir, year.Name(), publishedSubdir)
		entries, err := os.ReadDir(publishedDir)
		if err != nil {
			continue // year without a published folder
		}

		for _, entry := range entries {
			if ctx.Err() != nil {
				return articles
			}
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
				continue
			}

			path := filepath.Join(publishedDir, entry.Name())
			fields, _, ok := s.readDocument(path)
			if !ok {
				continue
			}

			if stringField(fields, "status") != "published" && stringField(fields, "url") == "" {
				continue
			}

			articles = append(articles, Article{
				Title:       stringField(fields, "title"),
				Date:        s.resolveDate(path, stringField(fields, "date")),
				Description: stringField(fields, "description"),
				URL:         stringField(fields, "url"),
				Thumbnail:   stringField(fields, "thumbnail"),
				Tags:        stringList(fields["tags"]),
			})
		}
	}

	// Newest first. Dates are ISO formatted so the string order is the
	// chronological order.
	slices.SortStableFunc(articles, func(a, b Article) int {
		return cmp.Compare(b.Date, a.Date)
	})

	return articles
}

// resolveDate expands "auto" date values against the injected clock.
// A malformed auto format degrades to the raw value with a warning.
func (s *Service) resolveDate(path, value string) string {
	resolved, err := dateutil.ResolveAuto(value, s.cfg.now())
	if err != nil {
		s.cfg.logf("Warning: %s: %v", filepath.Base(path), err)
		return value
	}
	return resolved
}
