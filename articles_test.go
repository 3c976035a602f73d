package portfoliodata_test

import (
	"context"
	"strings"
	"testing"
	"time"

	portfoliodata "github.com/ozzgio/portfolio-data"
)

// generate runs a dry-run collection pass over the vault.
func generate(t *testing.T, vault string, opts ...portfoliodata.Option) *portfoliodata.Result {
	t.Helper()

	svc := portfoliodata.New(opts...)
	result, err := svc.Generate(context.Background(), portfoliodata.Input{
		VaultDir: vault,
		DryRun:   true,
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return result
}

// ---------------------------------------------------------------------------
// TestCollectArticles - Filtering
// ---------------------------------------------------------------------------

func TestCollectArticles_Filtering(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()

	writeFile(t, articlePath(vault, "2024", "published.md"),
		"---\ntitle: In\ndate: 2024-01-01\nstatus: published\n---\n")
	writeFile(t, articlePath(vault, "2024", "by-url.md"),
		"---\ntitle: Also In\ndate: 2024-02-01\nurl: https://example.com/x\n---\n")
	writeFile(t, articlePath(vault, "2024", "draft.md"),
		"---\ntitle: Out\ndate: 2024-03-01\nstatus: draft\n---\n")
	writeFile(t, articlePath(vault, "2024", "no-frontmatter.md"),
		"# Out\n\nJust a body.\n")
	writeFile(t, articlePath(vault, "2024", "notes.txt"),
		"---\ntitle: Wrong Extension\nstatus: published\n---\n")
	// Articles outside a published folder are never picked up.
	writeFile(t, articlePath(vault, "2024", "../wip/pending.md"),
		"---\ntitle: Out\nstatus: published\n---\n")

	result := generate(t, vault)

	if len(result.Articles) != 2 {
		t.Fatalf("Articles = %d, want 2: %+v", len(result.Articles), result.Articles)
	}
	titles := []string{result.Articles[0].Title, result.Articles[1].Title}
	for _, want := range []string{"In", "Also In"} {
		found := false
		for _, got := range titles {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing article %q in %v", want, titles)
		}
	}
}

func TestCollectArticles_SortedByDateDescending(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	writeFile(t, articlePath(vault, "2022", "old.md"),
		"---\ntitle: Old\ndate: 2022-06-01\nstatus: published\n---\n")
	writeFile(t, articlePath(vault, "2024", "new.md"),
		"---\ntitle: New\ndate: 2024-06-01\nstatus: published\n---\n")
	writeFile(t, articlePath(vault, "2023", "mid.md"),
		"---\ntitle: Mid\ndate: 2023-06-01\nstatus: published\n---\n")

	result := generate(t, vault)

	want := []string{"New", "Mid", "Old"}
	if len(result.Articles) != len(want) {
		t.Fatalf("Articles = %d, want %d", len(result.Articles), len(want))
	}
	for i, title := range want {
		if result.Articles[i].Title != title {
			t.Errorf("Articles[%d].Title = %q, want %q", i, result.Articles[i].Title, title)
		}
	}
}

func TestCollectArticles_TagsAreOrderedStrings(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	writeFile(t, articlePath(vault, "2024", "a.md"),
		"---\ntitle: A\ndate: 2024-01-01\nstatus: published\ntags: [zebra, alpha, mango]\n---\n")

	result := generate(t, vault)

	if len(result.Articles) != 1 {
		t.Fatalf("Articles = %d, want 1", len(result.Articles))
	}
	want := []string{"zebra", "alpha", "mango"}
	got := result.Articles[0].Tags
	if len(got) != len(want) {
		t.Fatalf("Tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tags[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCollectArticles_ScalarTagsBecomeEmptyList(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	writeFile(t, articlePath(vault, "2024", "a.md"),
		"---\ntitle: A\ndate: 2024-01-01\nstatus: published\ntags: single\n---\n")

	result := generate(t, vault)

	if len(result.Articles) != 1 {
		t.Fatalf("Articles = %d, want 1", len(result.Articles))
	}
	if tags := result.Articles[0].Tags; tags == nil || len(tags) != 0 {
		t.Errorf("Tags = %#v, want empty non-nil list", tags)
	}
}

func TestCollectArticles_AutoDateResolved(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	writeFile(t, articlePath(vault, "2024", "a.md"),
		"---\ntitle: A\ndate: auto\nstatus: published\n---\n")

	fixed := time.Date(2025, time.August, 25, 10, 0, 0, 0, time.UTC)
	result := generate(t, vault, portfoliodata.WithClock(func() time.Time { return fixed }))

	if len(result.Articles) != 1 {
		t.Fatalf("Articles = %d, want 1", len(result.Articles))
	}
	if got := result.Articles[0].Date; got != "2025-08-25" {
		t.Errorf("Date = %q, want %q", got, "2025-08-25")
	}
}

func TestCollectArticles_OversizedFileSkippedWithWarning(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	big := "---\ntitle: Big\ndate: 2024-01-01\nstatus: published\n---\n" + strings.Repeat("x", 2048)
	writeFile(t, articlePath(vault, "2024", "big.md"), big)
	writeFile(t, articlePath(vault, "2024", "small.md"),
		"---\ntitle: Small\ndate: 2024-01-02\nstatus: published\n---\n")

	capture := &logCapture{}
	result := generate(t, vault,
		portfoliodata.WithMaxFileSize(1024),
		portfoliodata.WithLogger(capture.logf))

	if len(result.Articles) != 1 || result.Articles[0].Title != "Small" {
		t.Fatalf("Articles = %+v, want only Small", result.Articles)
	}
	if !capture.contains("skipping large file big.md") {
		t.Errorf("missing size warning, got %v", capture.lines)
	}
}

func TestCollectArticles_UnclosedFrontmatterExcluded(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	writeFile(t, articlePath(vault, "2024", "broken.md"),
		"---\ntitle: Broken\nstatus: published\nno closing delimiter\n")

	capture := &logCapture{}
	result := generate(t, vault, portfoliodata.WithLogger(capture.logf))

	// Without a parsed status or url the document cannot qualify.
	if len(result.Articles) != 0 {
		t.Errorf("Articles = %+v, want none", result.Articles)
	}
	if !capture.contains("broken.md") {
		t.Errorf("missing warning for broken file, got %v", capture.lines)
	}
}
