package portfoliodata

import "time"

// Vault layout constants. Paths are relative to the vault root.
const (
	articlesSubdir  = "blog/articles"
	booksSubdir     = "blog/books"
	imagesSubdir    = "blog/articles/images"
	publishedSubdir = "published"

	articlesFile    = "articles.json"
	booksFile       = "books.json"
	imagesOutSubdir = "images"
)

// Default size thresholds. Oversized files are skipped with a warning.
const (
	DefaultMaxFileSize  = 10 << 20 // Markdown files: 10 MiB
	DefaultMaxImageSize = 50 << 20 // Images: 50 MiB
)

// DefaultOutputDir is used when Input.OutputDir is empty.
const DefaultOutputDir = "data"

// Article is one published blog article record.
type Article struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Thumbnail   string   `json:"thumbnail"`
	Tags        []string `json:"tags"`
}

// Book is one reading-list record. Lesson falls back to the document body
// when the frontmatter has no lesson field. LessonHTML is only populated
// when HTML rendering is enabled.
type Book struct {
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Cover      string   `json:"cover"`
	Rating     float64  `json:"rating"`
	URL        string   `json:"url"`
	Tags       []string `json:"tags"`
	Lesson     string   `json:"lesson"`
	LessonHTML string   `json:"lesson_html,omitempty"`
}

// Input contains generation parameters.
type Input struct {
	VaultDir  string // Vault root (empty = current directory)
	OutputDir string // Output directory (empty = DefaultOutputDir)
	DryRun    bool   // Report without writing
}

// Result summarizes a generation run.
type Result struct {
	Articles      []Article
	Books         []Book
	ImagesCopied  int
	ImagesSkipped int
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	maxFileSize  int64
	maxImageSize int64
	imageExts    map[string]bool
	lessonHTML   bool
	now          func() time.Time
	logf         func(format string, args ...any)
}

// WithMaxFileSize caps markdown file size in bytes.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxFileSize(n int64) Option {
	if n <= 0 {
		panic("portfoliodata: WithMaxFileSize must be positive")
	}
	return func(s *Service) {
		s.cfg.maxFileSize = n
	}
}

// WithMaxImageSize caps image file size in bytes.
// Panics if n <= 0.
func WithMaxImageSize(n int64) Option {
	if n <= 0 {
		panic("portfoliodata: WithMaxImageSize must be positive")
	}
	return func(s *Service) {
		s.cfg.maxImageSize = n
	}
}

// WithImageExtensions replaces the copied-image extension whitelist.
// Extensions must include the leading dot; matching is case-insensitive.
func WithImageExtensions(exts []string) Option {
	return func(s *Service) {
		if len(exts) == 0 {
			return
		}
		m := make(map[string]bool, len(exts))
		for _, ext := range exts {
			m[normalizeExt(ext)] = true
		}
		s.cfg.imageExts = m
	}
}

// WithLessonHTML also renders each book lesson to an HTML fragment.
func WithLessonHTML() Option {
	return func(s *Service) {
		s.cfg.lessonHTML = true
	}
}

// WithClock injects the time source used to resolve "auto" dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.cfg.now = now
		}
	}
}

// WithLogger sets a printf-style sink for warnings and progress messages.
// The default discards them.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(s *Service) {
		if logf != nil {
			s.cfg.logf = logf
		}
	}
}
