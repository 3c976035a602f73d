package portfoliodata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ozzgio/portfolio-data/internal/fileutil"
	"github.com/ozzgio/portfolio-data/internal/frontmatter"
	"github.com/ozzgio/portfolio-data/internal/render"
)

// Output file permissions.
const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// Service orchestrates the vault-to-JSON pipeline.
type Service struct {
	cfg      serviceConfig
	renderer *render.Renderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithMaxFileSize, WithLogger).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			maxFileSize:  DefaultMaxFileSize,
			maxImageSize: DefaultMaxImageSize,
			imageExts:    defaultImageExts(),
			now:          time.Now,
			logf:         func(string, ...any) {},
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.lessonHTML {
		s.renderer = render.New()
	}

	return s
}

// Generate runs the full pipeline: copy images, collect articles and
// books, and write both JSON collections. The context is used for
// cancellation between stages and per document.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if err := validateVaultDir(input.VaultDir); err != nil {
		return nil, err
	}

	outputDir := input.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	if !input.DryRun {
		s.warnOnOverwrite(outputDir)
	}

	// Images first, so a copy failure surfaces before the JSON is touched.
	copied, skipped, err := s.copyImages(input.VaultDir, outputDir, input.DryRun)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	articles := s.collectArticles(ctx, input.VaultDir)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	books := s.collectBooks(ctx, input.VaultDir)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Articles:      articles,
		Books:         books,
		ImagesCopied:  copied,
		ImagesSkipped: skipped,
	}

	if input.DryRun {
		s.cfg.logf("[DRY RUN] Would write %s (%d articles) and %s (%d books)",
			filepath.Join(outputDir, articlesFile), len(articles),
			filepath.Join(outputDir, booksFile), len(books))
		return result, nil
	}

	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	if err := writeJSON(filepath.Join(outputDir, articlesFile), articles); err != nil {
		return nil, err
	}
	if err := writeJSON(filepath.Join(outputDir, booksFile), books); err != nil {
		return nil, err
	}

	return result, nil
}

// validateVaultDir checks the vault root when one is given.
// An empty VaultDir means the current directory and is always accepted.
func validateVaultDir(dir string) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrVaultNotFound, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrVaultNotADir, dir)
	}
	return nil
}

// warnOnOverwrite notes existing output files before they are replaced.
func (s *Service) warnOnOverwrite(outputDir string) {
	for _, name := range []string{articlesFile, booksFile} {
		path := filepath.Join(outputDir, name)
		if fileutil.FileExists(path) {
			s.cfg.logf("Warning: %s already exists and will be overwritten", path)
		}
	}
}

// writeJSON serializes v with two-space indentation and HTML escaping
// disabled so UTF-8 text passes through unmangled.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodeJSON, path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	return nil
}

// readDocument loads a markdown file, splits the frontmatter, and parses
// it. ok is false when the file was skipped; a warning has been logged.
// A document with a broken or absent frontmatter block is still returned,
// with empty fields, so the status filters decide its fate.
func (s *Service) readDocument(path string) (fields map[string]any, body string, ok bool) {
	info, err := os.Stat(path)
	if err != nil {
		s.cfg.logf("Warning: cannot stat %s: %v", filepath.Base(path), err)
		return nil, "", false
	}
	if info.Size() > s.cfg.maxFileSize {
		s.cfg.logf("Warning: skipping large file %s (%.1f MB)", filepath.Base(path), mib(info.Size()))
		return nil, "", false
	}

	content, err := os.ReadFile(path) // #nosec G304 -- paths come from directory walks under the vault root
	if err != nil {
		s.cfg.logf("Warning: cannot read %s: %v", filepath.Base(path), err)
		return nil, "", false
	}

	fm, bodyBytes, had, err := frontmatter.Split(content)
	if err != nil {
		// Unclosed delimiter: treat the whole document as body, no fields.
		s.cfg.logf("Warning: %s: %v", filepath.Base(path), err)
		return map[string]any{}, string(content), true
	}
	if !had {
		return map[string]any{}, string(content), true
	}

	return frontmatter.Parse(fm), string(bodyBytes), true
}

// mib converts bytes to mebibytes for log messages.
func mib(n int64) float64 {
	return float64(n) / (1 << 20)
}
