package portfoliodata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ozzgio/portfolio-data/internal/fileutil"
)

// defaultImageExts is the extension whitelist for copied images.
func defaultImageExts() map[string]bool {
	return map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
}

// normalizeExt lowercases an extension and ensures the leading dot.
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// copyImages copies article images from blog/articles/images into
// <output>/images with sanitized filenames. Oversized or unreadable
// images are skipped with a warning, never an error; only output
// directory failures abort the run.
func (s *Service) copyImages(vaultDir, outputDir string, dryRun bool) (copied, skipped int, err error) {
	src := filepath.Join(vaultDir, imagesSubdir)
	if !fileutil.DirExists(src) {
		s.cfg.logf("Info: no images directory found at %s", src)
		return 0, 0, nil
	}

	dest := filepath.Join(outputDir, imagesOutSubdir)
	if dryRun {
		s.cfg.logf("[DRY RUN] Would create directory: %s", dest)
	} else if err := os.MkdirAll(dest, dirPermissions); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, 0, fmt.Errorf("listing %s: %w", src, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !s.cfg.imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			s.cfg.logf("Warning: cannot read file %s: %v", entry.Name(), err)
			skipped++
			continue
		}
		if info.Size() > s.cfg.maxImageSize {
			s.cfg.logf("Warning: skipping large image %s (%.1f MB > %.0f MB)",
				entry.Name(), mib(info.Size()), mib(s.cfg.maxImageSize))
			skipped++
			continue
		}

		safeName, err := fileutil.SanitizeFilename(entry.Name())
		if err != nil {
			s.cfg.logf("Warning: skipping image with unusable name %q: %v", entry.Name(), err)
			skipped++
			continue
		}

		destFile := filepath.Join(dest, safeName)
		if dryRun {
			s.cfg.logf("[DRY RUN] Would copy: %s -> %s", entry.Name(), destFile)
			continue
		}

		if err := fileutil.CopyFile(filepath.Join(src, entry.Name()), destFile); err != nil {
			s.cfg.logf("Error copying %s: %v", entry.Name(), err)
			skipped++
			continue
		}
		copied++
	}

	if !dryRun && copied > 0 {
		s.cfg.logf("Copied %d images to %s/", copied, dest)
	}
	if skipped > 0 {
		s.cfg.logf("Skipped %d images", skipped)
	}

	return copied, skipped, nil
}
