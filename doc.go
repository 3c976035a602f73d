// Package portfoliodata generates the JSON data files for a portfolio
// site from an Obsidian vault.
//
// # Quick Start
//
// Create a service and run it against a vault:
//
//	svc := portfoliodata.New()
//	result, err := svc.Generate(ctx, portfoliodata.Input{
//	    VaultDir:  "/path/to/vault",
//	    OutputDir: "data",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d articles, %d books\n", len(result.Articles), len(result.Books))
//
// The run writes data/articles.json and data/books.json and copies the
// vault's article images into data/images/.
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. Copy whitelisted images from blog/articles/images (sanitized names,
//     size-capped, mtime preserved)
//  2. Collect published articles from blog/articles/<year>/published/
//  3. Collect books from blog/books/
//  4. Sort and serialize both collections to JSON
//
// Frontmatter is parsed with a real YAML library first; documents that are
// not valid YAML drop to a line-oriented fallback parser covering the flat
// scalar and single-level list subset that vault notes actually use.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := portfoliodata.New(
//	    portfoliodata.WithMaxFileSize(5 << 20),
//	    portfoliodata.WithLessonHTML(),
//	    portfoliodata.WithLogger(log.Printf),
//	)
//
// Input.DryRun reports what would be written without touching the
// filesystem.
package portfoliodata
