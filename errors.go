package portfoliodata

import "errors"

// Sentinel errors for library operations.
var (
	ErrVaultNotFound   = errors.New("vault directory not found")
	ErrVaultNotADir    = errors.New("vault path is not a directory")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrEncodeJSON      = errors.New("failed to encode JSON")
)
