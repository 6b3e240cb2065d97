package markdown2html

import (
	"errors"

	"github.com/alnah/markdown2html/internal/assets"
)

// Sentinel errors for library operations. Conversion itself never fails;
// these are returned by NewConverter while resolving options.
var (
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrReadStyle        = errors.New("failed to read style file")

	// ErrStyleNotFound is the asset loader's sentinel, so errors.Is works
	// against either package.
	ErrStyleNotFound = assets.ErrStyleNotFound
)
