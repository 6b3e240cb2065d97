package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader reads {base}/styles/{name}.css. Symlinks are followed
// but must resolve inside the styles directory.
type FilesystemLoader struct {
	stylesDir string
}

// NewFilesystemLoader returns ErrInvalidBasePath unless basePath is an
// existing directory. The styles subdirectory itself may be absent.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	base, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(base)
	switch {
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, base)
	}

	return &FilesystemLoader{stylesDir: filepath.Join(base, "styles")}, nil
}

// LoadStyle implements AssetLoader.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path, err := f.resolve(name)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- resolved inside stylesDir
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// resolve returns the real path of the style file.
func (f *FilesystemLoader) resolve(name string) (string, error) {
	dir, err := filepath.EvalSymlinks(f.stylesDir)
	if err != nil {
		return "", lookupError(name, err)
	}

	target, err := filepath.EvalSymlinks(filepath.Join(dir, name+".css"))
	if err != nil {
		return "", lookupError(name, err)
	}

	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: style %q resolves to %s", ErrPathTraversal, name, target)
	}
	return target, nil
}

// lookupError maps a missing file to ErrStyleNotFound and anything else to ErrAssetRead.
func lookupError(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return fmt.Errorf("%w: %v", ErrAssetRead, err)
}

var _ AssetLoader = (*FilesystemLoader)(nil)
