package syspath

import (
	"fmt"
	"os"

	"github.com/arloliu/unistr/errs"
)

func stat(p Path, resolveLinks bool) (os.FileInfo, error) {
	if resolveLinks {
		return os.Stat(osPath(p))
	}

	return os.Lstat(osPath(p))
}

// Exists reports whether p names an existing filesystem entry. With resolveLinks
// a symbolic link counts only if its target exists.
func Exists(p Path, resolveLinks bool) bool {
	_, err := stat(p, resolveLinks)
	return err == nil
}

// IsFile reports whether p names a regular file.
func IsFile(p Path, resolveLinks bool) bool {
	st, err := stat(p, resolveLinks)
	return err == nil && st.Mode().IsRegular()
}

// IsDirectory reports whether p names a directory.
func IsDirectory(p Path, resolveLinks bool) bool {
	st, err := stat(p, resolveLinks)
	return err == nil && st.IsDir()
}

// IsSymbolicLink reports whether p itself is a symbolic link.
func IsSymbolicLink(p Path) bool {
	st, err := os.Lstat(osPath(p))
	return err == nil && st.Mode()&os.ModeSymlink != 0
}

// CreateDirectory creates the single directory p. Its parent must exist.
//
// Returns:
//   - bool: true if the directory was created, false if it already existed
//   - error: errs.ErrAmbiguousPath if p exists but is not a directory, or the
//     underlying mkdir error
func CreateDirectory(p Path) (bool, error) {
	if Exists(p, true) {
		if !IsDirectory(p, true) {
			return false, fmt.Errorf("%w: %s exists and is not a directory", errs.ErrAmbiguousPath, p)
		}

		return false, nil
	}

	if err := os.Mkdir(osPath(p), 0o777); err != nil {
		return false, fmt.Errorf("syspath: create directory %s: %w", p, err)
	}

	return true, nil
}

// CreateParents creates every missing ancestor directory of p, outermost first.
// p itself is not created.
func CreateParents(p Path) error {
	for i := 1; i < p.Len(); i++ {
		if _, err := CreateDirectory(New(p.components[:i]...)); err != nil {
			return err
		}
	}

	return nil
}
