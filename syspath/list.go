package syspath

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/arloliu/unistr/ustr"
)

// List returns the entries of directory p as child paths, sorted by name.
//
// A p that does not name a directory, including a symbolic link to one, yields no
// entries. The "." and ".." entries are never returned.
//
// Returns:
//   - []Path: One path per entry, each p joined with the entry name
//   - error: errs.ErrConversionData if an entry name is not valid UTF-8, or the
//     underlying read error
func List(p Path) ([]Path, error) {
	if !IsDirectory(p, false) {
		return nil, nil
	}
	dir := osPath(p)

	names, err := godirwalk.ReadDirnames(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("syspath: list %s: %w", dir, err)
	}

	out := make([]Path, 0, len(names))
	for _, name := range names {
		c, err := component(dir, name)
		if err != nil {
			return nil, err
		}
		out = append(out, p.Joined(New(c)))
	}
	slices.SortFunc(out, Path.Compare)

	return out, nil
}

// ListRecursive returns every entry below directory p in depth-first order: each
// directory is followed by its own entries, siblings are sorted by name. Symbolic
// links are listed but not followed.
//
// Returns:
//   - []Path: Descendant paths, each rooted at p
//   - error: errs.ErrConversionData if any name is not valid UTF-8, or the walk error
func ListRecursive(p Path) ([]Path, error) {
	if !IsDirectory(p, false) {
		return nil, nil
	}
	root := filepath.Clean(osPath(p))

	var out []Path
	var nameErr error
	err := godirwalk.Walk(root, &godirwalk.Options{
		FollowSymbolicLinks: false,
		Callback: func(osPathname string, _ *godirwalk.Dirent) error {
			if osPathname == root {
				return nil
			}

			rel, err := filepath.Rel(root, osPathname)
			if err != nil {
				return err
			}

			child := New(p.components...)
			for _, name := range strings.Split(rel, string(filepath.Separator)) {
				c, err := component(osPathname, name)
				if err != nil {
					nameErr = err
					return err
				}
				child.Join(c)
			}
			out = append(out, child)

			return nil
		},
	})
	if nameErr != nil {
		return nil, nameErr
	}
	if err != nil {
		return nil, fmt.Errorf("syspath: walk %s: %w", root, err)
	}

	return out, nil
}

func component(where, name string) (ustr.String, error) {
	c, err := ustr.FromString(name)
	if err != nil {
		return ustr.String{}, fmt.Errorf("syspath: entry %q in %s: %w", name, where, err)
	}

	return c, nil
}

func osPath(p Path) string {
	if p.IsEmpty() {
		return "."
	}

	return p.String()
}
