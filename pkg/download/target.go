package download

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

type target struct {
	finalPath string
	partPath  string
	// fresh targets are truncated when opened; resumed ones keep their bytes.
	fresh bool
}

func newTarget(dir, name string, fresh bool) target {
	final := filepath.Join(dir, name)
	return target{finalPath: final, partPath: final + partSuffix, fresh: fresh}
}

// resolveTarget picks the file name to download into. An absent name is used
// as is. A zero-length file with the same name is an interrupted download and
// is resumed. A non-empty file is kept and the download is written to
// "<stem>_(n)<ext>" instead, n being the number of non-empty files already in
// that name family.
func (e *Engine) resolveTarget(dir, name string) (target, error) {
	exists, err := afero.DirExists(e.fs, dir)
	if err != nil {
		return target{}, fmt.Errorf("%w: stat %s: %w", ErrIO, dir, err)
	}
	if !exists {
		if err := e.fs.MkdirAll(dir, 0o755); err != nil {
			return target{}, fmt.Errorf("%w: create %s: %w", ErrIO, dir, err)
		}
		return newTarget(dir, name, true), nil
	}

	size, found, err := e.sizeOf(filepath.Join(dir, name))
	if err != nil {
		return target{}, err
	}
	if !found {
		return newTarget(dir, name, true), nil
	}
	if size == 0 {
		return newTarget(dir, name, false), nil
	}

	n, err := e.countFamily(dir, name)
	if err != nil {
		return target{}, err
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for ; ; n++ {
		candidate := fmt.Sprintf("%s_(%d)%s", stem, n, ext)
		size, found, err := e.sizeOf(filepath.Join(dir, candidate))
		if err != nil {
			return target{}, err
		}
		if !found {
			return newTarget(dir, candidate, true), nil
		}
		if size == 0 {
			return newTarget(dir, candidate, false), nil
		}
	}
}

func (e *Engine) sizeOf(path string) (int64, bool, error) {
	info, err := e.fs.Stat(path)
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: stat %s: %w", ErrIO, path, err)
	}
	if info.IsDir() {
		return 0, false, fmt.Errorf("%w: %s is a directory", ErrIO, path)
	}
	return info.Size(), true, nil
}

// countFamily counts non-empty regular files named name or "<stem>_(k)<ext>".
func (e *Engine) countFamily(dir, name string) (int, error) {
	entries, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		return 0, fmt.Errorf("%w: read %s: %w", ErrIO, dir, err)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	family := regexp.MustCompile(`^` + regexp.QuoteMeta(stem) + `_\(\d+\)` + regexp.QuoteMeta(ext) + `$`)

	n := 0
	for _, entry := range entries {
		if entry.IsDir() || entry.Size() == 0 {
			continue
		}
		if entry.Name() == name || family.MatchString(entry.Name()) {
			n++
		}
	}
	return n, nil
}
