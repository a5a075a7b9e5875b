package pkg

import (
	"errors"
	"io/fs"
	"os"
)

// MaxRequestBodyBytes caps every request body. Record payloads are small
// JSON objects.
const MaxRequestBodyBytes = 1 << 20

// Ptr returns a pointer to a copy of v, handy for optional request fields.
func Ptr[T any](v T) *T {
	return &v
}

// DirExists reports whether path exists and is a directory. A missing path
// is not an error.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
