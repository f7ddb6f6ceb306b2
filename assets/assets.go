// Package assets contains the sounds of the demo scene and the plumbing for
// replacing them with files from disk.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed *.wav
var embedded embed.FS

// Embedded returns the sounds compiled into the binary.
func Embedded() fs.FS {
	return embedded
}

// Open returns the bundle to load the assets from: the directory dir if it is
// given, the embedded sounds otherwise.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return embedded, nil
	}
	st, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrInvalid}
	}
	return os.DirFS(dir), nil
}
