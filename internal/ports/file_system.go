package ports

import "os"

type FileSystem interface {
	Exists(path string) (bool, error)
	// WriteFileAtomic replaces path with data in full.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error
}
