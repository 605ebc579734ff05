package app

import "path/filepath"

// Layout of the data directory.
const (
	lockFile = "hoard.lock"
	modelDir = "model"
)

// LockPath is the file guarding the data directory against concurrent
// hoard processes.
func LockPath(dataDir string) string {
	return filepath.Join(dataDir, lockFile)
}

// ModelRoot is the directory holding one sub-directory of blobs per pulled
// variant.
func ModelRoot(dataDir string) string {
	return filepath.Join(dataDir, modelDir)
}
