package session

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// State carries everything derived from one input file. When the content
// hash changes, every derived field is stale and must be cleared together so
// a previous file's transcript or summary is never shown against new audio.
type State struct {
	Hash          string
	Transcript    string
	Summary       string
	ConvertedPath string
}

// Invalidate resets the derived fields if newHash differs from the stored
// hash. Returns true when the state was reset.
func (s *State) Invalidate(newHash string) bool {
	if s.Hash == newHash {
		return false
	}

	s.Hash = newHash
	s.Transcript = ""
	s.Summary = ""
	s.ConvertedPath = ""
	return true
}

// HashFile computes the MD5 content hash used for change detection, reading
// in 4 KiB chunks.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hashing: %w", err)
	}
	defer f.Close()

	hasher := md5.New()
	if _, err := io.CopyBuffer(hasher, f, make([]byte, 4096)); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
