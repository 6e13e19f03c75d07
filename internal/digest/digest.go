package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// domain separates tree digests from any other SHA-256 in the project.
const domain = "boxcar/tree/v1"

// Files hashes every regular file under dir, keyed by slash path relative to
// dir. Paths listed in exclude are skipped; an excluded directory skips
// everything beneath it.
func Files(dir string, exclude ...string) (map[string]string, error) {
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[path.Clean(filepath.ToSlash(e))] = true
	}

	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if skip[rel] {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		sum, err := hashFile(p)
		if err != nil {
			return err
		}
		files[rel] = sum
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("digest %s: %w", dir, err)
	}
	return files, nil
}

// Tree returns the digest of the files under dir.
func Tree(dir string, exclude ...string) (string, error) {
	files, err := Files(dir, exclude...)
	if err != nil {
		return "", err
	}
	return Sum(files)
}

// Sum returns the digest of a path to content-hash map.
func Sum(files map[string]string) (string, error) {
	canonical, err := MarshalCanonical(files)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Diff lists the paths whose hashes differ between a and b, including paths
// present in only one of them, sorted.
func Diff(a, b map[string]string) []string {
	var out []string
	for p, sum := range a {
		if b[p] != sum {
			out = append(out, p)
		}
	}
	for p := range b {
		if _, ok := a[p]; !ok {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func hashFile(p string) (string, error) {
	f, err := os.Open(p)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
