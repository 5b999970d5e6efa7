package pkg

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return isDir == stat.IsDir(), nil
}

// EnsureDir creates dir if missing. It fails when path exists as a file.
func EnsureDir(dir string) error {
	exists, err := PathExists(dir, true)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if fileExists, _ := PathExists(dir, false); fileExists {
		return fmt.Errorf("%s is a file, not a directory", dir)
	}
	return os.MkdirAll(dir, 0o755)
}

// Compress writes src as a gzipped tarball to buf, with names relative to src.
func Compress(src string, buf io.Writer) (err error) {
	// tar > gzip > buf
	gzipWriter := gzip.NewWriter(buf)
	tarWriter := tar.NewWriter(gzipWriter)

	walkErr := filepath.Walk(src, func(file string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, file)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		header, err := tar.FileInfoHeader(fi, file)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)

		if err := tarWriter.WriteHeader(header); err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		data, err := os.Open(file)
		if err != nil {
			return err
		}
		_, copyErr := io.Copy(tarWriter, data)
		return multierr.Append(copyErr, data.Close())
	})
	if walkErr != nil {
		return walkErr
	}

	// produce tar, then gzip
	return multierr.Append(tarWriter.Close(), gzipWriter.Close())
}
