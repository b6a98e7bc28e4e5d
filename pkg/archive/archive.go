// Package archive packs an installed package directory into a distributable
// tarball and extracts such archives for local installation.
package archive

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/gopu-inc/initpkg/pkg/fsutil"
	"github.com/mholt/archives"
)

// Extension is the suffix of archives produced by Pack.
const Extension = ".tar.gz"

// IsArchive reports whether the path looks like a supported package archive.
func IsArchive(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".tar.gz") ||
		strings.HasSuffix(lower, ".tgz") ||
		strings.HasSuffix(lower, ".zip")
}

// Pack archives the contents of srcDir into a gzip-compressed tarball at
// outPath. The archive holds the directory contents at its root, so
// extracting yields the package files directly.
func Pack(ctx context.Context, srcDir, outPath string) error {
	if info, err := os.Stat(srcDir); err != nil {
		return errors.Wrapf(err, "cannot read source directory %s", srcDir)
	} else if !info.IsDir() {
		return errors.Wrapf(os.ErrInvalid, "source %s is not a directory", srcDir)
	}

	files, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		srcDir + string(os.PathSeparator): "",
	})
	if err != nil {
		return errors.Wrap(err, "failed to collect package files")
	}

	if err := fsutil.EnsureFileDir(outPath); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "failed to create archive %s", outPath)
	}

	format := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
	}
	if err := format.Archive(ctx, out, files); err != nil {
		_ = out.Close()
		_ = os.Remove(outPath)
		return errors.Wrap(err, "failed to write archive")
	}
	return out.Close()
}

// Extract unpacks a package archive into destDir. An existing destDir is
// removed first: extraction replaces, it does not merge. Entries that would
// escape destDir are rejected.
func Extract(ctx context.Context, archivePath, destDir string) error {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return errors.Wrapf(err, "cannot open archive %s", archivePath)
	}

	if err := os.RemoveAll(destDir); err != nil {
		return errors.Wrapf(err, "failed to remove existing destination %s", destDir)
	}
	if err := fsutil.EnsureDir(destDir); err != nil {
		return errors.Wrapf(err, "failed to create destination %s", destDir)
	}

	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == "." {
			return nil
		}

		target := filepath.Join(destDir, filepath.FromSlash(p))
		// Guard against ../ escapes baked into archive entry names.
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return errors.Wrapf(os.ErrInvalid, "archive entry %q escapes destination", p)
		}

		if d.IsDir() {
			return fsutil.EnsureDir(target)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		in, err := fsys.Open(p)
		if err != nil {
			return errors.Wrapf(err, "failed to read archive entry %s", p)
		}
		defer func() { _ = in.Close() }()

		if err := fsutil.EnsureFileDir(target); err != nil {
			return err
		}
		out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", target)
		}
		if _, err := io.Copy(out, in); err != nil {
			_ = out.Close()
			return errors.Wrapf(err, "failed to extract %s", p)
		}
		return out.Close()
	})
}
