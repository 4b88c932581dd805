package backup

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Archive writes the given data files into a tar.xz archive at outPath. File
// names are stored flat so the archive restores into any data folder.
func Archive(outPath string, files []string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer out.Close()

	xzw, err := xz.NewWriter(out)
	if err != nil {
		return fmt.Errorf("opening xz stream: %w", err)
	}
	tw := tar.NewWriter(xzw)

	for _, path := range files {
		if err := addFile(tw, path); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return xzw.Close()
}

func addFile(tw *tar.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = filepath.Base(path)

	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err = io.Copy(tw, f)
	return err
}

// Restore unpacks a tar.xz archive into dataDir, overwriting existing files.
// Entries with path separators are rejected; archives are flat by contract.
func Restore(archivePath, dataDir string) error {
	in, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer in.Close()

	xzr, err := xz.NewReader(in)
	if err != nil {
		return fmt.Errorf("opening xz stream: %w", err)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	tr := tar.NewReader(xzr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		if strings.ContainsAny(hdr.Name, `/\`) || hdr.Name == ".." {
			return fmt.Errorf("unexpected archive entry %q", hdr.Name)
		}

		target := filepath.Join(dataDir, hdr.Name)
		out, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
	}
}
