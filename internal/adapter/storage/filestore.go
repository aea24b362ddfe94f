// Package storage persists generated illustrations on the local filesystem
// and derives fixed-size thumbnails from them.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // decoders registered for image.Decode
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/heartmarshall/dreamr-backend/internal/config"
)

// FileStore writes images under Dir and thumbnails under Dir/ThumbDir.
type FileStore struct {
	dir      string
	thumbDir string
	width    int
	height   int
	log      *slog.Logger
}

// NewFileStore creates the storage directories if needed.
func NewFileStore(cfg config.StorageConfig, logger *slog.Logger) (*FileStore, error) {
	s := &FileStore{
		dir:      cfg.Dir,
		thumbDir: filepath.Join(cfg.Dir, cfg.ThumbDir),
		width:    cfg.ThumbWidth,
		height:   cfg.ThumbHeight,
		log:      logger.With("adapter", "storage"),
	}
	for _, d := range []string{s.dir, s.thumbDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create %s: %w", d, err)
		}
	}
	return s, nil
}

// Dir is the root served at the public image URL.
func (s *FileStore) Dir() string { return s.dir }

// Save writes data under a fresh random name and returns that name. The file
// is written to a temporary path first and renamed, so readers never observe
// a partial image.
func (s *FileStore) Save(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + extension(data)
	final := filepath.Join(s.dir, name)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("storage: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("storage: close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("storage: rename %s: %w", name, err)
	}

	s.log.DebugContext(ctx, "image saved", slog.String("file", name), slog.Int("bytes", len(data)))
	return name, nil
}

// Thumbnail decodes the stored image name, scales it to fit the configured
// box preserving aspect ratio, and writes a PNG of the same base name into
// the thumbnail directory.
func (s *FileStore) Thumbnail(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return Resize(filepath.Join(s.dir, name), filepath.Join(s.thumbDir, thumbName(name)), s.width, s.height)
}

// Remove deletes an image and its thumbnail. Missing files are not an error.
func (s *FileStore) Remove(ctx context.Context, name string) error {
	var errs []error
	for _, p := range []string{filepath.Join(s.dir, name), filepath.Join(s.thumbDir, thumbName(name))} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("storage: remove %s: %w", name, err)
	}
	s.log.DebugContext(ctx, "image removed", slog.String("file", name))
	return nil
}

// Resize reads the image at in and writes a PNG scaled to fit w x h to out.
func Resize(in, out string, w, h int) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("storage: open %s: %w", in, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("storage: decode %s: %w", in, err)
	}

	b := src.Bounds()
	tw, th := fit(b.Dx(), b.Dy(), w, h)
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return fmt.Errorf("storage: encode thumbnail: %w", err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", out, err)
	}
	return nil
}

// fit scales (sw, sh) down into the (w, h) box. Images already inside the box
// keep their size.
func fit(sw, sh, w, h int) (int, int) {
	if sw <= w && sh <= h {
		return sw, sh
	}
	if sw*h > sh*w {
		return w, max(1, sh*w/sw)
	}
	return max(1, sw*h/sh), h
}

func thumbName(name string) string {
	return name[:len(name)-len(filepath.Ext(name))] + ".png"
}

func extension(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
