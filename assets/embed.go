package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *
var assetsFS embed.FS

// FS returns the embedded assets, or the directory dir when it is set.
func FS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return assetsFS
}

// Cache decodes sprite sheets on first use and remembers the ones that could
// not be loaded so the warning is only logged once.
type Cache struct {
	fsys    fs.FS
	images  map[string]*ebiten.Image
	missing map[string]bool

	toImage func(image.Image) *ebiten.Image
}

func NewCache(fsys fs.FS) *Cache {
	return &Cache{
		fsys:    fsys,
		images:  map[string]*ebiten.Image{},
		missing: map[string]bool{},
		toImage: ebiten.NewImageFromImage,
	}
}

// ReadFile loads a raw asset by assets-relative path.
func (c *Cache) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(c.fsys, cleanAssetPath(path))
}

// Decode reads and decodes an image without uploading it.
func (c *Cache) Decode(path string) (image.Image, error) {
	b, err := c.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

// Image returns the sheet for path. ok is false when the file is missing or
// broken; callers draw a placeholder instead.
func (c *Cache) Image(path string) (img *ebiten.Image, ok bool) {
	clean := cleanAssetPath(path)
	if img, ok := c.images[clean]; ok {
		return img, true
	}
	if c.missing[clean] {
		return nil, false
	}
	decoded, err := c.Decode(clean)
	if err != nil {
		log.Printf("assets: load %s: %v (drawing placeholder)", clean, err)
		c.missing[clean] = true
		return nil, false
	}
	img = c.toImage(decoded)
	c.images[clean] = img
	return img, true
}

// Preload loads every path up front and returns the ones that failed.
func (c *Cache) Preload(paths []string) []string {
	for _, p := range paths {
		c.Image(p)
	}
	return c.Missing()
}

// Missing lists the paths that could not be loaded, sorted.
func (c *Cache) Missing() []string {
	out := make([]string, 0, len(c.missing))
	for p := range c.missing {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Forget drops every cached image so edited files are read again.
func (c *Cache) Forget() {
	clear(c.images)
	clear(c.missing)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
