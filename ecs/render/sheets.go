package render

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/assets"
)

var ErrSheetNotFound = errors.New("render: sprite sheet not found")

// Sheets caches decoded sprite sheets by name. A sheet is looked up in the
// embedded assets first, then in each search directory in order.
type Sheets struct {
	dirs   []string
	images map[string]*ebiten.Image
}

func NewSheets(dirs ...string) *Sheets {
	s := &Sheets{images: map[string]*ebiten.Image{}}
	for _, dir := range dirs {
		if dir != "" {
			s.dirs = append(s.dirs, dir)
		}
	}
	return s
}

// Get returns a loaded sheet, or nil.
func (s *Sheets) Get(name string) *ebiten.Image {
	if s == nil || name == "" {
		return nil
	}
	return s.images[name]
}

// Load decodes and caches name. A cached sheet is returned as is; use
// Reload to pick up an edited file.
func (s *Sheets) Load(name string) (*ebiten.Image, error) {
	if img := s.Get(name); img != nil {
		return img, nil
	}
	return s.Reload(name)
}

func (s *Sheets) Reload(name string) (*ebiten.Image, error) {
	if s == nil {
		return nil, ErrSheetNotFound
	}
	if name == "" {
		return nil, fmt.Errorf("render: empty sheet name: %w", ErrSheetNotFound)
	}
	img, err := s.decode(name)
	if err != nil {
		return nil, err
	}
	sheet := ebiten.NewImageFromImage(img)
	s.images[name] = sheet
	return sheet, nil
}

// decode prefers files in the search directories so edited sheets shadow
// the embedded copy.
func (s *Sheets) decode(name string) (image.Image, error) {
	for _, dir := range s.dirs {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		img, _, err := image.Decode(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("render: decode %s: %w", name, err)
		}
		return img, nil
	}
	if img, err := assets.DecodeImage(name); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("render: %s: %w", name, ErrSheetNotFound)
}
