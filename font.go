package gamepaint

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FaceResult is the outcome of a font lookup. Face is always usable;
// Fallback reports that the requested font was not found and a built-in
// face was substituted instead. Path is the file the face was loaded
// from, empty for built-in faces.
type FaceResult struct {
	Face     font.Face
	Path     string
	Fallback bool
}

// fontCache caches parsed font files by path so repeated text calls do
// not re-read and re-parse the same file.
var fontCache = struct {
	sync.Mutex
	fonts map[string]*sfnt.Font
}{fonts: make(map[string]*sfnt.Font)}

// candidateNames are font file names probed relative to each system
// font directory when no explicit path is given.
var candidateNames = []string{
	"DejaVuSans.ttf",
	"dejavu/DejaVuSans.ttf",
	"truetype/dejavu/DejaVuSans.ttf",
	"TTF/DejaVuSans.ttf",
	"Arial.ttf",
	"arial.ttf",
	"liberation/LiberationSans-Regular.ttf",
	"truetype/liberation/LiberationSans-Regular.ttf",
}

var (
	builtinOnce sync.Once
	builtinFont *sfnt.Font

	systemOnce sync.Once
	systemPath string
)

// fontscanLogger routes fontscan warnings to the package logger at
// debug level.
type fontscanLogger struct{}

func (fontscanLogger) Printf(format string, args ...interface{}) {
	Logger().Debug("fontscan: " + fmt.Sprintf(format, args...))
}

var _ fontscan.Logger = fontscanLogger{}

func loadFontFile(path string) (*sfnt.Font, error) {
	fontCache.Lock()
	defer fontCache.Unlock()
	if f, ok := fontCache.fonts[path]; ok {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	fontCache.fonts[path] = f
	return f, nil
}

// findSystemFont scans the platform font directories once and returns
// the path of the first candidate sans-serif font found, or "".
func findSystemFont() string {
	systemOnce.Do(func() {
		dirs, err := fontscan.DefaultFontDirectories(fontscanLogger{})
		if err != nil {
			Logger().Debug("no system font directories", "error", err)
			return
		}
		for _, dir := range dirs {
			for _, name := range candidateNames {
				p := filepath.Join(dir, name)
				if _, err := os.Stat(p); err == nil {
					systemPath = p
					return
				}
			}
		}
	})
	return systemPath
}

func builtinFace(size float64) font.Face {
	builtinOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			// goregular.TTF is a valid embedded font; this cannot
			// happen unless the build is corrupt.
			return
		}
		builtinFont = f
	})
	if builtinFont == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(builtinFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// LookupFace resolves a font face at the given pixel size.
//
// The lookup is two-tier: an explicit path is tried first, then the
// platform font directories are probed for a common sans-serif font,
// and finally a built-in face is substituted. The result always carries
// a usable face; Fallback distinguishes a substituted face from the
// requested one, and a warning is logged when a requested path could
// not be used.
func LookupFace(path string, size float64) FaceResult {
	if size <= 0 {
		size = 12
	}
	if path != "" {
		if f, err := loadFontFile(path); err == nil {
			if face, err := opentype.NewFace(f, &opentype.FaceOptions{
				Size:    size,
				DPI:     72,
				Hinting: font.HintingFull,
			}); err == nil {
				return FaceResult{Face: face, Path: path}
			}
		}
		Logger().Warn("requested font unavailable, falling back", "path", path)
	}
	if p := findSystemFont(); p != "" {
		if f, err := loadFontFile(p); err == nil {
			if face, err := opentype.NewFace(f, &opentype.FaceOptions{
				Size:    size,
				DPI:     72,
				Hinting: font.HintingFull,
			}); err == nil {
				return FaceResult{Face: face, Path: p, Fallback: path != ""}
			}
		}
	}
	return FaceResult{Face: builtinFace(size), Fallback: true}
}
