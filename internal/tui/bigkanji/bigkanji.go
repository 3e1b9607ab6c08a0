// Package bigkanji renders a kanji as large half-block art for the token
// inspector, rasterizing a system CJK font.
package bigkanji

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontPaths are the system locations searched for a font with Japanese
// glyph coverage, in preference order.
var fontPaths = []string{
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/opentype/ipafont-gothic/ipag.ttf",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// macOS
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msgothic.ttc",
	"C:\\Windows\\Fonts\\meiryo.ttc",
}

var (
	faceOnce sync.Once
	face     font.Face

	cacheMu sync.Mutex
	cache   = make(map[string]string)
)

func loadFace() {
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
			if fnt, err := coll.Font(0); err == nil {
				if f, err := opentype.NewFace(fnt, opts); err == nil {
					face = f
					return
				}
			}
		}
		if fnt, err := opentype.Parse(data); err == nil {
			if f, err := opentype.NewFace(fnt, opts); err == nil {
				face = f
				return
			}
		}
	}
}

// Available reports whether a usable CJK font was found. The first call
// probes the filesystem.
func Available() bool {
	faceOnce.Do(loadFace)
	return face != nil
}

// Render draws the first rune of s as half-block art filling cols x rows
// terminal cells. Renders are cached; without a font the result is empty.
func Render(s string, cols, rows int) string {
	if s == "" || cols <= 0 || rows <= 0 || !Available() {
		return ""
	}
	key := s
	if cached, ok := lookupCache(key, cols, rows); ok {
		return cached
	}
	out := rasterize([]rune(s)[0], cols, rows)
	storeCache(key, cols, rows, out)
	return out
}

func lookupCache(key string, cols, rows int) (string, bool) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	v, ok := cache[cacheKey(key, cols, rows)]
	return v, ok
}

func storeCache(key string, cols, rows int, v string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache[cacheKey(key, cols, rows)] = v
}

func cacheKey(key string, cols, rows int) string {
	return fmt.Sprintf("%s\x00%d:%d", key, cols, rows)
}

func rasterize(r rune, cols, rows int) string {
	bounds, _, ok := face.GlyphBounds(r)
	if !ok {
		return ""
	}
	glyphW := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	const pad = 4
	srcW := max(glyphW+pad*2, 64)
	srcH := max(glyphH+pad*2, 64)

	img := image.NewGray(image.Rect(0, 0, srcW, srcH))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P((srcW-glyphW)/2, srcH-pad-bounds.Max.Y.Ceil()),
	}
	d.DrawString(string(r))

	// Half blocks pack two pixel rows per cell.
	return toHalfBlocks(scale(img, cols, rows*2), cols, rows)
}

// scale shrinks a grayscale image by area averaging.
func scale(src *image.Gray, dstW, dstH int) *image.Gray {
	srcW := src.Bounds().Max.X
	srcH := src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, dstW, dstH))

	xr := float64(srcW) / float64(dstW)
	yr := float64(srcH) / float64(dstH)
	for dy := 0; dy < dstH; dy++ {
		for dx := 0; dx < dstW; dx++ {
			sx1, sy1 := int(float64(dx)*xr), int(float64(dy)*yr)
			sx2, sy2 := min(int(float64(dx+1)*xr), srcW), min(int(float64(dy+1)*yr), srcH)
			sum, n := 0, 0
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					n++
				}
			}
			if n > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / n)})
			}
		}
	}
	return dst
}

func toHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = 40
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
