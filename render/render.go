// 把一帧快照画成图片
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/hoshinonyaruko/snake-sim/memimg"
	"github.com/hoshinonyaruko/snake-sim/structs"
)

var (
	background = color.RGBA{0, 255, 0, 255}
	gridLine   = color.RGBA{0, 220, 0, 255}
)

// Palette 每种格子对应的颜色
func Palette(c structs.Category) color.Color {
	switch c {
	case structs.BodySegment:
		return color.RGBA{0, 0, 255, 255}
	case structs.Waste:
		return color.RGBA{140, 70, 20, 255}
	case structs.Healing:
		return color.RGBA{255, 255, 255, 255}
	case structs.Hazard:
		return color.RGBA{255, 0, 0, 255}
	default:
		return color.Black
	}
}

// Frame 渲染一帧。half为格子半边长，scale为放大倍数。
func Frame(f structs.Frame, half float64, scale int) image.Image {
	width := int(math.Ceil(f.Width))
	height := int(math.Ceil(f.Height))

	dc := gg.NewContext(width, height)
	dc.DrawImage(backgroundLayer(width, height, int(2*half)), 0, 0)

	// 先画地图物品，再画蛇，蛇头最后画保证在最上层
	for _, item := range f.Items {
		drawCell(dc, item, half)
	}
	for i := len(f.Body) - 1; i >= 0; i-- {
		drawCell(dc, f.Body[i], half)
	}

	img := dc.Image()
	if f.Dead {
		// 死亡时模糊背景
		img = imaging.Blur(img, 2)
	}
	if scale > 1 {
		img = imaging.Resize(img, width*scale, height*scale, imaging.NearestNeighbor)
	}

	hud := gg.NewContextForImage(img)
	drawHUD(hud, f)
	return hud.Image()
}

// EncodePNG 渲染并写出PNG
func EncodePNG(w io.Writer, f structs.Frame, half float64, scale int) error {
	if err := png.Encode(w, Frame(f, half, scale)); err != nil {
		return fmt.Errorf("encode frame %d: %w", f.Tick, err)
	}
	return nil
}

func drawCell(dc *gg.Context, s structs.Segment, half float64) {
	dc.SetColor(Palette(s.Category))
	dc.DrawRectangle(s.X-half, s.Y-half, 2*half, 2*half)
	dc.Fill()
}

func drawHUD(dc *gg.Context, f structs.Frame) {
	dc.SetRGB(0, 0, 0)
	dc.DrawString(fmt.Sprintf("health %d  score %d", f.Health, f.Score), 4, 14)
	if f.Dead {
		w, h := float64(dc.Width()), float64(dc.Height())
		dc.DrawStringAnchored("GAME OVER", w/2, h/2, 0.5, 0.5)
		dc.DrawStringAnchored("restart to play again", w/2, h/2+16, 0.5, 0.5)
	}
}

// backgroundLayer 背景和网格不变，缓存起来
func backgroundLayer(width, height, blockSize int) image.Image {
	key := fmt.Sprintf("background_%dx%d_%d", width, height, blockSize)
	return memimg.GetOrBuild(key, func() image.Image {
		dc := gg.NewContext(width, height)
		dc.SetColor(background)
		dc.Clear()
		renderGrid(dc, width, height, blockSize)
		return dc.Image()
	})
}

func renderGrid(dc *gg.Context, width, height, blockSize int) {
	if blockSize <= 0 {
		return
	}
	dc.SetColor(gridLine)
	for x := 0; x <= width; x += blockSize {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += blockSize {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}
