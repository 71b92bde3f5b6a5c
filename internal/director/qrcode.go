package director

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ivlev/scenegen/internal/scene"
)

// QRRects lays out content as a QR code of rectangles with its top-left
// corner at origin. Horizontally adjacent dark modules are merged into a
// single rectangle. module is the side of one module in pixels (default 4).
func QRRects(content string, origin scene.Vector2, module float64, level string, border bool, color scene.Color) ([]*scene.Rect, error) {
	if content == "" {
		return nil, fmt.Errorf("qr content is empty")
	}
	if module <= 0 {
		module = 4
	}
	lvl, err := parseRecoveryLevel(level)
	if err != nil {
		return nil, err
	}

	q, err := qrcode.New(content, lvl)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	q.DisableBorder = !border

	var rects []*scene.Rect
	for y, row := range q.Bitmap() {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			rects = append(rects, scene.NewRect(
				scene.V2(origin.X+float64(start)*module, origin.Y+float64(y)*module),
				scene.V2(float64(x-start)*module, module),
				color,
			))
		}
	}
	return rects, nil
}

func parseRecoveryLevel(s string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(s) {
	case "low":
		return qrcode.Low, nil
	case "", "medium":
		return qrcode.Medium, nil
	case "high":
		return qrcode.High, nil
	case "highest":
		return qrcode.Highest, nil
	}
	return qrcode.Medium, fmt.Errorf("unknown qr level %q", s)
}
