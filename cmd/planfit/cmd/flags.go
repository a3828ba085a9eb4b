package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/planfit/planfit/internal/model"
)

// parsePoint parses "x,y" into a Point.
func parsePoint(s string) (model.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return model.Point{}, fmt.Errorf("invalid point %q, expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid x coordinate in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid y coordinate in %q: %w", s, err)
	}
	return model.Point{X: x, Y: y}, nil
}

// parseSize parses "WxH" into width and height.
func parseSize(s string) (float64, float64, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	return w, h, nil
}

// parseArea parses "x,y,w,h" into a PlacementArea in mm.
func parseArea(s string) (model.PlacementArea, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return model.PlacementArea{}, fmt.Errorf("invalid area %q, expected x,y,w,h", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return model.PlacementArea{}, fmt.Errorf("invalid value %q in area: %w", p, err)
		}
		vals[i] = v
	}
	return model.PlacementArea{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}
