// Package fixtures holds the static seed data the application starts
// from. Each accessor returns a fresh copy, so callers may mutate their
// slice freely.
package fixtures

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"time"

	"github.com/erazemk/najdeno/internal/model"
)

// Users returns the fixed user set. Exactly one user is an admin.
func Users() []model.User {
	return []model.User{
		{ID: 1, Name: "Admin User", Email: "admin@example.com", Role: model.RoleAdmin},
		{ID: 2, Name: "John Doe", Email: "john@example.com", Role: model.RoleUser},
		{ID: 3, Name: "Jane Smith", Email: "jane@example.com", Role: model.RoleUser},
	}
}

// DefaultUserID is the user attributed to actions taken without an
// explicit role selection.
const DefaultUserID int64 = 2

// Categories returns the initial category set.
func Categories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Electronics"},
		{ID: 2, Name: "Documents"},
		{ID: 3, Name: "Jewelry"},
		{ID: 4, Name: "Clothing"},
		{ID: 5, Name: "Keys"},
		{ID: 6, Name: "Others"},
	}
}

// Items returns the initial item reports.
func Items() []model.Item {
	photo := placeholderPNG()
	return []model.Item{
		{
			ID:          1,
			Name:        "iPhone 14 Pro",
			Description: "Black iPhone 14 Pro with a small scratch on the top left corner. Has a clear case.",
			CategoryID:  1,
			Status:      model.StatusLost,
			Location:    "Central Park",
			ReportedAt:  date(2023, 10, 26),
			Image:       photo,
			ImageMime:   "image/png",
			UserID:      2,
		},
		{
			ID:          2,
			Name:        "Brown Leather Wallet",
			Description: "A standard brown leather wallet containing various cards and a small amount of cash. ID for Jane Smith inside.",
			CategoryID:  2,
			Status:      model.StatusFound,
			Location:    "Main Street Library",
			ReportedAt:  date(2023, 10, 25),
			Image:       photo,
			ImageMime:   "image/png",
			UserID:      3,
		},
		{
			ID:          3,
			Name:        "Set of Keys",
			Description: "A set of three keys on a silver keychain with a small green fob.",
			CategoryID:  5,
			Status:      model.StatusFound,
			Location:    "City Hall Metro Station",
			ReportedAt:  date(2023, 10, 27),
			UserID:      2,
		},
		{
			ID:          4,
			Name:        "Silver Necklace",
			Description: "A delicate silver chain necklace with a small heart-shaped pendant.",
			CategoryID:  3,
			Status:      model.StatusLost,
			Location:    "Grand Theatre",
			ReportedAt:  date(2023, 10, 24),
			Image:       photo,
			ImageMime:   "image/png",
			UserID:      3,
		},
		{
			ID:          5,
			Name:        "Blue Jacket",
			Description: "A navy blue windbreaker, size medium. Brand is North Face.",
			CategoryID:  4,
			Status:      model.StatusFound,
			Location:    "Airport Terminal B",
			ReportedAt:  date(2023, 10, 28),
			Image:       photo,
			ImageMime:   "image/png",
			UserID:      2,
		},
		{
			ID:          6,
			Name:        "MacBook Air M2",
			Description: "Midnight color MacBook Air. Has a sticker of a mountain range on the lid.",
			CategoryID:  1,
			Status:      model.StatusLost,
			Location:    "Bean Scene Coffee Shop",
			ReportedAt:  date(2023, 10, 28),
			Image:       photo,
			ImageMime:   "image/png",
			UserID:      3,
		},
	}
}

// date builds a calendar date with no time component.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// placeholderPNG encodes a small neutral placeholder photo. The seed
// data needs image payloads but the application boundary has no image
// fetching, so the bytes are generated in-process.
func placeholderPNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding a fixed in-memory image cannot fail.
		panic(err)
	}
	return buf.Bytes()
}
