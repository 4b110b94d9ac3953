package igdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCoverURL(t *testing.T) {
	game := &Game{
		ID:    42,
		Name:  "Hollow Knight",
		Cover: &Image{URL: "//images.igdb.com/igdb/image/upload/t_thumb/co1rgi.jpg"},
	}

	result := Normalize(game)

	assert.Equal(t, "https://images.igdb.com/igdb/image/upload/t_cover_big/co1rgi.jpg", result.CoverURL)
	assert.Equal(t, int64(42), result.ID)
	assert.Equal(t, "Hollow Knight", result.Name)
}

func TestNormalizeNoCover(t *testing.T) {
	result := Normalize(&Game{ID: 1, Name: "Obscure Title"})

	assert.Empty(t, result.CoverURL)
	assert.Empty(t, result.Screenshots)
	assert.Empty(t, result.Videos)
}

func TestNormalizePrefersArtworksOverScreenshots(t *testing.T) {
	game := &Game{
		ID:   7,
		Name: "Celeste",
		Screenshots: []Image{
			{URL: "//images.igdb.com/t_thumb/shot1.jpg"},
		},
		Artworks: []Image{
			{URL: "//images.igdb.com/t_thumb/art1.jpg"},
			{URL: "//images.igdb.com/t_thumb/art2.jpg"},
		},
	}

	result := Normalize(game)

	assert.Equal(t, []string{
		"https://images.igdb.com/t_screenshot_med/art1.jpg",
		"https://images.igdb.com/t_screenshot_med/art2.jpg",
	}, result.Screenshots)
}

func TestNormalizeFallsBackToScreenshots(t *testing.T) {
	game := &Game{
		ID:   7,
		Name: "Celeste",
		Screenshots: []Image{
			{URL: "//images.igdb.com/t_thumb/shot1.jpg"},
		},
	}

	result := Normalize(game)

	assert.Equal(t, []string{"https://images.igdb.com/t_screenshot_med/shot1.jpg"}, result.Screenshots)
}

func TestNormalizeVideoURLs(t *testing.T) {
	game := &Game{
		ID:   9,
		Name: "Outer Wilds",
		Artworks: []Image{
			{URL: "//images.igdb.com/t_thumb/art1.jpg"},
		},
		Videos: []Video{
			{VideoID: "d6LGnVCL1_A"},
			{VideoID: ""},
		},
	}

	result := Normalize(game)

	assert.Equal(t, []string{"https://www.youtube.com/watch?v=d6LGnVCL1_A"}, result.Videos)
	// A screenshot exists, so no thumbnail fallback is added.
	assert.Len(t, result.Screenshots, 1)
}

func TestNormalizeVideoThumbnailFallback(t *testing.T) {
	game := &Game{
		ID:     9,
		Name:   "Outer Wilds",
		Videos: []Video{{VideoID: "d6LGnVCL1_A"}},
	}

	result := Normalize(game)

	assert.Equal(t, []string{"https://img.youtube.com/vi/d6LGnVCL1_A/hqdefault.jpg"}, result.Screenshots)
	assert.Equal(t, []string{"https://www.youtube.com/watch?v=d6LGnVCL1_A"}, result.Videos)
}
