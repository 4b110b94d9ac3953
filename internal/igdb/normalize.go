package igdb

import (
	"fmt"
	"strings"
)

// GameResult is the normalized, presentation-ready shape of a catalog game.
type GameResult struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Summary     string   `json:"summary,omitempty"`
	CoverURL    string   `json:"cover_url,omitempty"`
	Screenshots []string `json:"screenshots"`
	Videos      []string `json:"videos"`
}

// Catalog image URLs are protocol-relative t_thumb variants; requesting a
// larger size is a plain token substitution.
func upscale(url, size string) string {
	return "https:" + strings.Replace(url, "t_thumb", size, 1)
}

// Normalize converts a raw catalog game into a GameResult. Artworks are
// preferred over screenshots; when neither exists but a video is present,
// the video's generated thumbnail becomes the sole image.
func Normalize(g *Game) GameResult {
	result := GameResult{
		ID:          g.ID,
		Name:        g.Name,
		Summary:     g.Summary,
		Screenshots: []string{},
		Videos:      []string{},
	}

	if g.Cover != nil && g.Cover.URL != "" {
		result.CoverURL = upscale(g.Cover.URL, "t_cover_big")
	}

	for _, art := range g.Artworks {
		if art.URL != "" {
			result.Screenshots = append(result.Screenshots, upscale(art.URL, "t_screenshot_med"))
		}
	}
	if len(result.Screenshots) == 0 {
		for _, shot := range g.Screenshots {
			if shot.URL != "" {
				result.Screenshots = append(result.Screenshots, upscale(shot.URL, "t_screenshot_med"))
			}
		}
	}

	for _, vid := range g.Videos {
		if vid.VideoID == "" {
			continue
		}
		result.Videos = append(result.Videos, fmt.Sprintf("https://www.youtube.com/watch?v=%s", vid.VideoID))
		if len(result.Screenshots) == 0 {
			result.Screenshots = append(result.Screenshots,
				fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", vid.VideoID))
		}
	}

	return result
}
