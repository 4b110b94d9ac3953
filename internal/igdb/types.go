package igdb

// Raw shapes of the catalog's JSON responses. Fields not requested in the
// query bodies arrive zero-valued.

// Image is a cover, screenshot or artwork reference. URLs come back
// protocol-relative pointing at t_thumb variants.
type Image struct {
	URL string `json:"url"`
}

// Video is a catalog video reference; only the platform video id is used.
type Video struct {
	VideoID string `json:"video_id"`
}

// Named is a genre or platform sub-object.
type Named struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CompanyInfo is the nested company payload of an involved-company entry.
type CompanyInfo struct {
	Name      string `json:"name"`
	Country   *int   `json:"country"`
	StartDate *int64 `json:"start_date"`
}

// InvolvedCompany ties a company to a game with role flags.
type InvolvedCompany struct {
	Company   CompanyInfo `json:"company"`
	Developer bool        `json:"developer"`
	Publisher bool        `json:"publisher"`
}

// DLC is a downloadable-content entry of the extended game payload.
type DLC struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// Game is a raw catalog game record. Search responses populate only the
// list-search fields; GetByID responses carry the extended set.
type Game struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Summary           string            `json:"summary"`
	Cover             *Image            `json:"cover"`
	Screenshots       []Image           `json:"screenshots"`
	Artworks          []Image           `json:"artworks"`
	Videos            []Video           `json:"videos"`
	AggregatedRating  float64           `json:"aggregated_rating"`
	FirstReleaseDate  int64             `json:"first_release_date"`
	Genres            []Named           `json:"genres"`
	Platforms         []Named           `json:"platforms"`
	InvolvedCompanies []InvolvedCompany `json:"involved_companies"`
	DLCs              []DLC             `json:"dlcs"`
}
