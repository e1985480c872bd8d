// Package sonarr provides a client for the Sonarr v3 REST API.
package sonarr

// QualityProfile is a named quality preset.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Series is a series tracked by Sonarr. Only the fields trendarr reads are decoded.
type Series struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Year             int    `json:"year"`
	TVDBID           int    `json:"tvdbId"`
	QualityProfileID int    `json:"qualityProfileId"`
	Monitored        bool   `json:"monitored"`
	Path             string `json:"path,omitempty"`
}

// RootFolder is a library root directory configured in Sonarr.
type RootFolder struct {
	ID        int    `json:"id"`
	Path      string `json:"path"`
	FreeSpace int64  `json:"freeSpace"`
}

// Image is artwork attached to a series.
type Image struct {
	CoverType string `json:"coverType"`
	URL       string `json:"url,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

// Season is a season entry with its monitoring flag.
type Season struct {
	SeasonNumber int  `json:"seasonNumber"`
	Monitored    bool `json:"monitored"`
}

// AddOptions controls what Sonarr does right after a series is added.
type AddOptions struct {
	IgnoreEpisodesWithFiles    bool `json:"ignoreEpisodesWithFiles"`
	IgnoreEpisodesWithoutFiles bool `json:"ignoreEpisodesWithoutFiles"`
	SearchForMissingEpisodes   bool `json:"searchForMissingEpisodes"`
}

// NewSeriesRequest is the body of POST /series.
type NewSeriesRequest struct {
	TVDBID           int        `json:"tvdbId"`
	Title            string     `json:"title"`
	TitleSlug        string     `json:"titleSlug"`
	Year             int        `json:"year"`
	QualityProfileID int        `json:"qualityProfileId"`
	RootFolderPath   string     `json:"rootFolderPath"`
	SeriesType       string     `json:"seriesType,omitempty"`
	Monitored        bool       `json:"monitored"`
	SeasonFolder     bool       `json:"seasonFolder"`
	Images           []Image    `json:"images"`
	Seasons          []Season   `json:"seasons"`
	AddOptions       AddOptions `json:"addOptions"`
}

// lookupResult is one element of GET /series/lookup.
type lookupResult struct {
	Title      string   `json:"title"`
	TitleSlug  string   `json:"titleSlug"`
	Year       int      `json:"year"`
	TVDBID     int      `json:"tvdbId"`
	SeriesType string   `json:"seriesType"`
	Images     []Image  `json:"images"`
	Seasons    []Season `json:"seasons"`
}
