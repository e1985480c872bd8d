package trending

import "github.com/vmunix/trendarr/pkg/sonarr"

// SelectQualityProfile returns the first profile whose name equals name exactly.
func SelectQualityProfile(profiles []sonarr.QualityProfile, name string) (sonarr.QualityProfile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}

	available := make([]string, 0, len(profiles))
	for _, p := range profiles {
		available = append(available, p.Name)
	}
	return sonarr.QualityProfile{}, &ConfigurationError{
		Profile:   name,
		Available: available,
		Err:       ErrNoQualityProfile,
	}
}

// Snapshot indexes series by TVDB id. A repeated id replaces the earlier entry.
func Snapshot(series []sonarr.Series) map[int]sonarr.Series {
	tracked := make(map[int]sonarr.Series, len(series))
	for _, s := range series {
		tracked[s.TVDBID] = s
	}
	return tracked
}

// applyAddOptions sets the flags every trending addition is submitted with:
// search for missing episodes right away, and do not skip episodes that have no file yet.
func applyAddOptions(req sonarr.NewSeriesRequest) sonarr.NewSeriesRequest {
	req.AddOptions.IgnoreEpisodesWithoutFiles = false
	req.AddOptions.SearchForMissingEpisodes = true
	return req
}
