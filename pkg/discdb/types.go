package discdb

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TitleType is the kind of media item.
type TitleType string

const (
	TitleTypeMovie  TitleType = "Movie"
	TitleTypeSeries TitleType = "Series"
)

// IsValid reports whether t is a known title type.
func (t TitleType) IsValid() bool {
	switch t {
	case TitleTypeMovie, TitleTypeSeries:
		return true
	}
	return false
}

// DiscFormat is the physical format of a disc. Values match the wire format.
type DiscFormat string

const (
	DiscFormatDVD    DiscFormat = "DVD"
	DiscFormatBluray DiscFormat = "Blu-Ray"
	DiscFormatUHD    DiscFormat = "UHD"
)

// IsValid reports whether f is a known disc format.
func (f DiscFormat) IsValid() bool {
	switch f {
	case DiscFormatDVD, DiscFormatBluray, DiscFormatUHD:
		return true
	}
	return false
}

// ItemType classifies what a disc title contains.
type ItemType string

const (
	// ItemTypeMainMovie is the main feature. A disc may carry several
	// (multiple movies, or multiple cuts of the same movie).
	ItemTypeMainMovie    ItemType = "MainMovie"
	ItemTypeDeletedScene ItemType = "DeletedScene"
	ItemTypeTrailer      ItemType = "Trailer"
	ItemTypeExtra        ItemType = "Extra"
	// ItemTypeEpisode is only used for episodic content; Season and Episode are set.
	ItemTypeEpisode ItemType = "Episode"
)

// IsValid reports whether t is a known item type.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeMainMovie, ItemTypeDeletedScene, ItemTypeTrailer, ItemTypeExtra, ItemTypeEpisode:
		return true
	}
	return false
}

// ExternalIDs holds third-party catalog identifiers for a media item.
type ExternalIDs struct {
	TMDB int64   `json:"tmdb"`
	IMDB *string `json:"imdb,omitempty"`
	TVDB *string `json:"tvdb,omitempty"`
}

// MediaItem is a movie or series in the catalog.
type MediaItem struct {
	ID          int64        `json:"id,omitempty"`
	Title       string       `json:"title"`
	Year        int          `json:"year"`
	Slug        string       `json:"slug"`
	ImageURL    *string      `json:"imageUrl"`
	Type        TitleType    `json:"type"`
	ExternalIDs *ExternalIDs `json:"externalids,omitempty"`
	// Releases holds only the releases returned by the query that produced the item.
	Releases []Release `json:"releases"`
}

// ReleasesWithHash returns the releases that contain a disc with the given content hash.
func (m *MediaItem) ReleasesWithHash(hash string) []Release {
	var out []Release
	for i := range m.Releases {
		if m.Releases[i].DiscByHash(hash) != nil {
			out = append(out, m.Releases[i])
		}
	}
	return out
}

// Release is a published edition of a media item. Slugs are unique within
// the parent media item only.
type Release struct {
	Slug   string `json:"slug"`
	Locale string `json:"locale"`
	// RegionCode is usually numeric for DVDs (0-8) and a letter for Blu-rays
	// (A, B, C), but it is free-form and not always present.
	RegionCode string  `json:"regionCode"`
	Year       int     `json:"year"`
	Title      string  `json:"title"`
	FullTitle  string  `json:"fullTitle,omitempty"`
	ImageURL   *string `json:"imageUrl"`
	Discs      []Disc  `json:"discs"`

	// MediaItem is set only by release-scoped lookups. Its Releases list
	// excludes this release.
	MediaItem *MediaItem `json:"mediaItem,omitempty"`
	Boxset    *Boxset    `json:"boxset,omitempty"`
}

// DiscByHash returns the first disc with the given content hash, or nil.
func (r *Release) DiscByHash(hash string) *Disc {
	for i := range r.Discs {
		if h := r.Discs[i].ContentHash; h != nil && *h == hash {
			return &r.Discs[i]
		}
	}
	return nil
}

// IsNumericRegion reports whether the region code is a DVD region (0-8).
func (r *Release) IsNumericRegion() bool {
	return len(r.RegionCode) == 1 && r.RegionCode[0] >= '0' && r.RegionCode[0] <= '8'
}

// IsLetterRegion reports whether the region code is a Blu-ray region (A, B or C).
func (r *Release) IsLetterRegion() bool {
	switch strings.ToUpper(r.RegionCode) {
	case "A", "B", "C":
		return true
	}
	return false
}

// Disc is a single disc in a release. Titles are ordered by index ascending.
type Disc struct {
	ContentHash *string    `json:"contentHash"`
	Index       int        `json:"index"`
	Name        string     `json:"name"`
	Format      DiscFormat `json:"format"`
	Slug        string     `json:"slug"`
	Titles      []Title    `json:"titles"`
}

// TitleByIndex returns the title with the given index, or nil.
func (d *Disc) TitleByIndex(index int) *Title {
	for i := range d.Titles {
		if d.Titles[i].Index == index {
			return &d.Titles[i]
		}
	}
	return nil
}

// TitleBySourceFile returns the title backed by the given source file
// (track index for DVDs, stream file name for Blu-ray and UHD), or nil.
func (d *Disc) TitleBySourceFile(sourceFile string) *Title {
	for i := range d.Titles {
		if strings.EqualFold(d.Titles[i].SourceFile, sourceFile) {
			return &d.Titles[i]
		}
	}
	return nil
}

// Title is a playable title on a disc.
type Title struct {
	Index       int    `json:"index"`
	Duration    string `json:"duration"`    // hh:mm:ss
	DisplaySize string `json:"displaySize"` // e.g. "24.3 GB"
	// SourceFile is the track index for DVDs and the file name in
	// BDMV/STREAM for Blu-ray and UHD.
	SourceFile string     `json:"sourceFile"`
	Size       int64      `json:"size"` // bytes
	SegmentMap string     `json:"segmentMap"`
	Item       *TitleItem `json:"item"`
}

// ParseDuration parses the hh:mm:ss duration string.
func (t *Title) ParseDuration() (time.Duration, error) {
	parts := strings.Split(t.Duration, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid duration %q", t.Duration)
	}
	var total time.Duration
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", t.Duration)
		}
		total += time.Duration(n) * units[i]
	}
	return total, nil
}

// TitleItem describes the content of a title.
type TitleItem struct {
	Title string `json:"title"`
	// Season should parse as an integer when set.
	Season *string `json:"season"`
	// Episode is a single number or a range like "1-2".
	Episode  *string   `json:"episode"`
	Type     ItemType  `json:"type"`
	Chapters []Chapter `json:"chapters"`
}

// Chapter is a named chapter of a title item.
type Chapter struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

// Boxset groups releases sold together.
type Boxset struct {
	ID        int64     `json:"id"`
	Title     *string   `json:"title"`
	SortTitle *string   `json:"sortTitle"`
	Slug      *string   `json:"slug"`
	ImageURL  *string   `json:"imageUrl"`
	Release   *Release  `json:"release"`
	ReleaseID int64     `json:"releaseId"`
	Type      TitleType `json:"type"`
}
