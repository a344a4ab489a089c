package entities

// MediaInfo is the metadata object returned by one extraction call.
type MediaInfo struct {
	Title      string      `json:"title"`
	Duration   *float64    `json:"duration"`
	Uploader   string      `json:"uploader"`
	ViewCount  *int64      `json:"view_count"`
	Thumbnail  string      `json:"thumbnail"`
	Thumbnails []Thumbnail `json:"thumbnails"`
	IsLive     bool        `json:"is_live"`
	Formats    []RawFormat `json:"formats"`
}

type Thumbnail struct {
	URL string `json:"url"`
}

// RawFormat is one stream descriptor as the engine reports it. Alanların
// hepsi her zaman dolu gelmez; numerik alanlar null olabilir.
type RawFormat struct {
	FormatID       string   `json:"format_id"`
	URL            string   `json:"url"`
	VCodec         string   `json:"vcodec"`
	ACodec         string   `json:"acodec"`
	Resolution     string   `json:"resolution"`
	Height         *float64 `json:"height"`
	FPS            *float64 `json:"fps"`
	ABR            *float64 `json:"abr"`
	FormatNote     string   `json:"format_note"`
	Filesize       *int64   `json:"filesize"`
	FilesizeApprox *int64   `json:"filesize_approx"`
	Ext            string   `json:"ext"`
	Protocol       string   `json:"protocol"`
	IsLive         bool     `json:"is_live"`
}

// BestThumbnailURL returns the highest resolution thumbnail the engine
// reported (the list is ordered worst to best).
func (m *MediaInfo) BestThumbnailURL() string {
	if len(m.Thumbnails) > 0 {
		return m.Thumbnails[len(m.Thumbnails)-1].URL
	}
	return m.Thumbnail
}
