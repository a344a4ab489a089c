package dto

type VideoFormat struct {
	Quality    string   `json:"quality"`              // örn. "1080p", "1920x1080"
	Resolution string   `json:"resolution,omitempty"` // örn. "1920x1080"
	Size       string   `json:"size"`                 // örn. "123.45 MB"
	ID         string   `json:"id"`
	VCodec     string   `json:"vcodec,omitempty"`
	ACodec     string   `json:"acodec,omitempty"` // "none" olabilir
	Ext        string   `json:"ext"`
	URL        string   `json:"url"`
	Height     int      `json:"height"` // sıralama için numerik
	FPS        *float64 `json:"fps,omitempty"`
	Protocol   string   `json:"protocol,omitempty"`
	Filesize   *int64   `json:"filesize,omitempty"` // byte cinsinden
}

type AudioFormat struct {
	Quality  string   `json:"quality"` // örn. "~128kbps", "Audio (opus)"
	ABR      *float64 `json:"abr"`     // numerik olmayabilir
	Size     string   `json:"size"`
	Filesize *int64   `json:"filesize,omitempty"`
	ID       string   `json:"id"`
	ACodec   string   `json:"acodec,omitempty"`
	Ext      string   `json:"ext"`
	URL      string   `json:"url"`
	Protocol string   `json:"protocol,omitempty"`
}

// BestAudio is the display summary for the recommended audio-only option.
type BestAudio struct {
	Quality string `json:"quality"` // "Audio Only (...)" olarak sarılır
	Size    string `json:"size"`
	ID      string `json:"id"`
	Ext     string `json:"ext"`
}

type FormatsPayload struct {
	Video     []VideoFormat `json:"video"`
	Audio     []AudioFormat `json:"audio"`
	BestAudio *BestAudio    `json:"bestAudio"`
}

type GetFormatsResponse struct {
	Success      bool           `json:"success"`
	VideoTitle   string         `json:"videoTitle"`
	ThumbnailURL string         `json:"thumbnailUrl"`
	Duration     *float64       `json:"duration"`
	Uploader     string         `json:"uploader"`
	ViewCount    *int64         `json:"viewCount"`
	Formats      FormatsPayload `json:"formats"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
