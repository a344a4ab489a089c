package dto

type DownloadRequestDTO struct {
	URL      string `json:"url" query:"url"`
	FormatID string `json:"format_id" query:"format_id"`
	Filename string `json:"filename" query:"filename"` // client önerisi, sanitize edilir
}
