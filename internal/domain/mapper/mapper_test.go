package mapper

import (
	"testing"

	"video-downloader/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func TestExtractFormats_DropsUnusable(t *testing.T) {
	formats := []entities.RawFormat{
		{FormatID: "1", VCodec: "avc1", Height: f64(720)}, // url yok
		{URL: "http://x/2", VCodec: "avc1", Height: f64(720)}, // format id yok
		{FormatID: "3", URL: "http://x/3", VCodec: "avc1", Height: f64(720), IsLive: true},
	}

	video, audio, best := ExtractFormats(formats)

	assert.Empty(t, video)
	assert.Empty(t, audio)
	assert.Nil(t, best)
}

func TestExtractFormats_Classification(t *testing.T) {
	formats := []entities.RawFormat{
		// muxed: video olarak sınıflanır, audio listesine girmez
		{FormatID: "22", URL: "http://x/22", VCodec: "avc1", ACodec: "mp4a", Resolution: "1280x720", Height: f64(720)},
		// audio-only
		{FormatID: "140", URL: "http://x/140", VCodec: "none", ACodec: "mp4a", ABR: f64(128)},
		// vcodec boş (eksik) + acodec dolu: audio sayılmaz, elenir
		{FormatID: "7", URL: "http://x/7", ACodec: "opus"},
		// vcodec "none", acodec "none": elenir
		{FormatID: "sb0", URL: "http://x/sb0", VCodec: "none", ACodec: "none"},
		// vcodec dolu ama resolution/height yok: elenir
		{FormatID: "9", URL: "http://x/9", VCodec: "vp9", ACodec: "none"},
	}

	video, audio, best := ExtractFormats(formats)

	require.Len(t, video, 1)
	require.Len(t, audio, 1)
	assert.Equal(t, "22", video[0].ID)
	assert.Equal(t, "140", audio[0].ID)
	require.NotNil(t, best)
	assert.Equal(t, "140", best.ID)
}

func TestExtractFormats_VideoSortByHeightThenFPS(t *testing.T) {
	formats := []entities.RawFormat{
		{FormatID: "a", URL: "http://x/a", VCodec: "avc1", Height: f64(720), FPS: f64(30)},
		{FormatID: "b", URL: "http://x/b", VCodec: "avc1", Height: f64(1080), FPS: f64(30)},
		{FormatID: "c", URL: "http://x/c", VCodec: "avc1", Height: f64(1080), FPS: f64(60)},
	}

	video, _, _ := ExtractFormats(formats)

	require.Len(t, video, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{video[0].ID, video[1].ID, video[2].ID})
}

func TestExtractFormats_VideoSortMissingFPSLast(t *testing.T) {
	formats := []entities.RawFormat{
		{FormatID: "nofps", URL: "http://x/1", VCodec: "avc1", Height: f64(1080)},
		{FormatID: "fps24", URL: "http://x/2", VCodec: "avc1", Height: f64(1080), FPS: f64(24)},
	}

	video, _, _ := ExtractFormats(formats)

	require.Len(t, video, 2)
	assert.Equal(t, "fps24", video[0].ID)
	assert.Equal(t, "nofps", video[1].ID)
}

func TestExtractFormats_AudioSortMissingBitrateLast(t *testing.T) {
	formats := []entities.RawFormat{
		{FormatID: "128", URL: "http://x/1", VCodec: "none", ACodec: "opus", ABR: f64(128)},
		{FormatID: "noabr", URL: "http://x/2", VCodec: "none", ACodec: "opus"},
		{FormatID: "256", URL: "http://x/3", VCodec: "none", ACodec: "opus", ABR: f64(256)},
	}

	_, audio, _ := ExtractFormats(formats)

	require.Len(t, audio, 3)
	assert.Equal(t, []string{"256", "128", "noabr"}, []string{audio[0].ID, audio[1].ID, audio[2].ID})
}

func TestExtractFormats_BestAudioPicksHighestBitrate(t *testing.T) {
	formats := []entities.RawFormat{
		{FormatID: "low", URL: "http://x/1", VCodec: "none", ACodec: "opus", ABR: f64(48)},
		{FormatID: "high", URL: "http://x/2", VCodec: "none", ACodec: "opus", ABR: f64(160)},
		{FormatID: "mid", URL: "http://x/3", VCodec: "none", ACodec: "opus", ABR: f64(128)},
	}

	_, _, best := ExtractFormats(formats)

	require.NotNil(t, best)
	assert.Equal(t, "high", best.ID)
	assert.Equal(t, "Audio Only (~160kbps)", best.Quality)
}

func TestExtractFormats_BestAudioSeedsWithoutBitrate(t *testing.T) {
	// Hiçbir descriptor'da numerik bitrate yoksa ilk karşılaşılan kazanır
	formats := []entities.RawFormat{
		{FormatID: "first", URL: "http://x/1", VCodec: "none", ACodec: "opus"},
		{FormatID: "second", URL: "http://x/2", VCodec: "none", ACodec: "mp4a"},
	}

	_, _, best := ExtractFormats(formats)

	require.NotNil(t, best)
	assert.Equal(t, "first", best.ID)
}

func TestExtractFormats_NumericBitrateBeatsSeed(t *testing.T) {
	formats := []entities.RawFormat{
		{FormatID: "seed", URL: "http://x/1", VCodec: "none", ACodec: "opus"},
		{FormatID: "num", URL: "http://x/2", VCodec: "none", ACodec: "opus", ABR: f64(0)},
	}

	_, _, best := ExtractFormats(formats)

	// abr 0 bile numerik olmayan tohumdan (−1 sayılır) büyüktür
	require.NotNil(t, best)
	assert.Equal(t, "num", best.ID)
}

func TestExtractFormats_SizeFormatting(t *testing.T) {
	formats := []entities.RawFormat{
		{FormatID: "exact", URL: "http://x/1", VCodec: "none", ACodec: "opus", Filesize: i64(10 * 1024 * 1024)},
		{FormatID: "approx", URL: "http://x/2", VCodec: "none", ACodec: "opus", FilesizeApprox: i64(5 * 1024 * 1024)},
		{FormatID: "unknown", URL: "http://x/3", VCodec: "none", ACodec: "opus"},
	}

	_, audio, _ := ExtractFormats(formats)

	require.Len(t, audio, 3)
	bySizeID := map[string]string{}
	for _, a := range audio {
		bySizeID[a.ID] = a.Size
	}
	assert.Equal(t, "10.00 MB", bySizeID["exact"])
	assert.Equal(t, "5.00 MB", bySizeID["approx"])
	assert.Equal(t, "N/A", bySizeID["unknown"])
}

func TestExtractFormats_QualityLabels(t *testing.T) {
	formats := []entities.RawFormat{
		{FormatID: "note", URL: "http://x/1", VCodec: "avc1", Height: f64(1080), FormatNote: "1080p60"},
		{FormatID: "res", URL: "http://x/2", VCodec: "avc1", Height: f64(720), Resolution: "1280x720"},
		{FormatID: "fallback", URL: "http://x/3", VCodec: "avc1", Height: f64(480)},
		{FormatID: "abr", URL: "http://x/4", VCodec: "none", ACodec: "opus", ABR: f64(128)},
		{FormatID: "codec", URL: "http://x/5", VCodec: "none", ACodec: "opus"},
	}

	video, audio, _ := ExtractFormats(formats)

	require.Len(t, video, 3)
	require.Len(t, audio, 2)

	labels := map[string]string{}
	for _, v := range video {
		labels[v.ID] = v.Quality
	}
	for _, a := range audio {
		labels[a.ID] = a.Quality
	}

	assert.Equal(t, "1080p60", labels["note"])
	assert.Equal(t, "1280x720", labels["res"])
	assert.Equal(t, "Unknown Video", labels["fallback"])
	assert.Equal(t, "~128kbps", labels["abr"])
	assert.Equal(t, "Audio (opus)", labels["codec"])
}

func TestExtractFormats_EmptyInput(t *testing.T) {
	video, audio, best := ExtractFormats(nil)

	assert.Empty(t, video)
	assert.Empty(t, audio)
	assert.Nil(t, best)
}
