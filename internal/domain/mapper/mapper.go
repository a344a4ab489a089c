package mapper

import (
	"fmt"
	"sort"

	"video-downloader/internal/domain/dto"
	"video-downloader/internal/domain/entities"
)

const (
	unknownVideoLabel = "Unknown Video"
	defaultVideoExt   = "mp4"
	defaultAudioExt   = "m4a"
)

// ExtractFormats turns the engine's raw descriptor list into two sorted,
// display-ready lists plus a best-audio summary. Pure function, no I/O.
//
// Bir descriptor video'dur ancak ve ancak vcodec dolu ve "none" değilse VE
// resolution ya da height varsa; audio-only ise acodec dolu ve "none" değil
// VE vcodec == "none". Geri kalan her şey sessizce elenir.
func ExtractFormats(formats []entities.RawFormat) ([]dto.VideoFormat, []dto.AudioFormat, *dto.BestAudio) {
	videoFormats := []dto.VideoFormat{}
	audioFormats := []dto.AudioFormat{}
	var bestAudio *dto.AudioFormat

	for _, f := range formats {
		// Temel bilgisi eksik veya canlı yayın olan descriptorlar indirilemez
		if f.URL == "" || f.FormatID == "" || f.IsLive {
			continue
		}

		filesize := f.Filesize
		if filesize == nil {
			filesize = f.FilesizeApprox
		}
		sizeMB := "N/A"
		if filesize != nil {
			sizeMB = fmt.Sprintf("%.2f MB", float64(*filesize)/(1024*1024))
		}

		switch {
		case isVideo(&f):
			quality := f.FormatNote
			if quality == "" {
				quality = f.Resolution
			}
			if quality == "" {
				quality = unknownVideoLabel
			}

			ext := f.Ext
			if ext == "" {
				ext = defaultVideoExt
			}

			videoFormats = append(videoFormats, dto.VideoFormat{
				Quality:    quality,
				Resolution: f.Resolution,
				Size:       sizeMB,
				ID:         f.FormatID,
				VCodec:     f.VCodec,
				ACodec:     f.ACodec,
				Ext:        ext,
				URL:        f.URL,
				Height:     safeHeight(f.Height),
				FPS:        f.FPS,
				Protocol:   f.Protocol,
				Filesize:   filesize,
			})

		case isAudioOnly(&f):
			quality := f.FormatNote
			if quality == "" && f.ABR != nil {
				quality = fmt.Sprintf("~%.0fkbps", *f.ABR)
			} else if quality == "" {
				quality = fmt.Sprintf("Audio (%s)", f.ACodec)
			}

			ext := f.Ext
			if ext == "" {
				ext = defaultAudioExt
			}

			entry := dto.AudioFormat{
				Quality:  quality,
				ABR:      f.ABR,
				Size:     sizeMB,
				Filesize: filesize,
				ID:       f.FormatID,
				ACodec:   f.ACodec,
				Ext:      ext,
				URL:      f.URL,
				Protocol: f.Protocol,
			}
			audioFormats = append(audioFormats, entry)
			bestAudio = betterAudio(bestAudio, entry)
		}
		// codec bilgisi olmayan descriptorlar sessizce elenir
	}

	// Video: yükseklik, eşitlikte fps (ikisi de azalan)
	sort.SliceStable(videoFormats, func(i, j int) bool {
		if videoFormats[i].Height != videoFormats[j].Height {
			return videoFormats[i].Height > videoFormats[j].Height
		}
		return safeFPS(videoFormats[i].FPS) > safeFPS(videoFormats[j].FPS)
	})

	// Audio: bitrate azalan, bitrate'i olmayanlar en sona
	sort.SliceStable(audioFormats, func(i, j int) bool {
		return safeABR(audioFormats[i].ABR) > safeABR(audioFormats[j].ABR)
	})

	var summary *dto.BestAudio
	if bestAudio != nil {
		summary = &dto.BestAudio{
			Quality: fmt.Sprintf("Audio Only (%s)", bestAudio.Quality),
			Size:    bestAudio.Size,
			ID:      bestAudio.ID,
			Ext:     bestAudio.Ext,
		}
	}

	return videoFormats, audioFormats, summary
}

func isVideo(f *entities.RawFormat) bool {
	if f.VCodec == "" || f.VCodec == "none" {
		return false
	}
	return f.Resolution != "" || (f.Height != nil && *f.Height > 0)
}

func isAudioOnly(f *entities.RawFormat) bool {
	return f.ACodec != "" && f.ACodec != "none" && f.VCodec == "none"
}

// betterAudio is the running best-audio reduction. Numerik bitrate'i olan bir
// aday, mevcut en iyinin bitrate'inden kesin büyükse kazanır (numerik
// olmayan mevcut en iyi −1 sayılır). Bitrate'i olmayan aday yalnızca henüz
// hiç aday yokken tohum olarak alınır; bu kural stable sort'tan türetilemez.
func betterAudio(current *dto.AudioFormat, candidate dto.AudioFormat) *dto.AudioFormat {
	if candidate.ABR != nil {
		best := -1.0
		if current != nil && current.ABR != nil {
			best = *current.ABR
		}
		if *candidate.ABR > best {
			return &candidate
		}
		return current
	}
	if current == nil {
		return &candidate
	}
	return current
}

func safeHeight(h *float64) int {
	if h == nil {
		return 0
	}
	return int(*h)
}

func safeFPS(fps *float64) float64 {
	if fps == nil {
		return 0
	}
	return *fps
}

func safeABR(abr *float64) float64 {
	if abr == nil {
		return -1
	}
	return *abr
}
