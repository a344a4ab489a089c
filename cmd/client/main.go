package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"video-downloader/internal/domain/dto"
)

// Basit test client'ı: format listesini çeker, istenirse indirir
func main() {
	server := flag.String("server", "http://localhost:5000", "server base URL")
	videoURL := flag.String("url", "", "video URL")
	formatID := flag.String("format", "", "format id to download (empty = list only)")
	filename := flag.String("filename", "video", "suggested base filename")
	flag.Parse()

	if *videoURL == "" {
		log.Fatal("-url zorunlu")
	}

	client := &http.Client{Timeout: 30 * time.Minute}

	formats, err := fetchFormats(client, *server, *videoURL)
	if err != nil {
		log.Fatalf("Formatlar alınamadı: %v", err)
	}
	printFormats(formats)

	if *formatID == "" {
		return
	}

	outPath, err := downloadFormat(client, *server, *videoURL, *formatID, *filename)
	if err != nil {
		log.Fatalf("İndirme başarısız: %v", err)
	}
	fmt.Printf("\nKaydedildi: %s\n", outPath)
}

func fetchFormats(client *http.Client, server, videoURL string) (*dto.GetFormatsResponse, error) {
	endpoint := fmt.Sprintf("%s/api/get-formats?url=%s", server, url.QueryEscape(videoURL))
	resp, err := client.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var formats dto.GetFormatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&formats); err != nil {
		return nil, err
	}
	return &formats, nil
}

func printFormats(f *dto.GetFormatsResponse) {
	fmt.Printf("%s — %s\n", f.VideoTitle, f.Uploader)
	fmt.Println("\nVideo:")
	for _, v := range f.Formats.Video {
		fmt.Printf("  [%s] %-12s %-10s %s\n", v.ID, v.Quality, v.Size, v.Ext)
	}
	fmt.Println("\nAudio:")
	for _, a := range f.Formats.Audio {
		fmt.Printf("  [%s] %-12s %-10s %s\n", a.ID, a.Quality, a.Size, a.Ext)
	}
	if f.Formats.BestAudio != nil {
		fmt.Printf("\nBest audio: [%s] %s\n", f.Formats.BestAudio.ID, f.Formats.BestAudio.Quality)
	}
}

func downloadFormat(client *http.Client, server, videoURL, formatID, filename string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/download?url=%s&format_id=%s&filename=%s",
		server, url.QueryEscape(videoURL), url.QueryEscape(formatID), url.QueryEscape(filename))

	resp, err := client.Get(endpoint)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return "", fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	outPath := filename
	if outPath == "" || outPath == "video" {
		outPath = "video_" + formatID
	}

	out, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		os.Remove(outPath)
		return "", err
	}
	log.Printf("%d byte indirildi", written)
	return outPath, nil
}
