package usecases

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// CleanupService sweeps orphaned job directories out of the temp base.
// Normal akışta her job kendi klasörünü kaldırır; süpürücü yalnızca crash
// artıklarını toplar.
type CleanupService interface {
	SweepStaleDirs(maxAge time.Duration) error
}

type cleanupService struct {
	tempBase string
}

func NewCleanupService(tempBase string) CleanupService {
	return &cleanupService{tempBase: tempBase}
}

func (s *cleanupService) SweepStaleDirs(maxAge time.Duration) error {
	entries, err := os.ReadDir(s.tempBase)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirPath := filepath.Join(s.tempBase, entry.Name())
		info, err := os.Stat(dirPath)
		if err != nil {
			log.Printf("Sweep: stat failed for %s: %v", dirPath, err)
			continue
		}

		if now.Sub(info.ModTime()) > maxAge {
			if err := os.RemoveAll(dirPath); err != nil {
				log.Printf("Sweep: could not remove %s: %v", dirPath, err)
				continue
			}
			log.Printf("Sweep: removed stale temp folder %s", dirPath)
		}
	}
	return nil
}
