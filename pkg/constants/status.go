package constants

const (
	StatusOK      = "ok"
	StatusHealthy = "healthy"
	StatusFailed  = "failed"
)

// Download job aşamaları (log etiketleri)
const (
	StageResolving   = "resolving_format"
	StageDownloading = "downloading"
	StageLocating    = "locating"
	StageRenaming    = "renaming"
	StageSending     = "sending"
	StageCleaningUp  = "cleaning_up"
)
