package services

import (
	"context"
	"log"

	"vetkom-cpd-admin/internal/adapters/persistence/repositories"
	"vetkom-cpd-admin/internal/pkg/storage"

	"github.com/robfig/cron/v3"
)

// ConsistencyService runs a daily sweep over the attachment records and logs
// any whose stored file has gone missing on disk. It only reports; download
// requests still discover a missing file on their own.
type ConsistencyService struct {
	attachmentRepo *repositories.AttachmentRepository
	storage        *storage.LocalStorage
	cron           *cron.Cron
}

// NewConsistencyService creates a new consistency service
func NewConsistencyService(attachmentRepo *repositories.AttachmentRepository, store *storage.LocalStorage) *ConsistencyService {
	return &ConsistencyService{
		attachmentRepo: attachmentRepo,
		storage:        store,
		cron:           cron.New(),
	}
}

// Start schedules the daily sweep (03:00)
func (s *ConsistencyService) Start() {
	s.cron.AddFunc("0 3 * * *", func() {
		s.Sweep(context.Background())
	})
	s.cron.Start()
	log.Println("✅ Storage consistency sweep scheduled (daily 03:00)")
}

// Stop stops the scheduler
func (s *ConsistencyService) Stop() {
	s.cron.Stop()
}

// Sweep checks every attachment record against the disk and returns how many
// stored files are missing.
func (s *ConsistencyService) Sweep(ctx context.Context) int {
	attachments, err := s.attachmentRepo.List(ctx)
	if err != nil {
		log.Printf("⚠️ Consistency sweep failed to list attachments: %v", err)
		return 0
	}

	missing := 0
	for _, attachment := range attachments {
		if !s.storage.Exists(attachment.CudPath) {
			missing++
			log.Printf("⚠️ Attachment %d (%s) has no file at %s", attachment.ID, attachment.FileName, attachment.CudPath)
		}
	}

	if missing > 0 {
		log.Printf("⚠️ Consistency sweep found %d attachment(s) with missing files", missing)
	}
	return missing
}
