package backup

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Mode distinguishes the automatic post-write upload from a user-requested
// one.
type Mode int8

const (
	ModeAutomatic Mode = iota
	ModeManual
)

func (m Mode) String() string {
	if m == ModeManual {
		return "manual"
	}
	return "automatic"
}

// Uploader pushes one backup snapshot somewhere durable.
type Uploader interface {
	Upload(ctx context.Context, mode Mode) error
}

// Service triggers backup uploads without making callers wait. Upload
// failures are logged and swallowed; the data mutation that triggered the
// backup stays committed either way.
type Service struct {
	uploader Uploader
	logger   *logrus.Logger
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewService(uploader Uploader, logger *logrus.Logger) *Service {
	return &Service{
		uploader: uploader,
		logger:   logger,
		timeout:  2 * time.Minute,
	}
}

// Trigger dispatches an upload and returns immediately.
func (s *Service) Trigger(mode Mode) {
	if s == nil || s.uploader == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.uploader.Upload(ctx, mode); err != nil {
			s.logger.WithError(err).WithField("mode", mode.String()).Error("Backup.Upload.failed")
			return
		}
		s.logger.WithField("mode", mode.String()).Info("Backup.Upload.complete")
	}()
}

// Wait blocks until every dispatched upload has finished. Used on shutdown
// and in tests.
func (s *Service) Wait() {
	s.wg.Wait()
}
