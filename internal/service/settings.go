package service

import (
	"sync"

	"asistencia/internal/models"

	"github.com/sirupsen/logrus"
)

// SettingsService keeps the settings document in memory only. Saving
// replaces the document and acknowledges success; nothing is written to
// disk, so a restart returns to the defaults.
type SettingsService struct {
	mu       sync.RWMutex
	settings models.Settings
	logger   *logrus.Logger
}

func NewSettingsService() *SettingsService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &SettingsService{
		settings: models.DefaultSettings(),
		logger:   logger,
	}
}

func (s *SettingsService) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *SettingsService) Save(settings models.Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	s.logger.WithField("company", settings.Company.Name).Info("Settings saved (in memory)")
}

// EmailReportsEnabled reports whether the monthly email report toggle is on.
func (s *SettingsService) EmailReportsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Notifications.EmailReports
}
