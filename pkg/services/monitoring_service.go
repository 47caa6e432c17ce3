package services

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// LogEntry records a single handled request.
type LogEntry struct {
	Timestamp    time.Time     `json:"timestamp"`
	Path         string        `json:"path"`
	Method       string        `json:"method"`
	StatusCode   int           `json:"statusCode"`
	ResponseTime time.Duration `json:"responseTimeNs"`
}

// maxLogEntries bounds the in-memory request log.
const maxLogEntries = 1000

// MonitoringService keeps a bounded in-memory log of handled requests.
type MonitoringService struct {
	logs []LogEntry
	mu   sync.RWMutex
}

// NewMonitoringService creates a new MonitoringService.
func NewMonitoringService() *MonitoringService {
	return &MonitoringService{
		logs: make([]LogEntry, 0),
	}
}

// LogRequest appends one request record, evicting the oldest entries
// beyond the bound.
func (s *MonitoringService) LogRequest(entry LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
	if len(s.logs) > maxLogEntries {
		s.logs = s.logs[len(s.logs)-maxLogEntries:]
	}
}

// LoggingMiddleware is a gin middleware recording request metadata.
func (s *MonitoringService) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := LogEntry{
			Timestamp:    start,
			Path:         c.Request.URL.Path,
			Method:       c.Request.Method,
			StatusCode:   c.Writer.Status(),
			ResponseTime: time.Since(start),
		}
		s.LogRequest(entry)
	}
}

// RecentLogs returns the most recent limit entries, newest first.
func (s *MonitoringService) RecentLogs(limit int) []LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.logs) {
		limit = len(s.logs)
	}

	recent := make([]LogEntry, 0, limit)
	for i := len(s.logs) - 1; i >= len(s.logs)-limit; i-- {
		recent = append(recent, s.logs[i])
	}
	return recent
}
