package utils

import (
	"log"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CACHE-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartCacheScheduler runs an hourly sweep of expired template-course cache
// entries. Readers tolerate stale hits within the TTL; the sweep only keeps
// the map from accumulating dead entries.
func StartCacheScheduler() {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		if TemplateCourses == nil {
			return
		}
		swept := TemplateCourses.SweepExpired()
		if swept > 0 {
			logScheduler("Swept expired template-course entries: " + strconv.Itoa(swept))
		}
	})
	if err != nil {
		log.Printf("Failed to register cache sweep job: %v", err)
		return
	}

	c.Start()
	logScheduler("Cache scheduler started")
}
