package config

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

const defaultOrgName = "Candor Water Tech"

var (
	reportLocOnce sync.Once
	reportLoc     *time.Location
)

// GetReportLocation returns the time zone used for report day boundaries.
// The original deployment relied on the host zone; REPORT_TIMEZONE makes it
// an explicit setting so exports are stable across environments.
func GetReportLocation() *time.Location {
	reportLocOnce.Do(func() {
		name := strings.TrimSpace(os.Getenv("REPORT_TIMEZONE"))
		if name == "" {
			reportLoc = time.Local
			return
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("invalid REPORT_TIMEZONE %q, falling back to host local zone: %v", name, err)
			reportLoc = time.Local
			return
		}
		reportLoc = loc
	})
	return reportLoc
}

// GetOrgName returns the organization name printed on exported documents.
func GetOrgName() string {
	if name := strings.TrimSpace(os.Getenv("ORG_NAME")); name != "" {
		return name
	}
	return defaultOrgName
}

// GetUploadDir returns the root directory for stored product images.
func GetUploadDir() string {
	if dir := strings.TrimSpace(os.Getenv("UPLOAD_DIR")); dir != "" {
		return dir
	}
	return "product-uploads"
}
