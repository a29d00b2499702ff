package models

import (
	"net/netip"
	"time"
)

// LoginAudit describes a sign-in attempt for the audit log line.
type LoginAudit struct {
	Method         string
	Email          string
	Success        bool
	IPAddress      netip.Addr
	UserAgent      string
	BrowserName    string
	BrowserVersion string
	OSName         string
	OSVersion      string
	DeviceType     string
	AttemptedAt    time.Time
}
