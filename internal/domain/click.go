package domain

import (
	"time"

	"github.com/google/uuid"
)

type DeviceClass string

const (
	DeviceDesktop DeviceClass = "desktop"
	DeviceMobile  DeviceClass = "mobile"
	DeviceTablet  DeviceClass = "tablet"
)

const DirectReferrer = "direct"

type Click struct {
	LinkID    uuid.UUID
	Timestamp time.Time
	IP        string
	Browser   string
	OS        string
	Device    DeviceClass
	Referrer  string
}

// RequestMeta is the raw client data captured from a redirect request.
type RequestMeta struct {
	IP        string
	UserAgent string
	Referrer  string
}

type Analytics struct {
	TotalClicks  int64          `json:"totalClicks"`
	ClicksByDay  map[string]int `json:"clicksByDay"`
	DeviceStats  map[string]int `json:"deviceStats"`
	BrowserStats map[string]int `json:"browserStats"`
}
