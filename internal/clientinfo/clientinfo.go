// Package clientinfo derives browser, OS and device class from a raw
// User-Agent header.
package clientinfo

import (
	"github.com/mileusna/useragent"

	"shortlinks/internal/domain"
)

const unknown = "unknown"

type Info struct {
	Browser string
	OS      string
	Device  domain.DeviceClass
}

func Parse(userAgent string) Info {
	ua := useragent.Parse(userAgent)

	info := Info{
		Browser: ua.Name,
		OS:      ua.OS,
		Device:  classify(ua.Mobile, ua.Tablet),
	}
	if info.Browser == "" {
		info.Browser = unknown
	}
	if info.OS == "" {
		info.OS = unknown
	}
	return info
}

// classify gives mobile precedence over tablet; everything else is desktop.
func classify(mobile, tablet bool) domain.DeviceClass {
	switch {
	case mobile:
		return domain.DeviceMobile
	case tablet:
		return domain.DeviceTablet
	default:
		return domain.DeviceDesktop
	}
}
