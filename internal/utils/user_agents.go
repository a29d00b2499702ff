package utils

import (
	"fmt"

	"github.com/avct/uasurfer"
)

// UserAgentInfo is the browser, OS and device parsed from a User-Agent header.
type UserAgentInfo struct {
	BrowserName    string
	BrowserVersion string
	OSName         string
	OSVersion      string
	DeviceType     string
}

func UserAgentVersionToString(v uasurfer.Version) string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func ParseUserAgent(raw string) UserAgentInfo {
	ua := uasurfer.Parse(raw)

	return UserAgentInfo{
		BrowserName:    ua.Browser.Name.StringTrimPrefix(),
		BrowserVersion: UserAgentVersionToString(ua.Browser.Version),
		OSName:         ua.OS.Name.StringTrimPrefix(),
		OSVersion:      UserAgentVersionToString(ua.OS.Version),
		DeviceType:     ua.DeviceType.StringTrimPrefix(),
	}
}
