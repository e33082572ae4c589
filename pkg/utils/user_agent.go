package utils

import (
	"fmt"
	"strings"

	"github.com/avct/uasurfer"
)

type UserAgentInfo struct {
	Device  string `json:"device"`
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Locale  string `json:"locale,omitempty"`
	Bot     bool   `json:"bot"`
}

// ParseUserAgent returns nil when uasurfer cannot place the agent on any
// known device class, which is the common case for scripted clients.
func ParseUserAgent(uaString string, acceptLanguage string) *UserAgentInfo {
	if uaString == "" {
		return nil
	}
	ua := uasurfer.Parse(uaString)

	var device string
	switch ua.DeviceType {
	case uasurfer.DeviceComputer:
		device = "Computer"
	case uasurfer.DeviceTablet:
		device = "Tablet"
	case uasurfer.DevicePhone:
		device = "Phone"
	case uasurfer.DeviceConsole:
		device = "Console"
	case uasurfer.DeviceWearable:
		device = "Wearable"
	case uasurfer.DeviceTV:
		device = "TV"
	default:
		return nil
	}

	return &UserAgentInfo{
		Device:  device,
		OS:      fmt.Sprintf("%s %d.%d", strings.TrimPrefix(ua.OS.Name.String(), "OS"), ua.OS.Version.Major, ua.OS.Version.Minor),
		Browser: fmt.Sprintf("%s %d.%d", strings.TrimPrefix(ua.Browser.Name.String(), "Browser"), ua.Browser.Version.Major, ua.Browser.Version.Minor),
		Locale:  PrimaryLocale(acceptLanguage),
		Bot:     ua.IsBot(),
	}
}

// PrimaryLocale returns the first language tag of an Accept-Language value.
func PrimaryLocale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return ""
	}
	first, _, _ := strings.Cut(acceptLanguage, ",")
	first, _, _ = strings.Cut(first, ";")
	return strings.TrimSpace(first)
}

func (i *UserAgentInfo) Fields() map[string]interface{} {
	if i == nil {
		return nil
	}
	return map[string]interface{}{
		"device":  i.Device,
		"os":      i.OS,
		"browser": i.Browser,
		"locale":  i.Locale,
		"bot":     i.Bot,
	}
}
