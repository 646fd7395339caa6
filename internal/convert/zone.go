package convert

import (
	"fmt"
	"sync"
	"time"

	// Embed the tz database so Asia/Colombo resolves on hosts without zoneinfo.
	_ "time/tzdata"
)

// ZoneName is the IANA zone all entries are interpreted in.
const ZoneName = "Asia/Colombo"

var loadColombo = sync.OnceValues(func() (*time.Location, error) {
	return time.LoadLocation(ZoneName)
})

// Colombo returns the Asia/Colombo location from the tz database.
//
// The rules come from the tz data compiled into the binary, so historical
// offset changes (e.g. +06:00 between 1996 and 2006) are honored.
func Colombo() (*time.Location, error) {
	return loadColombo()
}

// ZoneInfo describes the rule provider for diagnostics.
type ZoneInfo struct {
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
	Offset string `json:"offset"`
	At     string `json:"at"`
}

// Describe reports the zone's offset at the given instant.
func Describe(loc *time.Location, at time.Time) ZoneInfo {
	local := at.In(loc)
	abbrev, secs := local.Zone()
	return ZoneInfo{
		Name:   loc.String(),
		Abbrev: abbrev,
		Offset: formatOffset(secs),
		At:     at.UTC().Format(UTCLayout),
	}
}

func formatOffset(secs int) string {
	sign := '+'
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	return fmt.Sprintf("%c%02d:%02d", sign, secs/3600, (secs%3600)/60)
}
