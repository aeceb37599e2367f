// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

// Package timefmt converts between the unix timestamps reported by the
// flespi platform and human readable time in a given timezone.
package timefmt

import (
	"time"
)

// Layout is the human readable timestamp format, e.g. "2021-01-02 10:00:00".
const Layout = "2006-01-02 15:04:05"

// DefaultTimezone is used when no timezone is given.
const DefaultTimezone = "Europe/Berlin"

// UnixToHuman converts a unix timestamp to human readable time in the given
// IANA timezone. An empty timezone falls back to DefaultTimezone.
func UnixToHuman(ts int64, timezone string) (string, error) {
	loc, err := location(timezone)
	if err != nil {
		return "", err
	}

	return time.Unix(ts, 0).In(loc).Format(Layout), nil
}

// HumanToUnix converts a human readable timestamp in the given IANA timezone
// back to unix time. An empty timezone falls back to DefaultTimezone.
func HumanToUnix(value, timezone string) (int64, error) {
	loc, err := location(timezone)
	if err != nil {
		return 0, err
	}

	t, err := time.ParseInLocation(Layout, value, loc)
	if err != nil {
		return 0, err
	}

	return t.Unix(), nil
}

func location(timezone string) (*time.Location, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}

	return time.LoadLocation(timezone)
}
