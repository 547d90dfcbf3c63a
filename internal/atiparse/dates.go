package atiparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reDateISO = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	reDateUS  = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	reDateEU  = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)
)

// ParseDate parses a date token in one of the formats ATI reports use:
// YYYY-MM-DD, then M/D/YYYY (month-first, the lab's house format), then
// D.M.YYYY. A token that matches a pattern but names an impossible date
// falls through to the next pattern. Returns nil when nothing matches or
// the token is empty / a bare placeholder dash.
func ParseDate(s string) *time.Time {
	if strings.TrimSpace(s) == "" || strings.TrimSpace(s) == "-" {
		return nil
	}

	if m := reDateISO.FindStringSubmatch(s); m != nil {
		if t := calendarDate(m[1], m[2], m[3]); t != nil {
			return t
		}
	}
	if m := reDateUS.FindStringSubmatch(s); m != nil {
		if t := calendarDate(m[3], m[1], m[2]); t != nil {
			return t
		}
	}
	if m := reDateEU.FindStringSubmatch(s); m != nil {
		if t := calendarDate(m[3], m[2], m[1]); t != nil {
			return t
		}
	}
	return nil
}

// calendarDate builds a date-only time.Time (midnight UTC) and rejects
// component combinations time.Date would silently normalize (month 14,
// day 32, Feb 30).
func calendarDate(year, month, day string) *time.Time {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return nil
	}
	return &t
}
