package web

import (
	"fmt"
	"html/template"
	"time"

	"github.com/freeboard/board-client/internal/core/domain"
)

// RelTime renders a timestamp the way the board shows list entries:
// under an hour "방금 전", under a day in hours, under a week in days, and a
// Korean calendar date beyond that.
func RelTime(t time.Time) string {
	return relTimeAt(t, time.Now())
}

func relTimeAt(t, now time.Time) string {
	hours := int(now.Sub(t).Hours())
	switch {
	case hours < 1:
		return "방금 전"
	case hours < 24:
		return fmt.Sprintf("%d시간 전", hours)
	case hours < 24*7:
		return fmt.Sprintf("%d일 전", hours/24)
	default:
		return KoreanDate(t)
	}
}

// KoreanDate renders a calendar date in Korean convention.
func KoreanDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

// KoreanDateTime is the long form used on the detail page.
func KoreanDateTime(t time.Time) string {
	return fmt.Sprintf("%s %02d:%02d", KoreanDate(t), t.Hour(), t.Minute())
}

// Truncate cuts s to at most n runes, appending an ellipsis when trimmed.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// pageNumbers lists the 1-based page indexes for the pagination control.
func pageNumbers(totalPages int) []int {
	pages := make([]int, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"reltime": func(t domain.Time) string { return RelTime(t.Time) },
		"datetime": func(t domain.Time) string {
			if t.IsZero() {
				return ""
			}
			return KoreanDateTime(t.Time)
		},
		"date": func(t domain.Time) string {
			if t.IsZero() {
				return ""
			}
			return KoreanDate(t.Time)
		},
		"truncate": Truncate,
		"pages":    pageNumbers,
		"initial": func(s string) string {
			for _, r := range s {
				return string(r)
			}
			return "?"
		},
	}
}
