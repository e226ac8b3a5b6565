package views

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/seolens/seo"
)

// component renders into a buffer first so a page is written in one piece.
func component(fn func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// safeURL escapes u for an href or src attribute, replacing schemes such
// as javascript: with a harmless placeholder.
func safeURL(u string) string {
	return templ.EscapeString(string(templ.URL(u)))
}

func writef(buf *bytes.Buffer, format string, args ...interface{}) {
	fmt.Fprintf(buf, format, args...)
}

func levelClass(l seo.Level) string {
	switch l {
	case seo.LevelCritical:
		return "issue issue-critical"
	case seo.LevelWarning:
		return "issue issue-warning"
	case seo.LevelSuccess:
		return "issue issue-success"
	}
	return "issue issue-info"
}

func levelLabel(l seo.Level) string {
	switch l {
	case seo.LevelCritical:
		return "Critical"
	case seo.LevelWarning:
		return "Warning"
	case seo.LevelSuccess:
		return "Passed"
	}
	return "Info"
}

func ratingClass(r seo.Rating) string {
	switch r {
	case seo.RatingExcellent:
		return "score score-good"
	case seo.RatingNeedsImprovement:
		return "score score-fair"
	}
	return "score score-poor"
}

func impactClass(i seo.Impact) string {
	return "impact impact-" + string(i)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// scoreDashOffset is the stroke offset of the score ring for a 0-100 score.
func scoreDashOffset(score int) float64 {
	const circumference = 251.2
	return circumference - circumference*float64(score)/100
}
