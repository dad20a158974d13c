package view

import (
	"html"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/microcosm-cc/bluemonday"

	"github.com/shopfront-labs/storefront/internal/domain"
)

// Formatter turns domain values into display strings for one locale.
type Formatter struct {
	printer *message.Printer
	loc     *time.Location
	strip   *bluemonday.Policy
}

// NewFormatter builds a formatter. An unknown locale falls back to English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		loc:     time.Local,
		strip:   bluemonday.StrictPolicy(),
	}
}

// Price renders an amount with two decimals and locale grouping.
func (f *Formatter) Price(m domain.Money) string {
	return f.printer.Sprintf("$%.2f", m.Float())
}

// Date renders the calendar day.
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.loc).Format("02/01/2006")
}

// Time renders hours and minutes.
func (f *Formatter) Time(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.loc).Format("15:04")
}

// Excerpt strips markup from text and cuts it to limit runes, marking the cut.
func (f *Formatter) Excerpt(text string, limit int) string {
	plain := []rune(html.UnescapeString(f.strip.Sanitize(text)))
	if len(plain) <= limit {
		return string(plain)
	}
	return string(plain[:limit]) + "..."
}

// StockBar returns the filled share of the stock bar as a whole percentage
// and its colour class.
func StockBar(stock int) (percent int, class string) {
	ratio := math.Min(float64(stock)/domain.StockBarFullAt, 1)
	if ratio < 0 {
		ratio = 0
	}
	percent = int(math.Round(ratio * 100))
	switch {
	case stock > domain.StockHealthyAbove:
		class = "bg-success"
	case stock > domain.StockWarningAbove:
		class = "bg-warning"
	default:
		class = "bg-danger"
	}
	return percent, class
}

// StatusBadge returns the badge class and label for a past cart's status.
// Unknown statuses keep their raw text.
func StatusBadge(raw string) (class, label string) {
	switch domain.NormalizeCartStatus(raw) {
	case domain.CartStatusCompleted:
		return "bg-success", "Completed"
	case domain.CartStatusPending:
		return "bg-warning", "Pending"
	case domain.CartStatusCancelled:
		return "bg-danger", "Cancelled"
	default:
		return "bg-secondary", raw
	}
}
