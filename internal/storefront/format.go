package storefront

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Placeholder       = "—"
	DefaultDateLayout = "1/2/2006"
)

// FormatPrice rounds half away from zero to cents: 19.999 is "$20.00".
func FormatPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}

func StockLabel(inStock bool) string {
	if inStock {
		return "Yes"
	}
	return "No"
}

func FormatDate(ts Timestamp, layout string, loc *time.Location) string {
	if ts.IsZero() {
		return Placeholder
	}
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format(layout)
}

func FormatTags(tags []string) string {
	joined := strings.Join(tags, ", ")
	if joined == "" {
		return Placeholder
	}
	return joined
}
