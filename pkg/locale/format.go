// Package locale turns numeric picker values into display text and answers
// locale questions such as the preferred year/month/day order.
//
// A FormatCache is owned by one date picker. Results are memoized per
// locale and dropped wholesale when the locale changes.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/go-drift/picker/pkg/errors"
)

//go:embed locales/*.json
var localeFS embed.FS

var loadBundle = sync.OnceValue(func() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		errors.Report(&errors.PickerError{Op: "locale.loadBundle", Kind: errors.KindLocale, Err: err})
		return bundle
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			errors.Report(&errors.PickerError{
				Op:   "locale.loadBundle",
				Kind: errors.KindLocale,
				Err:  fmt.Errorf("%s: %w", entry.Name(), err),
			})
		}
	}
	return bundle
})

type cacheKey struct {
	field byte // 'y', 'm', 'd'
	value uint32
	lunar bool
	leap  bool
}

// FormatCache formats year, month and day values for one locale.
type FormatCache struct {
	tag       language.Tag
	localizer *i18n.Localizer
	printer   *message.Printer
	entries   map[cacheKey]string
}

// NewFormatCache returns a cache for the BCP 47 tag. Unparseable tags fall
// back to English.
func NewFormatCache(tag string) *FormatCache {
	c := &FormatCache{}
	c.SetLocale(tag)
	return c
}

// SetLocale switches locale and invalidates every cached string.
func (c *FormatCache) SetLocale(tag string) {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	c.tag = t
	c.localizer = i18n.NewLocalizer(loadBundle(), t.String())
	c.printer = message.NewPrinter(t)
	c.entries = make(map[cacheKey]string)
}

// Locale returns the active tag.
func (c *FormatCache) Locale() language.Tag { return c.tag }

// Len returns the number of memoized strings.
func (c *FormatCache) Len() int { return len(c.entries) }

func (c *FormatCache) number(n uint32) string {
	return c.printer.Sprint(number.Decimal(n, number.NoSeparator()))
}

func (c *FormatCache) localize(id string, data map[string]any, fallback string) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil || s == "" {
		return fallback
	}
	return s
}

func (c *FormatCache) memo(key cacheKey, build func() string) string {
	if s, ok := c.entries[key]; ok {
		return s
	}
	s := build()
	c.entries[key] = s
	return s
}

// Year formats a year. Lunar years carry their sexagenary cycle name where
// the locale shows one.
func (c *FormatCache) Year(year uint32, lunar bool) string {
	return c.memo(cacheKey{field: 'y', value: year, lunar: lunar}, func() string {
		n := c.number(year)
		if lunar {
			return c.localize("LunarYear", map[string]any{"Year": n, "Cycle": sexagenaryName(year)}, n)
		}
		return c.localize("Year", map[string]any{"Year": n}, n)
	})
}

// Month formats a month. leap is only meaningful for lunar months.
func (c *FormatCache) Month(month uint32, lunar, leap bool) string {
	return c.memo(cacheKey{field: 'm', value: month, lunar: lunar, leap: leap}, func() string {
		n := c.number(month)
		if !lunar {
			name := c.localize("Month"+strconv.Itoa(int(month)), nil, n)
			return c.localize("Month", map[string]any{"Name": name, "Month": n}, name)
		}
		data := map[string]any{"Name": lunarMonthName(month), "Month": n}
		if leap {
			return c.localize("LeapMonth", data, "*"+n)
		}
		return c.localize("LunarMonth", data, n)
	})
}

// Day formats a day of month.
func (c *FormatCache) Day(day uint32, lunar bool) string {
	return c.memo(cacheKey{field: 'd', value: day, lunar: lunar}, func() string {
		n := c.number(day)
		if lunar {
			return c.localize("LunarDay", map[string]any{"Name": lunarDayName(day), "Day": n}, n)
		}
		return c.localize("Day", map[string]any{"Day": n}, n)
	})
}

var (
	lunarMonthNames = [...]string{"正月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "冬月", "腊月"}
	chineseDigits   = [...]string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}
	heavenlyStems   = [...]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	earthlyBranches = [...]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
)

func lunarMonthName(month uint32) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(int(month))
	}
	return lunarMonthNames[month-1]
}

func lunarDayName(day uint32) string {
	switch {
	case day < 1 || day > 30:
		return strconv.Itoa(int(day))
	case day <= 10:
		return "初" + chineseDigits[day]
	case day < 20:
		return "十" + chineseDigits[day-10]
	case day == 20:
		return "二十"
	case day < 30:
		return "廿" + chineseDigits[day-20]
	default:
		return "三十"
	}
}

// sexagenaryName returns the stem-branch name of a lunar year, e.g. 甲辰 for 2024.
func sexagenaryName(year uint32) string {
	if year < 4 {
		return ""
	}
	var b strings.Builder
	b.WriteString(heavenlyStems[(year-4)%10])
	b.WriteString(earthlyBranches[(year-4)%12])
	return b.String()
}
