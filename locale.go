package dateadapter

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// resolvedLocale pairs a normalized locale identifier with the locale key
// the wrapped name tables understand.
type resolvedLocale struct {
	id   string
	name monday.Locale
	tag  language.Tag
}

// mondayLocales maps normalized locale identifiers onto the locale data
// shipped with the wrapped library.
var mondayLocales = map[string]monday.Locale{
	"en-US": monday.LocaleEnUS,
	"en-GB": monday.LocaleEnGB,
	"da-DK": monday.LocaleDaDK,
	"nl-BE": monday.LocaleNlBE,
	"nl-NL": monday.LocaleNlNL,
	"fi-FI": monday.LocaleFiFI,
	"fr-FR": monday.LocaleFrFR,
	"fr-CA": monday.LocaleFrCA,
	"de-DE": monday.LocaleDeDE,
	"hu-HU": monday.LocaleHuHU,
	"it-IT": monday.LocaleItIT,
	"nn-NO": monday.LocaleNnNO,
	"nb-NO": monday.LocaleNbNO,
	"pl-PL": monday.LocalePlPL,
	"pt-PT": monday.LocalePtPT,
	"pt-BR": monday.LocalePtBR,
	"ro-RO": monday.LocaleRoRO,
	"ru-RU": monday.LocaleRuRU,
	"es-ES": monday.LocaleEsES,
	"ca-ES": monday.LocaleCaES,
	"sv-SE": monday.LocaleSvSE,
	"tr-TR": monday.LocaleTrTR,
	"uk-UA": monday.LocaleUkUA,
	"bg-BG": monday.LocaleBgBG,
	"zh-CN": monday.LocaleZhCN,
	"zh-TW": monday.LocaleZhTW,
	"zh-HK": monday.LocaleZhHK,
	"ko-KR": monday.LocaleKoKR,
	"ja-JP": monday.LocaleJaJP,
	"el-GR": monday.LocaleElGR,
	"id-ID": monday.LocaleIdID,
}

// localeAliases routes bare language identifiers onto a concrete entry in
// mondayLocales.
var localeAliases = map[string]string{
	"en": "en-US",
	"da": "da-DK",
	"nl": "nl-NL",
	"fi": "fi-FI",
	"fr": "fr-FR",
	"de": "de-DE",
	"hu": "hu-HU",
	"it": "it-IT",
	"nn": "nn-NO",
	"nb": "nb-NO",
	"no": "nb-NO",
	"pl": "pl-PL",
	"pt": "pt-PT",
	"ro": "ro-RO",
	"ru": "ru-RU",
	"es": "es-ES",
	"ca": "ca-ES",
	"sv": "sv-SE",
	"tr": "tr-TR",
	"uk": "uk-UA",
	"bg": "bg-BG",
	"zh": "zh-CN",
	"ko": "ko-KR",
	"ja": "ja-JP",
	"el": "el-GR",
	"id": "id-ID",
}

// resolveLocale maps a BCP-47 locale identifier onto the closest supported
// locale, walking the parent chain before giving up.
func resolveLocale(locale string) (resolvedLocale, error) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return resolvedLocale{}, fmt.Errorf("%w: empty locale identifier", ErrUnsupportedLocale)
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return resolvedLocale{}, fmt.Errorf("%w: %q is not a valid locale identifier", ErrUnsupportedLocale, locale)
	}
	normalized = tag.String()

	candidates := append([]string{normalized}, localeParentChain(normalized)...)
	for _, candidate := range candidates {
		if alias, ok := localeAliases[candidate]; ok {
			candidate = alias
		}
		if name, ok := mondayLocales[candidate]; ok {
			return resolvedLocale{id: normalized, name: name, tag: tag}, nil
		}
	}

	return resolvedLocale{}, fmt.Errorf("%w: no locale data for %q", ErrUnsupportedLocale, locale)
}

// referenceYear is a fixed year whose first of January falls on a Sunday,
// used to synthesize name tables from the wrapped formatter.
const referenceYear = 2017

// buildLocaleData derives the full snapshot for a resolved locale.
func buildLocaleData(locale resolvedLocale) *localeData {
	data := &localeData{
		firstDayOfWeek:   firstDayOfWeek(locale.tag),
		longMonths:       make([]string, 0, 12),
		shortMonths:      make([]string, 0, 12),
		narrowMonths:     make([]string, 0, 12),
		dates:            make([]string, 0, 31),
		longDaysOfWeek:   make([]string, 0, 7),
		shortDaysOfWeek:  make([]string, 0, 7),
		narrowDaysOfWeek: make([]string, 0, 7),
	}

	upper := cases.Upper(locale.tag)

	for month := time.January; month <= time.December; month++ {
		ref := time.Date(referenceYear, month, 1, 0, 0, 0, 0, time.UTC)
		long := monday.Format(ref, "January", locale.name)
		data.longMonths = append(data.longMonths, long)
		data.shortMonths = append(data.shortMonths, monday.Format(ref, "Jan", locale.name))
		data.narrowMonths = append(data.narrowMonths, initialGrapheme(long, upper))
	}

	for day := 1; day <= 31; day++ {
		ref := time.Date(referenceYear, time.January, day, 0, 0, 0, 0, time.UTC)
		data.dates = append(data.dates, monday.Format(ref, "2", locale.name))
	}

	// January 1st of the reference year is a Sunday, so offsets 0..6 walk
	// the week in day-of-week index order.
	for offset := 0; offset < 7; offset++ {
		ref := time.Date(referenceYear, time.January, 1+offset, 0, 0, 0, 0, time.UTC)
		long := monday.Format(ref, "Monday", locale.name)
		data.longDaysOfWeek = append(data.longDaysOfWeek, long)
		data.shortDaysOfWeek = append(data.shortDaysOfWeek, monday.Format(ref, "Mon", locale.name))
		data.narrowDaysOfWeek = append(data.narrowDaysOfWeek, initialGrapheme(long, upper))
	}

	return data
}

// initialGrapheme reduces a name to its narrow form, uppercased per the
// locale's casing rules.
func initialGrapheme(name string, upper cases.Caser) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return name
	}
	return upper.String(name[:size])
}

// firstDayOfWeek resolves the CLDR first-day-of-week for the locale's
// region, 0=Sunday through 6=Saturday. Monday is the CLDR world default.
func firstDayOfWeek(tag language.Tag) int {
	if region, _ := tag.Region(); region.IsCountry() {
		if day, ok := cldrFirstDay[region.String()]; ok {
			return day
		}
	}
	return cldrFirstDay["001"]
}
