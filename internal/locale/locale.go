// Package locale derives logical component names from Qt translation
// filenames such as "qtbase_de.qm" or "qt_zh_CN.qm".
package locale

import (
	"path/filepath"
	"strings"
)

// Split separates a translation filename into its component and locale
// parts, e.g. "qtbase_zh_CN.qm" into ("qtbase", "zh_CN"). The extension is
// stripped first. A filename without an underscore has no recognizable
// locale suffix and yields ("", "").
//
// Splitting happens at the last underscore. When that leaves an
// all-uppercase locale segment, the name carries a compound
// language_COUNTRY locale ("foo_de_DE" would naively split into "foo_de"
// and "DE"), so the split is retried one underscore earlier. This assumes
// no component name ends in an all-uppercase token.
func Split(fileName string) (component, locale string) {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	idx := strings.LastIndex(stem, "_")
	if idx == -1 {
		return "", ""
	}

	component = stem[:idx]
	locale = stem[idx+1:]
	if strings.ToUpper(locale) == locale {
		idx = strings.LastIndex(component, "_")
		component = stem[:max(idx, 0)]
		locale = stem[idx+1:]
	}

	return component, locale
}

// ComponentName returns just the component part of a translation filename.
func ComponentName(fileName string) string {
	component, _ := Split(fileName)
	return component
}

// Stem returns the filename with its extension removed.
func Stem(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
