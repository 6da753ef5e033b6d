// Package sanitize очищает пользовательский текст от HTML разметки.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text удаляет все HTML теги и обрезает пробелы по краям.
// Сущности раскодируются обратно: ответы отдаются как JSON, а не HTML.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// TextPtr - Text для необязательных полей
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Text(*s)
	return &v
}
