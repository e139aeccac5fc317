package labels

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

//go:generate mockgen -source=labels.go -destination=mocks/mock_translator.go -package=mocks

// Translator переводит ключ подписи на язык locale. Для неизвестного ключа возвращает сам ключ.
type Translator interface {
	Translate(key, locale string) string
}

// CatalogTranslator - переводчик на основе каталога сообщений x/text.
// Неизвестная локаль сводится к английскому.
type CatalogTranslator struct {
	catalog *catalog.Builder
	matcher language.Matcher
}

// Первый язык - язык по умолчанию для матчера.
var supported = []language.Tag{language.English, language.German, language.Russian}

func NewCatalogTranslator() *CatalogTranslator {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, messages := range translations {
		for key, text := range messages {
			// Ошибка возможна только для некорректного шаблона, тексты статические.
			_ = b.SetString(tag, key, text)
		}
	}
	return &CatalogTranslator{catalog: b, matcher: language.NewMatcher(supported)}
}

func (t *CatalogTranslator) Translate(key, locale string) string {
	tag := language.English
	if requested, err := language.Parse(locale); err == nil {
		if _, idx, conf := t.matcher.Match(requested); conf != language.No {
			tag = supported[idx]
		}
	}
	return message.NewPrinter(tag, message.Catalog(t.catalog)).Sprintf(key)
}

// Languages возвращает языки, для которых есть переводы.
func (t *CatalogTranslator) Languages() []language.Tag {
	return t.catalog.Languages()
}

var decimalPrinter = message.NewPrinter(language.German)

// FormatDecimal форматирует число с запятой в качестве десятичного разделителя: 2.9 -> "2,9".
func FormatDecimal(v float64) string {
	return decimalPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(3), number.NoSeparator()))
}

// TypeKey - ключ подписи кода типа.
func TypeKey(code int) string {
	return "type." + strconv.Itoa(code)
}

// CategoryKey - ключ подписи категории кодов типа.
func CategoryKey(category string) string {
	return "category." + category
}

// MaterialTypeKey - ключ подписи группы материалов.
func MaterialTypeKey(materialType string) string {
	return "material." + materialType
}
