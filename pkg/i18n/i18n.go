// Package i18n holds the message bundle for user-facing text (alert messages,
// sale reasons). English defaults are compiled in; locale files loaded at
// startup add or override translations.
package i18n

import (
	"encoding/json"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	mu     sync.RWMutex
	bundle *goi18n.Bundle
)

// Message IDs used across the service.
const (
	MsgAlertOutOfStock  = "AlertOutOfStock"
	MsgAlertLowStock    = "AlertLowStock"
	MsgAlertNewArrival  = "AlertNewArrival"
	MsgAlertPriceChange = "AlertPriceChange"
	MsgSaleReason       = "SaleReason"
)

var defaults = []*goi18n.Message{
	{ID: MsgAlertOutOfStock, Other: "{{.Product}} - {{.Variant}} is out of stock"},
	{ID: MsgAlertLowStock, Other: "{{.Product}} - {{.Variant}} is low on stock ({{.Count}} left)"},
	{ID: MsgAlertNewArrival, Other: "{{.Product}} registered with {{.Count}} variants"},
	{ID: MsgAlertPriceChange, Other: "{{.Product}} sale price changed from {{.Old}} to {{.New}}"},
	{ID: MsgSaleReason, Other: "Sale"},
}

func Init() {
	mu.Lock()
	defer mu.Unlock()
	bundle = goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	if err := bundle.AddMessages(language.English, defaults...); err != nil {
		panic(err)
	}
}

// Load adds a locale file (e.g. locales/active.pt.json) to the bundle.
func Load(path string) error {
	ensure()
	mu.Lock()
	defer mu.Unlock()
	_, err := bundle.LoadMessageFile(path)
	return err
}

func ensure() {
	mu.RLock()
	ok := bundle != nil
	mu.RUnlock()
	if !ok {
		Init()
	}
}

// T localizes a message, falling back to the English default and finally to
// the message id itself.
func T(lang, messageID string, data map[string]interface{}) string {
	ensure()
	mu.RLock()
	b := bundle
	mu.RUnlock()

	loc := goi18n.NewLocalizer(b, lang)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
