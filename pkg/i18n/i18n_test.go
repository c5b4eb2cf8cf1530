package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_CompiledDefaults(t *testing.T) {
	Init()

	msg := T("en", MsgAlertOutOfStock, map[string]interface{}{
		"Product": "Vestido Midi",
		"Variant": "Azul M",
	})
	assert.Contains(t, msg, "Vestido Midi")
	assert.Contains(t, msg, "Azul M")

	msg = T("en", MsgAlertLowStock, map[string]interface{}{
		"Product": "Vestido Midi",
		"Variant": "Azul M",
		"Count":   2,
	})
	assert.Contains(t, msg, "2")
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	Init()
	msg := T("xx", MsgSaleReason, nil)
	assert.NotEqual(t, MsgSaleReason, msg)
	assert.NotEmpty(t, msg)
}

func TestT_UnknownMessageReturnsID(t *testing.T) {
	Init()
	assert.Equal(t, "no.such.message", T("en", "no.such.message", nil))
}
