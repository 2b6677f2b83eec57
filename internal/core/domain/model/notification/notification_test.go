package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
)

func Test_parse_type_accepts_known_types(t *testing.T) {
	for _, raw := range []string{
		"order_created", "order_picked_up", "in_transit", "out_for_delivery",
		"delivered", "delivery_delayed", "delivery_failed",
	} {
		parsed, err := notification.ParseType(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, parsed.String())
	}
}

func Test_parse_type_rejects_unknown_type(t *testing.T) {
	_, err := notification.ParseType("carrier_pigeon_dispatched")
	assert.Error(t, err)
}

func Test_message_substitutes_template_data(t *testing.T) {
	orderID := kernel.NewOrderID()

	msg := notification.TypeDeliveryDelayed.Message(orderID, notification.TemplateData{
		Reason:               "severe weather conditions",
		NewEstimatedDelivery: "2026-09-01 18:00",
	})

	assert.Contains(t, msg, orderID.String())
	assert.Contains(t, msg, "severe weather conditions")
	assert.Contains(t, msg, "2026-09-01 18:00")
}

func Test_message_falls_back_for_unknown_type(t *testing.T) {
	orderID := kernel.NewOrderID()

	withMessage := notification.Type("custom").Message(orderID, notification.TemplateData{Message: "Hold at depot"})
	withoutMessage := notification.Type("custom").Message(orderID, notification.TemplateData{})

	assert.Contains(t, withMessage, "Hold at depot")
	assert.Contains(t, withoutMessage, "Status updated")
}

func Test_subject_per_type(t *testing.T) {
	assert.Equal(t, "Order Delivered - Smart Logistics", notification.TypeDelivered.Subject())
	assert.Equal(t, "Order Update - Smart Logistics", notification.Type("custom").Subject())
}
