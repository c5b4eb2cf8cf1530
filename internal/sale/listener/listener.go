package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stokk/inventory-service/internal/sale"
	"github.com/stokk/inventory-service/internal/sale/dto"
	"github.com/stokk/inventory-service/pkg/broker"
	"github.com/stokk/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

// SaleListener consumes checkout events published by external POS terminals
// and feeds them through the same RegisterSale path as the interactive UI.
type SaleListener struct {
	consumer *broker.KafkaConsumer
	uc       sale.UseCase
	logger   logger.ZapLogger
}

func NewSaleListener(consumer *broker.KafkaConsumer, uc sale.UseCase, log logger.ZapLogger) *SaleListener {
	return &SaleListener{
		consumer: consumer,
		uc:       uc,
		logger:   log,
	}
}

func (l *SaleListener) Start(ctx context.Context) {
	l.logger.Info("starting sale event listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("stopping sale event listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("failed to read sale event", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type SaleCompletedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   SalePayload `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type SalePayload struct {
	Items           []SaleItemPayload `json:"items"`
	DiscountPercent decimal.Decimal   `json:"discount_percent"`
	PaymentMethod   string            `json:"payment_method"`
	CashReceived    *decimal.Decimal  `json:"cash_received"`
	CustomerName    string            `json:"customer_name"`
}

type SaleItemPayload struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

func (l *SaleListener) processMessage(ctx context.Context, value []byte) {
	var event SaleCompletedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("failed to unmarshal sale event", zap.Error(err))
		return
	}

	if event.EventType != "SaleCompleted" {
		return
	}

	input := &dto.RegisterSaleInput{
		DiscountPercent: event.Payload.DiscountPercent,
		PaymentMethod:   event.Payload.PaymentMethod,
		CashReceived:    event.Payload.CashReceived,
		CustomerName:    event.Payload.CustomerName,
	}
	for _, item := range event.Payload.Items {
		input.Items = append(input.Items, dto.SaleLineInput{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	if _, err := l.uc.RegisterSale(ctx, input); err != nil {
		l.logger.Error("failed to register sale from event",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}
