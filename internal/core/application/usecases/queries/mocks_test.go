package queries_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"deliveryquery/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/mock"
)

type MockDeliverySource struct{ mock.Mock }

func (m *MockDeliverySource) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	deliveries, _ := args.Get(0).([]*delivery.Delivery)
	return deliveries, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}
