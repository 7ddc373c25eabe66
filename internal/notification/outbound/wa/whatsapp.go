package wa

import (
	"context"

	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/whatsapp"
	"go.opentelemetry.io/otel/codes"
)

type WhatsApp struct {
	client whatsapp.Sender
	ins    instrument.Instrumentation
}

func New(client whatsapp.Sender, ins instrument.Instrumentation) *WhatsApp {
	return &WhatsApp{client: client, ins: ins}
}

func (w *WhatsApp) Send(ctx context.Context, phone, body string) error {
	ctx, span := w.ins.Tracer("notification.outbound.wa").Start(ctx, "Send")
	defer span.End()

	if err := w.client.Send(ctx, phone, body); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
