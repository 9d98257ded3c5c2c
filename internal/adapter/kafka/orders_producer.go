package kafka

import (
	"context"
	"log/slog"

	"github.com/niksmo/shopfront/internal/core/domain"
	"github.com/niksmo/shopfront/internal/core/port"
	"github.com/niksmo/shopfront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.OrderEventsProducer = (*OrdersProducer)(nil)

// An OrdersProducer mirrors confirmed orders onto the order stream,
// keyed by region so the stats aggregation partitions per region.
type OrdersProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewOrdersProducer(
	opts ...ProducerOpt,
) (OrdersProducer, error) {
	const op = "NewOrdersProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return OrdersProducer{}, opErr(err, op)
		}
	}
	return OrdersProducer{options.cl, options.encoder}, nil
}

func (p OrdersProducer) Close() {
	const op = "OrdersProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p OrdersProducer) ProduceOrder(
	ctx context.Context, record domain.OrderRecord,
) error {
	const op = "OrdersProducer.ProduceOrder"

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	r, err := p.createRecord(record)
	if err != nil {
		return opErr(err, op)
	}

	if err := p.produce(ctx, r); err != nil {
		return opErr(err, op)
	}

	return nil
}

func (p OrdersProducer) createRecord(
	record domain.OrderRecord,
) (*kgo.Record, error) {
	const op = "OrdersProducer.createRecord"

	s := p.toSchema(record)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return &kgo.Record{Key: []byte(s.Region), Value: v}, nil
}

func (p OrdersProducer) produce(
	ctx context.Context, rs ...*kgo.Record,
) error {
	const op = "OrdersProducer.produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, op)
	}
	return nil
}

func (OrdersProducer) toSchema(v domain.OrderRecord) schema.OrderV1 {
	return orderToSchemaV1(v)
}
