package kafka

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/hamba/avro/v2"
	"github.com/lovoo/goka"
	"github.com/niksmo/shopfront/pkg/schema"
)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor]
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
		return
	}
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// An orderEventCodec used for serde [schema.OrderV1]
type orderEventCodec struct {
	serde Serde
}

func newOrderEventCodec(s Serde) orderEventCodec {
	return orderEventCodec{s}
}

func (c orderEventCodec) Encode(v any) ([]byte, error) {
	const op = "orderEventCodec.Encode"
	if _, ok := v.(schema.OrderV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c orderEventCodec) Decode(data []byte) (any, error) {
	const op = "orderEventCodec.Decode"
	var s schema.OrderV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, err
}

// A regionStatsCodec used for serde [schema.RegionStatsV1] group table
// values. The table is private to the group, so plain avro without the
// registry framing.
type regionStatsCodec struct {
	encode func(v any) ([]byte, error)
	decode func([]byte, any) error
}

func newRegionStatsCodec() regionStatsCodec {
	s := avro.MustParse(schema.RegionStatsSchemaTextV1)
	return regionStatsCodec{
		encode: schema.AvroEncodeFn(s),
		decode: schema.AvroDecodeFn(s),
	}
}

func (c regionStatsCodec) Encode(v any) ([]byte, error) {
	const op = "regionStatsCodec.Encode"
	if _, ok := v.(schema.RegionStatsV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.encode(v)
}

func (c regionStatsCodec) Decode(data []byte) (any, error) {
	const op = "regionStatsCodec.Decode"
	var s schema.RegionStatsV1
	err := c.decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// A RegionStatsProcessor folds the order stream into a per-region
// group table: order count and revenue, keyed by region code.
type RegionStatsProcessor struct {
	opPrefix string
	proc     processor
}

func NewRegionStatsProc(
	seedBrokers []string,
	inputStream string,
	groupTable string,
	orderSerde Serde,
) (*RegionStatsProcessor, error) {
	const op = "NewRegionStatsProcessor"

	var p RegionStatsProcessor
	p.opPrefix = "RegionStatsProcessor"

	gg := goka.DefineGroup(goka.Group(groupTable),
		goka.Input(
			goka.Stream(inputStream),
			newOrderEventCodec(orderSerde),
			p.processFn,
		),
		goka.Persist(newRegionStatsCodec()),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.proc = processor{
		opPrefix: p.opPrefix,
		gp:       gp,
	}

	return &p, nil
}

func (p *RegionStatsProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *RegionStatsProcessor) Close() {
	p.proc.close()
}

func (p *RegionStatsProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"
	log := slog.With("op", makeOp(p.opPrefix, op))

	event, _ := msg.(schema.OrderV1)

	stats, _ := ctx.Value().(schema.RegionStatsV1)
	stats.Orders++
	stats.Revenue += int64(event.Total)
	ctx.SetValue(stats)

	log.Info(
		"region stats updated",
		"region", event.Region,
		"orders", stats.Orders,
		"revenue", stats.Revenue,
	)
}
