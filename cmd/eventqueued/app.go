package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-eventqueue/pkg/database/redis"
	"github.com/huynhanx03/go-eventqueue/pkg/entitlement"
	"github.com/huynhanx03/go-eventqueue/pkg/eventqueue"
	"github.com/huynhanx03/go-eventqueue/pkg/mq/kafka"
	"github.com/huynhanx03/go-eventqueue/pkg/mq/nats"
	"github.com/huynhanx03/go-eventqueue/pkg/notify"
	"github.com/huynhanx03/go-eventqueue/pkg/registry"
	"github.com/huynhanx03/go-eventqueue/pkg/server"
	"github.com/huynhanx03/go-eventqueue/pkg/settings"
)

// run wires every component and blocks until ctx is cancelled or one of the
// long-running parts fails.
func run(ctx context.Context, cfg *settings.Config, log *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	publishers, cleanup, err := newPublishers(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	var remote notify.Notifier = notify.Nop
	if len(publishers) > 0 {
		fan := make(notify.Multi, 0, len(publishers))
		for _, p := range publishers {
			fan = append(fan, p)
		}
		remote = notify.Filter(fan, notify.QueueFull)
	}

	signals := make(map[string]*notify.Signal)
	collector := eventqueue.NewCollector()
	reg, err := registry.Builder{
		Policy:    entitlement.FromSettings(cfg.Entitlement),
		Collector: collector,
		Logger:    log,
		Notifier: func(name string) notify.Notifier {
			sig := notify.NewSignal()
			signals[name] = sig
			return notify.Multi{sig, remote}
		},
	}.Build(cfg.Queues)
	if err != nil {
		return err
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collector,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	for _, p := range publishers {
		g.Go(func() error { return p.Run(ctx) })
	}

	reg.Each(func(name string, q *eventqueue.Queue) {
		sig := signals[name]
		qlog := log.With(zap.String("queue", name))
		g.Go(func() error {
			return eventqueue.Consume(ctx, q, sig.C(), func(ev []byte) {
				qlog.Debug("event consumed", zap.Int("size", len(ev)))
			})
		})
	})

	srv := server.New(cfg.Server, reg, promReg, log)
	g.Go(func() error { return srv.Run(ctx) })

	log.Info("eventqueued started",
		zap.Strings("queues", reg.Names()),
		zap.Int("publishers", len(publishers)))

	return g.Wait()
}

// newPublishers connects the remote notification backends that are enabled.
// cleanup closes their connections and must run after the publishers stop.
func newPublishers(cfg *settings.Config, log *zap.Logger) ([]*notify.Async, func(), error) {
	var (
		publishers []*notify.Async
		closers    []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Redis.Enabled {
		engine, err := redis.NewConnection(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, engine.Close)
		publishers = append(publishers,
			notify.NewRedisPublisher(engine, cfg.Redis.Channel, notify.WithAsyncLogger(log)))
	}

	if cfg.Kafka.Enabled {
		producer, err := kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		pub, sink := notify.NewKafkaPublisher(producer, cfg.Kafka.Topic, notify.WithAsyncLogger(log))
		go sink.DrainErrors(log)
		closers = append(closers, func() {
			if err := producer.Close(); err != nil {
				log.Warn("close kafka producer", zap.Error(err))
			}
		})
		publishers = append(publishers, pub)
	}

	if cfg.Nats.Enabled {
		conn, err := nats.Connect(cfg.Nats, log)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, conn.Close)
		publishers = append(publishers,
			notify.NewNatsPublisher(conn, cfg.Nats.Subject, notify.WithAsyncLogger(log)))
	}

	return publishers, cleanup, nil
}
