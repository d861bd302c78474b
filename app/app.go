package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/hotel-service/config"
	"github.com/Astemirdum/hotel-service/internal/handler"
	"github.com/Astemirdum/hotel-service/internal/repository"
	"github.com/Astemirdum/hotel-service/internal/server"
	"github.com/Astemirdum/hotel-service/internal/service"
	"github.com/Astemirdum/hotel-service/pkg/kafka"
	"github.com/Astemirdum/hotel-service/pkg/logger"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "hotel")

	repo, err := repository.NewRepository(cfg.Store.DataDir, log)
	if err != nil {
		return fmt.Errorf("repo init %w", err)
	}

	// events are optional: no brokers configured means no producer
	var producer sarama.SyncProducer
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka.NewProducer %w", err)
		}
	}

	svc := service.NewService(repo, service.NewEnqueuer(producer), log)
	h := handler.New(svc, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("run", zap.Error(err))
	}
	if producer != nil {
		_ = producer.Close()
	}
	log.Info("Graceful shutdown finished")
	return nil
}
