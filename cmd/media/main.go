// Command media runs the peoplesmarkets media service.
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthv1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/peoplesmarkets/media/internal/auth"
	"github.com/peoplesmarkets/media/internal/commerce"
	"github.com/peoplesmarkets/media/internal/config"
	"github.com/peoplesmarkets/media/internal/mediadb"
	"github.com/peoplesmarkets/media/internal/objstore"
	"github.com/peoplesmarkets/media/internal/server"
	mediav1 "github.com/peoplesmarkets/media/pkg/api/mediav1"
)

// messageSizeOverhead leaves room for the request envelope around a payload
// of FILE_MAX_SIZE bytes.
const messageSizeOverhead = 1 << 20

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Fatal("media service failed", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	db, err := mediadb.Open(ctx, log.Named("mediadb"), cfg.ConnString())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	store, err := objstore.NewS3Client(log.Named("objstore"), objstore.S3Options{
		Bucket:          cfg.BucketName,
		Endpoint:        cfg.BucketEndpoint,
		AccessKeyID:     cfg.BucketAccessKeyID,
		SecretAccessKey: cfg.BucketSecretAccessKey,
	})
	if err != nil {
		return err
	}

	verifier := auth.NewKeySetVerifier(log.Named("auth"), cfg.JWKSURL, cfg.JWKSHost)

	offers := commerce.NewClient(log.Named("commerce"), cfg.CommerceServiceURL)
	defer func() { _ = offers.Close() }()

	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(int(cfg.FileMaxSize)+messageSizeOverhead),
		grpc.MaxSendMsgSize(int(cfg.FileMaxSize)+messageSizeOverhead),
		grpc.ChainUnaryInterceptor(server.UnaryLogInterceptor(log.Named("rpc"))),
	)

	mediav1.RegisterMediaServiceServer(grpcServer,
		server.NewEndpoint(log.Named("media"), db, store, offers, verifier, cfg.FileMaxSize))
	mediav1.RegisterMediaSubscriptionServiceServer(grpcServer,
		server.NewSubscriptionEndpoint(log.Named("subscriptions"), db, verifier))

	healthServer := health.NewServer()
	healthv1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	listener, err := net.Listen("tcp", cfg.Host)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	log.Info("media service listening", zap.String("host", cfg.Host))
	return grpcServer.Serve(listener)
}
