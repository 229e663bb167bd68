package main

import (
	"crypto/tls"
	"crypto/x509"
	"flag"
	"fmt"
	"net"
	"os"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	"github.com/hpclaunch/hpclaunch/pkg/batch"
	"github.com/hpclaunch/hpclaunch/pkg/config"
	"github.com/hpclaunch/hpclaunch/pkg/logger"
	"github.com/hpclaunch/hpclaunch/pkg/proto"
	"github.com/hpclaunch/hpclaunch/pkg/store"
)

var log = logger.New("server")

func main() {
	cfg := config.GetConfig()

	port := flag.Int("port", cfg.Grpc.Port, "the server port")
	databasePath := flag.String("db", cfg.General.DatabasePath, "the job registry database")
	logDir := flag.String("log-dir", cfg.General.LogDir, "directory for default job output logs")

	pemClientCACertificate := flag.String("client-ca-cert", cfg.Grpc.CACert, "the client CA certificate")
	pemServerCertificate := flag.String("server-cert", cfg.Grpc.ServerCert, "the server certificate")
	pemServerPrivateKey := flag.String("server-key", cfg.Grpc.ServerKey, "the server private key")

	flag.Parse()

	if err := os.MkdirAll(*logDir, 0755); err != nil {
		log.Fatal("cannot create log directory", zap.Error(err))
	}

	registry, err := store.Open(*databasePath)
	if err != nil {
		log.Fatal("cannot open job registry", zap.Error(err))
	}

	submitter := batch.NewSubmitter()
	submitter.SbatchPath = cfg.Batch.SbatchPath
	submitter.ScancelPath = cfg.Batch.ScancelPath

	var serverOptions []grpc.ServerOption
	if *pemClientCACertificate != "" && *pemServerCertificate != "" && *pemServerPrivateKey != "" {
		tlsCredentials, err := loadTLSCredentials(*pemClientCACertificate, *pemServerCertificate, *pemServerPrivateKey)
		if err != nil {
			log.Fatal("failed to load TLS credentials", zap.Error(err))
		}
		serverOptions = append(serverOptions, grpc.Creds(tlsCredentials))
	} else {
		log.Warn("no TLS certificates configured, serving insecurely")
	}

	serviceRegistrar := grpc.NewServer(serverOptions...)

	server := NewJobLauncherServer(registry, submitter, *logDir, cfg.Batch.BashPath)

	proto.RegisterJobLauncherServer(serviceRegistrar, server)
	reflection.Register(serviceRegistrar)

	address := fmt.Sprintf(":%d", *port)
	lis, err := net.Listen("tcp", address)
	if err != nil {
		log.Fatal("cannot create listener", zap.String("address", address), zap.Error(err))
	}

	log.Info("server listening", zap.String("address", address))

	if err = serviceRegistrar.Serve(lis); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func loadTLSCredentials(pemClientCACertificate, pemServerCertificate, pemServerPrivateKey string) (credentials.TransportCredentials, error) {
	// load certificate of the CA who signed clients' certificates
	pemClientCA, err := os.ReadFile(pemClientCACertificate)
	if err != nil {
		return nil, err
	}

	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(pemClientCA) {
		return nil, fmt.Errorf("failed to append client CA's certificates")
	}

	// load server certificate and private key
	serverCert, err := tls.LoadX509KeyPair(pemServerCertificate, pemServerPrivateKey)
	if err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{serverCert},
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    certPool,
	}

	return credentials.NewTLS(tlsConfig), nil
}
