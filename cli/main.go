package main

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/hpclaunch/hpclaunch/pkg/jobspec"
	"github.com/hpclaunch/hpclaunch/pkg/launcher"
	"github.com/hpclaunch/hpclaunch/pkg/proto"
)

const (
	ARGUMENT_HOST               = "host"
	ARGUMENT_FILE               = "file"
	ARGUMENT_LOCAL              = "local"
	ARGUMENT_CA_CERTIFICATE     = "ca-cert"
	ARGUMENT_CLIENT_CERTIFICATE = "client-cert"
	ARGUMENT_CLIENT_PRIVATE_KEY = "client-key"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "hpclaunch",
		Usage: "Submit and track compute jobs, locally or through the batch scheduler",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  ARGUMENT_HOST,
				Value: "localhost:8080",
				Usage: "launcher service HOST:PORT to connect to",
			},
			&cli.StringFlag{
				Name:  ARGUMENT_CA_CERTIFICATE,
				Usage: "server certificate authority (CA)",
			},
			&cli.StringFlag{
				Name:  ARGUMENT_CLIENT_CERTIFICATE,
				Usage: "client mTLS certificate",
			},
			&cli.StringFlag{
				Name:  ARGUMENT_CLIENT_PRIVATE_KEY,
				Usage: "client private key",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "submit",
				Usage: "submit a job described by a YAML spec",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     ARGUMENT_FILE,
						Aliases:  []string{"f"},
						Usage:    "path to the job spec file",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  ARGUMENT_LOCAL,
						Usage: "run on the service host instead of the batch scheduler",
					},
				},
				Action: submit,
			},
			{
				Name:      "status",
				Usage:     "report the state of a job",
				ArgsUsage: "<JOB_ID>",
				Action:    status,
			},
			{
				Name:      "logs",
				Usage:     "stream the output of a job to stdout",
				ArgsUsage: "<JOB_ID>",
				Action:    logs,
			},
			{
				Name:      "cancel",
				Usage:     "cancel a running or queued job",
				ArgsUsage: "<JOB_ID>",
				Action:    cancel,
			},
			{
				Name:  "run",
				Usage: "run a job spec on this machine, without a service, and propagate its exit code",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     ARGUMENT_FILE,
						Aliases:  []string{"f"},
						Usage:    "path to the job spec file",
						Required: true,
					},
				},
				Action: run,
			},
		},
	}
}

func submit(cCtx *cli.Context) error {
	spec, err := jobspec.Load(cCtx.String(ARGUMENT_FILE))
	if err != nil {
		return err
	}

	client, err := getClient(cCtx)
	if err != nil {
		return err
	}

	response, err := client.Submit(cCtx.Context, &proto.SubmitRequest{
		Spec:  protoFromSpec(spec),
		Local: cCtx.Bool(ARGUMENT_LOCAL),
	})
	if err != nil {
		return err
	}

	fmt.Println(response.GetId())
	return nil
}

func status(cCtx *cli.Context) error {
	jobID, err := jobIDArgument(cCtx)
	if err != nil {
		return err
	}

	client, err := getClient(cCtx)
	if err != nil {
		return err
	}

	response, err := client.Status(cCtx.Context, &proto.JobRequest{Id: jobID})
	if err != nil {
		return err
	}

	fmt.Printf("state: %s\n", stateName(response.GetState()))
	if response.GetSchedulerJobId() != 0 {
		fmt.Printf("scheduler job id: %d\n", response.GetSchedulerJobId())
	}
	if response.GetState() == proto.State_STATE_COMPLETED || response.GetState() == proto.State_STATE_FAILED {
		fmt.Printf("exit code: %d\n", response.GetExitCode())
	}
	if response.GetExitReason() != "" {
		fmt.Printf("exit reason: %s\n", response.GetExitReason())
	}
	return nil
}

func logs(cCtx *cli.Context) error {
	jobID, err := jobIDArgument(cCtx)
	if err != nil {
		return err
	}

	client, err := getClient(cCtx)
	if err != nil {
		return err
	}

	stream, err := client.Logs(cCtx.Context, &proto.JobRequest{Id: jobID})
	if err != nil {
		return err
	}

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(chunk.GetContent()); err != nil {
			return err
		}
	}
}

func cancel(cCtx *cli.Context) error {
	jobID, err := jobIDArgument(cCtx)
	if err != nil {
		return err
	}

	client, err := getClient(cCtx)
	if err != nil {
		return err
	}

	response, err := client.Cancel(cCtx.Context, &proto.JobRequest{Id: jobID})
	if err != nil {
		return err
	}

	fmt.Printf("state: %s\n", stateName(response.GetState()))
	return nil
}

// run executes the spec in place, streaming output to stdout. It exits the
// process with the entry command's exit code so callers can script around it.
func run(cCtx *cli.Context) error {
	spec, err := jobspec.Load(cCtx.String(ARGUMENT_FILE))
	if err != nil {
		return err
	}

	job := launcher.NewJob(spec)
	if err := job.Start(); err != nil {
		return err
	}

	if _, err := io.Copy(os.Stdout, job.Stream()); err != nil {
		return err
	}

	jobStatus := job.Wait()
	if jobStatus.ExitReason != "" {
		fmt.Fprintln(os.Stderr, jobStatus.ExitReason)
	}
	os.Exit(jobStatus.ExitCode)
	return nil
}

func jobIDArgument(cCtx *cli.Context) (string, error) {
	if cCtx.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one JOB_ID argument, got %d", cCtx.NArg())
	}
	return cCtx.Args().First(), nil
}

func protoFromSpec(spec *jobspec.JobSpec) *proto.JobSpec {
	return &proto.JobSpec{
		Name:             spec.Name,
		WallTimeSeconds:  int64(spec.WallTime / time.Second),
		MemoryBytes:      spec.MemoryBytes,
		Cpus:             int32(spec.CPUs),
		Gpus:             int32(spec.GPUs),
		Partition:        spec.Partition,
		OutputLogPath:    spec.OutputLogPath,
		Modules:          spec.Modules,
		Environment:      spec.Environment,
		WorkingDirectory: spec.WorkingDirectory,
		Command:          spec.Command,
		Args:             spec.Args,
	}
}

func stateName(state proto.State) string {
	switch state {
	case proto.State_STATE_PENDING:
		return "pending"
	case proto.State_STATE_RUNNING:
		return "running"
	case proto.State_STATE_COMPLETED:
		return "completed"
	case proto.State_STATE_FAILED:
		return "failed"
	case proto.State_STATE_CANCELED:
		return "canceled"
	default:
		return "unknown"
	}
}

func getClient(cCtx *cli.Context) (proto.JobLauncherClient, error) {
	caCertPath := cCtx.String(ARGUMENT_CA_CERTIFICATE)
	clientCertPath := cCtx.String(ARGUMENT_CLIENT_CERTIFICATE)
	clientKeyPath := cCtx.String(ARGUMENT_CLIENT_PRIVATE_KEY)

	transportCredentials := insecure.NewCredentials()
	if caCertPath != "" && clientCertPath != "" && clientKeyPath != "" {
		tlsCredentials, err := loadTLSCredentials(caCertPath, clientCertPath, clientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load TLS credentials: %w", err)
		}
		transportCredentials = tlsCredentials
	}

	clientConnection, err := grpc.NewClient(cCtx.String(ARGUMENT_HOST),
		grpc.WithTransportCredentials(transportCredentials))
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	return proto.NewJobLauncherClient(clientConnection), nil
}

func loadTLSCredentials(pemServerCACertificate, pemClientCertificate, pemClientPrivateKey string) (credentials.TransportCredentials, error) {
	// load certificate of the CA who signed server's certificate
	pemServerCA, err := os.ReadFile(pemServerCACertificate)
	if err != nil {
		return nil, err
	}

	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(pemServerCA) {
		return nil, fmt.Errorf("failed to append server CA's certificates")
	}

	// load client certificate and private key
	clientCert, err := tls.LoadX509KeyPair(pemClientCertificate, pemClientPrivateKey)
	if err != nil {
		return nil, err
	}

	config := &tls.Config{
		Certificates: []tls.Certificate{clientCert},
		RootCAs:      certPool,
	}

	return credentials.NewTLS(config), nil
}
