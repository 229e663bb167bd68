package main

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/hpclaunch/hpclaunch/pkg/batch"
	"github.com/hpclaunch/hpclaunch/pkg/proto"
	"github.com/hpclaunch/hpclaunch/pkg/store"
)

func startTestServer(t *testing.T, submitter *batch.Submitter) proto.JobLauncherClient {
	t.Helper()

	registry, err := store.Open(":memory:")
	require.NoError(t, err)

	server := NewJobLauncherServer(registry, submitter, t.TempDir(), "/bin/bash")

	listener := bufconn.Listen(1024 * 1024)
	serviceRegistrar := grpc.NewServer()
	proto.RegisterJobLauncherServer(serviceRegistrar, server)

	go serviceRegistrar.Serve(listener)
	t.Cleanup(serviceRegistrar.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return proto.NewJobLauncherClient(conn)
}

func testProtoSpec() *proto.JobSpec {
	return &proto.JobSpec{
		Name:            "echo-job",
		WallTimeSeconds: 3600,
		Cpus:            1,
		Command:         "echo",
		Args:            []string{"hello", "world"},
	}
}

func readLogs(t *testing.T, client proto.JobLauncherClient, id string) string {
	t.Helper()

	stream, err := client.Logs(context.Background(), &proto.JobRequest{Id: id})
	require.NoError(t, err)

	var content []byte
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		content = append(content, chunk.GetContent()...)
	}

	return string(content)
}

func Test_Server_SubmitLocalJob(t *testing.T) {
	client := startTestServer(t, batch.NewSubmitter())

	response, err := client.Submit(context.Background(), &proto.SubmitRequest{
		Spec:  testProtoSpec(),
		Local: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, response.GetId())

	// draining the log stream waits out the job
	assert.Equal(t, "hello world\n", readLogs(t, client, response.GetId()))

	status, err := client.Status(context.Background(), &proto.JobRequest{Id: response.GetId()})
	require.NoError(t, err)
	assert.Equal(t, proto.State_STATE_COMPLETED, status.GetState())
	assert.Equal(t, int32(0), status.GetExitCode())
}

func Test_Server_SubmitRejectsInvalidSpec(t *testing.T) {
	client := startTestServer(t, batch.NewSubmitter())

	spec := testProtoSpec()
	spec.Cpus = 0

	_, err := client.Submit(context.Background(), &proto.SubmitRequest{Spec: spec, Local: true})
	assert.Error(t, err)
}

func Test_Server_StatusUnknownJob(t *testing.T) {
	client := startTestServer(t, batch.NewSubmitter())

	_, err := client.Status(context.Background(), &proto.JobRequest{Id: "11111111-2222-3333-4444-555555555555"})
	assert.Error(t, err)
}

func Test_Server_StatusMalformedID(t *testing.T) {
	client := startTestServer(t, batch.NewSubmitter())

	_, err := client.Status(context.Background(), &proto.JobRequest{Id: "not-a-uuid"})
	assert.Error(t, err)
}

func Test_Server_SubmitBatchJob(t *testing.T) {
	dir := t.TempDir()

	sbatch := filepath.Join(dir, "sbatch")
	require.NoError(t, os.WriteFile(sbatch,
		[]byte("#!/bin/sh\necho \"Submitted batch job 7777\"\n"), 0755))
	scancel := filepath.Join(dir, "scancel")
	require.NoError(t, os.WriteFile(scancel, []byte("#!/bin/sh\nexit 0\n"), 0755))

	submitter := batch.NewSubmitter()
	submitter.SbatchPath = sbatch
	submitter.ScancelPath = scancel

	client := startTestServer(t, submitter)

	response, err := client.Submit(context.Background(), &proto.SubmitRequest{Spec: testProtoSpec()})
	require.NoError(t, err)

	status, err := client.Status(context.Background(), &proto.JobRequest{Id: response.GetId()})
	require.NoError(t, err)
	assert.Equal(t, proto.State_STATE_PENDING, status.GetState())
	assert.Equal(t, int64(7777), status.GetSchedulerJobId())

	canceled, err := client.Cancel(context.Background(), &proto.JobRequest{Id: response.GetId()})
	require.NoError(t, err)
	assert.Equal(t, proto.State_STATE_CANCELED, canceled.GetState())

	status, err = client.Status(context.Background(), &proto.JobRequest{Id: response.GetId()})
	require.NoError(t, err)
	assert.Equal(t, proto.State_STATE_CANCELED, status.GetState())
}

// A local job from a previous daemon run has no process left to cancel and
// must not fall through to scancel.
func Test_Server_CancelStaleLocalJob(t *testing.T) {
	registry, err := store.Open(":memory:")
	require.NoError(t, err)

	require.NoError(t, registry.Create(&store.JobRecord{
		UUID:  "11111111-2222-3333-4444-555555555555",
		Name:  "echo-job",
		Mode:  store.ModeLocal,
		State: "Completed",
	}))

	scancel := filepath.Join(t.TempDir(), "scancel")
	require.NoError(t, os.WriteFile(scancel,
		[]byte("#!/bin/sh\necho called > \"$(dirname \"$0\")/scancel.ran\"\n"), 0755))

	submitter := batch.NewSubmitter()
	submitter.ScancelPath = scancel

	server := NewJobLauncherServer(registry, submitter, t.TempDir(), "/bin/bash")

	_, err = server.Cancel(context.Background(), &proto.JobRequest{Id: "11111111-2222-3333-4444-555555555555"})
	assert.ErrorContains(t, err, "no longer running")

	_, err = os.Stat(filepath.Join(filepath.Dir(scancel), "scancel.ran"))
	assert.True(t, os.IsNotExist(err), "scancel must not run for a local job")
}

// Submitting the same spec twice yields two independent jobs.
func Test_Server_ResubmitDistinctIDs(t *testing.T) {
	client := startTestServer(t, batch.NewSubmitter())

	first, err := client.Submit(context.Background(), &proto.SubmitRequest{Spec: testProtoSpec(), Local: true})
	require.NoError(t, err)
	second, err := client.Submit(context.Background(), &proto.SubmitRequest{Spec: testProtoSpec(), Local: true})
	require.NoError(t, err)

	assert.NotEqual(t, first.GetId(), second.GetId())

	readLogs(t, client, first.GetId())
	readLogs(t, client, second.GetId())
}
