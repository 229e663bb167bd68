package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/hpclaunch/hpclaunch/pkg/batch"
	"github.com/hpclaunch/hpclaunch/pkg/jobspec"
	"github.com/hpclaunch/hpclaunch/pkg/launcher"
	"github.com/hpclaunch/hpclaunch/pkg/proto"
	"github.com/hpclaunch/hpclaunch/pkg/store"
)

var ErrJobNotFound = errors.New("job not found")

// JobLauncherServer dispatches submitted specs either to the local launcher
// or to the batch scheduler, and keeps every submission in the registry.
type JobLauncherServer struct {
	proto.UnimplementedJobLauncherServer

	mutex     sync.Mutex
	localJobs map[uuid.UUID]*launcher.Job

	registry  *store.Store
	submitter *batch.Submitter
	logDir    string
	bashPath  string
}

func NewJobLauncherServer(registry *store.Store, submitter *batch.Submitter, logDir, bashPath string) *JobLauncherServer {
	return &JobLauncherServer{
		localJobs: make(map[uuid.UUID]*launcher.Job),
		registry:  registry,
		submitter: submitter,
		logDir:    logDir,
		bashPath:  bashPath,
	}
}

func (s *JobLauncherServer) Submit(ctx context.Context, request *proto.SubmitRequest) (*proto.SubmitResponse, error) {
	spec := specFromProto(request.GetSpec())

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if request.GetLocal() {
		return s.submitLocal(spec)
	}

	return s.submitBatch(ctx, spec)
}

func (s *JobLauncherServer) submitLocal(spec *jobspec.JobSpec) (*proto.SubmitResponse, error) {
	job := launcher.NewJob(spec)
	job.SetBashPath(s.bashPath)

	if spec.OutputLogPath == "" {
		spec.OutputLogPath = filepath.Join(s.logDir, fmt.Sprintf("%s_%s.out", spec.Name, job.UUID))
	}

	record := &store.JobRecord{
		UUID:         job.UUID.String(),
		Name:         spec.Name,
		Mode:         store.ModeLocal,
		State:        string(launcher.StatePending),
		Partition:    spec.Partition,
		CPUs:         spec.CPUs,
		GPUs:         spec.GPUs,
		MemoryBytes:  spec.MemoryBytes,
		WallTimeSecs: int64(spec.WallTime / time.Second),
		LogPath:      job.LogPath(),
	}
	if err := s.registry.Create(record); err != nil {
		return nil, err
	}

	if err := job.Start(); err != nil {
		s.registry.UpdateState(job.UUID.String(), string(launcher.StateFailed), -1)
		return nil, err
	}

	s.mutex.Lock()
	s.localJobs[job.UUID] = job
	s.mutex.Unlock()

	s.registry.UpdateState(job.UUID.String(), string(launcher.StateRunning), 0)

	// record the final state once the job is reaped
	go func() {
		status := job.Wait()
		if err := s.registry.UpdateState(job.UUID.String(), string(status.State), status.ExitCode); err != nil {
			log.Error("failed to record final job state",
				zap.String("id", job.UUID.String()), zap.Error(err))
		}
	}()

	log.Info("accepted local job",
		zap.String("id", job.UUID.String()),
		zap.String("name", spec.Name))

	return &proto.SubmitResponse{Id: job.UUID.String()}, nil
}

func (s *JobLauncherServer) submitBatch(ctx context.Context, spec *jobspec.JobSpec) (*proto.SubmitResponse, error) {
	schedulerJobID, err := s.submitter.Submit(ctx, spec)
	if err != nil {
		return nil, err
	}

	jobUUID := uuid.New()
	record := &store.JobRecord{
		UUID:           jobUUID.String(),
		Name:           spec.Name,
		Mode:           store.ModeBatch,
		State:          string(launcher.StatePending),
		SchedulerJobID: schedulerJobID,
		Partition:      spec.Partition,
		CPUs:           spec.CPUs,
		GPUs:           spec.GPUs,
		MemoryBytes:    spec.MemoryBytes,
		WallTimeSecs:   int64(spec.WallTime / time.Second),
		LogPath:        spec.OutputLogPath,
	}
	if err := s.registry.Create(record); err != nil {
		return nil, err
	}

	log.Info("accepted batch job",
		zap.String("id", jobUUID.String()),
		zap.String("name", spec.Name),
		zap.Int64("scheduler_job_id", schedulerJobID))

	return &proto.SubmitResponse{Id: jobUUID.String()}, nil
}

func (s *JobLauncherServer) Status(ctx context.Context, request *proto.JobRequest) (*proto.StatusResponse, error) {
	jobUUID, err := uuid.Parse(request.GetId())
	if err != nil {
		return nil, fmt.Errorf("malformed job id %q: %w", request.GetId(), err)
	}

	s.mutex.Lock()
	job, isLocal := s.localJobs[jobUUID]
	s.mutex.Unlock()

	if isLocal {
		status := job.Status()
		return &proto.StatusResponse{
			State:      protoState(status.State),
			ExitCode:   int32(status.ExitCode),
			ExitReason: status.ExitReason,
		}, nil
	}

	record, err := s.registry.Get(jobUUID.String())
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	return &proto.StatusResponse{
		State:          protoState(launcher.State(record.State)),
		ExitCode:       int32(record.ExitCode),
		SchedulerJobId: record.SchedulerJobID,
	}, nil
}

func (s *JobLauncherServer) Logs(request *proto.JobRequest, stream grpc.ServerStreamingServer[proto.LogChunk]) error {
	jobUUID, err := uuid.Parse(request.GetId())
	if err != nil {
		return fmt.Errorf("malformed job id %q: %w", request.GetId(), err)
	}

	s.mutex.Lock()
	job, isLocal := s.localJobs[jobUUID]
	s.mutex.Unlock()

	if isLocal {
		return streamOutput(job.Stream(), stream)
	}

	record, err := s.registry.Get(jobUUID.String())
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return err
	}

	if record.LogPath == "" {
		return fmt.Errorf("job %s has no output log", jobUUID)
	}

	// batch job logs live in the scheduler-written file
	file, err := os.Open(record.LogPath)
	if err != nil {
		return fmt.Errorf("failed to open output log: %w", err)
	}
	defer file.Close()

	return streamOutput(file, stream)
}

func streamOutput(reader io.Reader, stream grpc.ServerStreamingServer[proto.LogChunk]) error {
	buffer := make([]byte, 1024)

	for {
		bytesRead, err := reader.Read(buffer)

		if bytesRead > 0 {
			if sendErr := stream.Send(&proto.LogChunk{Content: buffer[:bytesRead]}); sendErr != nil {
				return fmt.Errorf("error sending job output: %w", sendErr)
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("error reading job output: %w", err)
		}
	}
}

func (s *JobLauncherServer) Cancel(ctx context.Context, request *proto.JobRequest) (*proto.StatusResponse, error) {
	jobUUID, err := uuid.Parse(request.GetId())
	if err != nil {
		return nil, fmt.Errorf("malformed job id %q: %w", request.GetId(), err)
	}

	s.mutex.Lock()
	job, isLocal := s.localJobs[jobUUID]
	s.mutex.Unlock()

	if isLocal {
		if err := job.Stop(); err != nil {
			return nil, err
		}
		status := job.Status()
		return &proto.StatusResponse{
			State:      protoState(status.State),
			ExitCode:   int32(status.ExitCode),
			ExitReason: status.ExitReason,
		}, nil
	}

	record, err := s.registry.Get(jobUUID.String())
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	// local records without a live job are leftovers from a previous daemon
	// run; there is no process left to cancel
	if record.Mode != store.ModeBatch {
		return nil, fmt.Errorf("job %s is no longer running", jobUUID)
	}

	if err := s.submitter.Cancel(ctx, record.SchedulerJobID); err != nil {
		return nil, err
	}

	s.registry.UpdateState(record.UUID, string(launcher.StateCanceled), record.ExitCode)

	return &proto.StatusResponse{
		State:          proto.State_STATE_CANCELED,
		SchedulerJobId: record.SchedulerJobID,
	}, nil
}

func specFromProto(p *proto.JobSpec) *jobspec.JobSpec {
	return &jobspec.JobSpec{
		Name:             p.GetName(),
		WallTime:         time.Duration(p.GetWallTimeSeconds()) * time.Second,
		MemoryBytes:      p.GetMemoryBytes(),
		CPUs:             int(p.GetCpus()),
		GPUs:             int(p.GetGpus()),
		Partition:        p.GetPartition(),
		OutputLogPath:    p.GetOutputLogPath(),
		Modules:          p.GetModules(),
		Environment:      p.GetEnvironment(),
		WorkingDirectory: p.GetWorkingDirectory(),
		Command:          p.GetCommand(),
		Args:             p.GetArgs(),
	}
}

func protoState(state launcher.State) proto.State {
	switch state {
	case launcher.StatePending:
		return proto.State_STATE_PENDING
	case launcher.StateRunning:
		return proto.State_STATE_RUNNING
	case launcher.StateCompleted:
		return proto.State_STATE_COMPLETED
	case launcher.StateFailed:
		return proto.State_STATE_FAILED
	case launcher.StateCanceled:
		return proto.State_STATE_CANCELED
	default:
		return proto.State_STATE_UNSPECIFIED
	}
}
