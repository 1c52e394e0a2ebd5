package transcribe

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hearsay/internal/config"
	"hearsay/internal/domain"
	"hearsay/internal/eventbus"
	"hearsay/internal/library"
	"hearsay/internal/logging"
)

// jobTimeout caps a single engine run.
const jobTimeout = 30 * time.Minute

// Service runs transcription jobs against the configured external engine
type Service interface {
	Enqueue(source string) string
	Jobs() []*domain.Job
	Stop()
}

// service is the concrete implementation
type service struct {
	bus    eventbus.EventBus
	store  library.Store
	engine config.EngineSettings

	mu    sync.Mutex
	jobs  map[string]*domain.Job
	order []string

	workers chan struct{} // semaphore bounding concurrent engine runs
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	log     *logrus.Entry
}

// NewService creates a transcription service. Jobs can also be requested
// over the bus with JobRequestedEvent.
func NewService(bus eventbus.EventBus, engine config.EngineSettings, store library.Store) Service {
	workers := engine.Workers
	if workers <= 0 {
		workers = 2
	}

	ctx, cancel := context.WithCancel(context.Background())
	ts := &service{
		bus:     bus,
		store:   store,
		engine:  engine,
		jobs:    make(map[string]*domain.Job),
		workers: make(chan struct{}, workers),
		ctx:     ctx,
		cancel:  cancel,
		log:     logging.NewLogger("transcribe"),
	}

	bus.Subscribe(domain.EventJobRequested, func(e domain.DomainEvent) {
		if event, ok := e.(domain.JobRequestedEvent); ok {
			ts.Enqueue(event.Source)
		}
	})

	return ts
}

// Enqueue registers a job for the source file and schedules it. The job id
// is returned immediately; lifecycle updates arrive over the bus.
func (ts *service) Enqueue(source string) string {
	job := &domain.Job{
		ID:       uuid.NewString(),
		Source:   source,
		State:    domain.JobQueued,
		QueuedAt: time.Now(),
	}

	ts.mu.Lock()
	ts.jobs[job.ID] = job
	ts.order = append(ts.order, job.ID)
	ts.mu.Unlock()

	ts.log.Debugf("Queued job %s for %s", job.ID, source)
	ts.bus.Publish(domain.JobQueuedEvent{Job: *job})

	ts.wg.Add(1)
	go ts.run(job.ID)
	return job.ID
}

// Jobs returns a snapshot of all jobs in queue order.
func (ts *service) Jobs() []*domain.Job {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	result := make([]*domain.Job, 0, len(ts.order))
	for _, id := range ts.order {
		j := *ts.jobs[id]
		result = append(result, &j)
	}
	return result
}

// Stop cancels running engines and waits for workers to wind down.
func (ts *service) Stop() {
	ts.cancel()
	ts.wg.Wait()
}

func (ts *service) run(id string) {
	defer ts.wg.Done()

	select {
	case ts.workers <- struct{}{}:
		defer func() { <-ts.workers }()
	case <-ts.ctx.Done():
		return
	}

	ts.mu.Lock()
	job, ok := ts.jobs[id]
	if !ok {
		ts.mu.Unlock()
		return
	}
	source := job.Source
	ts.mu.Unlock()

	ctx, cancel := context.WithTimeout(ts.ctx, jobTimeout)
	defer cancel()

	ts.setRunning(id)

	staging, err := os.MkdirTemp("", "hearsay-job-")
	if err != nil {
		ts.fail(id, fmt.Sprintf("failed to create staging dir: %v", err))
		return
	}
	defer os.RemoveAll(staging)
	outBase := filepath.Join(staging, "out")

	cmd := exec.CommandContext(ctx, ts.engine.Command, expandArgs(ts.engine, source, outBase)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		ts.fail(id, fmt.Sprintf("failed to open stdout: %v", err))
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		ts.fail(id, fmt.Sprintf("failed to open stderr: %v", err))
		return
	}

	if err := cmd.Start(); err != nil {
		ts.fail(id, fmt.Sprintf("failed to start %s: %v", ts.engine.Command, err))
		return
	}

	var pipes sync.WaitGroup
	pipes.Add(2)
	go ts.consume(id, stdout, &pipes)
	go ts.consume(id, stderr, &pipes)
	pipes.Wait()

	if err := cmd.Wait(); err != nil {
		ts.fail(id, fmt.Sprintf("engine exited: %v", err))
		return
	}

	body, err := os.ReadFile(outBase + ".txt")
	if err != nil {
		ts.fail(id, "engine produced no transcript")
		return
	}

	ts.complete(id, source, string(body))
}

// consume parses engine output lines into progress updates.
func (ts *service) consume(id string, r io.Reader, wg *sync.WaitGroup) {
	defer wg.Done()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if stage, progress, ok := parseLine(scanner.Text()); ok {
			ts.advance(id, stage, progress)
		}
	}
}

func (ts *service) setRunning(id string) {
	ts.mu.Lock()
	if job, ok := ts.jobs[id]; ok {
		job.State = domain.JobRunning
		job.StartedAt = time.Now()
		job.Stage = "starting"
	}
	ts.mu.Unlock()

	ts.bus.Publish(domain.JobStartedEvent{JobID: id})
}

// advance applies a progress update. Progress never goes backwards; the
// engine restarts its counter between passes.
func (ts *service) advance(id string, stage string, progress float64) {
	ts.mu.Lock()
	job, ok := ts.jobs[id]
	if !ok || job.State != domain.JobRunning {
		ts.mu.Unlock()
		return
	}

	changed := false
	if stage != "" && stage != job.Stage {
		job.Stage = stage
		changed = true
	}
	if progress >= 0 && progress > job.Progress {
		job.Progress = progress
		changed = true
	}
	snapshot := *job
	ts.mu.Unlock()

	if changed {
		ts.bus.Publish(domain.JobProgressedEvent{
			JobID:    id,
			Progress: snapshot.Progress,
			Stage:    snapshot.Stage,
		})
	}
}

func (ts *service) complete(id, source, body string) {
	transcript := &domain.Transcript{
		ID:        uuid.NewString(),
		Title:     titleFor(source),
		Source:    source,
		Language:  ts.engine.Language,
		Words:     len(strings.Fields(body)),
		CreatedAt: time.Now(),
	}

	if err := ts.store.Add(transcript, body); err != nil {
		ts.fail(id, fmt.Sprintf("failed to store transcript: %v", err))
		return
	}

	ts.mu.Lock()
	if job, ok := ts.jobs[id]; ok {
		job.State = domain.JobDone
		job.Progress = 1
		job.Stage = "done"
		job.DoneAt = time.Now()
	}
	ts.mu.Unlock()

	ts.log.Infof("Job %s completed (%d words)", id, transcript.Words)
	ts.bus.Publish(domain.TranscriptAddedEvent{Transcript: *transcript})
	ts.bus.Publish(domain.JobCompletedEvent{JobID: id, Transcript: *transcript})
	ts.notify(domain.NotifySuccess, fmt.Sprintf("Transcribed %s", filepath.Base(source)))
}

func (ts *service) fail(id, reason string) {
	ts.mu.Lock()
	job, ok := ts.jobs[id]
	if !ok || job.Terminal() {
		ts.mu.Unlock()
		return
	}
	job.State = domain.JobFailed
	job.Error = reason
	job.DoneAt = time.Now()
	source := job.Source
	ts.mu.Unlock()

	ts.log.Warnf("Job %s failed: %s", id, reason)
	ts.bus.Publish(domain.JobFailedEvent{JobID: id, Reason: reason})
	ts.notify(domain.NotifyError, fmt.Sprintf("Transcription failed for %s", filepath.Base(source)))
}

func (ts *service) notify(kind domain.NotificationKind, text string) {
	ts.bus.Publish(domain.NotificationAddedEvent{Notification: domain.Notification{
		ID:   uuid.NewString(),
		Kind: kind,
		Text: text,
		At:   time.Now(),
	}})
}

// expandArgs fills the {input}/{output}/{model}/{language} placeholders in
// the configured argument template.
func expandArgs(engine config.EngineSettings, input, output string) []string {
	repl := strings.NewReplacer(
		"{input}", input,
		"{output}", output,
		"{model}", engine.Model,
		"{language}", engine.Language,
	)

	args := make([]string, len(engine.Args))
	for i, a := range engine.Args {
		args[i] = repl.Replace(a)
	}
	return args
}

var progressRe = regexp.MustCompile(`progress\s*=\s*(\d+)%`)

// parseLine extracts a stage or progress update from one line of engine
// output. whisper-cli reports progress as "progress =  N%" lines.
func parseLine(line string) (stage string, progress float64, ok bool) {
	if m := progressRe.FindStringSubmatch(line); m != nil {
		pct, err := strconv.Atoi(m[1])
		if err != nil || pct > 100 {
			return "", 0, false
		}
		return "transcribing", float64(pct) / 100, true
	}
	if strings.Contains(line, "loading model") {
		return "loading model", -1, true
	}
	return "", 0, false
}

// titleFor derives a display title from the source file name.
func titleFor(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
