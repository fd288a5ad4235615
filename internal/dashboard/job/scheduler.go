package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// JobFunc 定义作业执行函数
type JobFunc func(ctx context.Context) error

// Scheduler 作业调度器
type Scheduler struct {
	jobs    map[string]*ScheduledJob
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	logger  *zap.Logger
}

// ScheduledJob 表示一个调度的作业
type ScheduledJob struct {
	name     string
	interval time.Duration
	fn       JobFunc
	once     bool
}

func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		jobs:   make(map[string]*ScheduledJob),
		logger: logger,
	}
}

// RegisterJob 注册周期作业, 启动后立即执行一次
func (s *Scheduler) RegisterJob(name string, interval time.Duration, fn JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[name] = &ScheduledJob{
		name:     name,
		interval: interval,
		fn:       fn,
	}
	s.logger.Info("Registered job", zap.String("job", name), zap.Duration("interval", interval))
}

// RegisterOnceJob 注册只运行一次的作业
func (s *Scheduler) RegisterOnceJob(name string, fn JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[name] = &ScheduledJob{
		name: name,
		fn:   fn,
		once: true,
	}
	s.logger.Info("Registered once job", zap.String("job", name))
}

// Start 启动调度器, 重复调用无效
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true

	ctx, s.cancel = context.WithCancel(ctx)
	for _, j := range s.jobs {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if j.once {
				s.logger.Info("Running one-time job", zap.String("job", j.name))
				s.executeJob(ctx, j)
				return
			}
			s.runJob(ctx, j)
		}()
	}
}

// Stop 取消所有作业并等待退出, ctx 超时后不再等待
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.cancel()
	s.mu.Unlock()

	s.logger.Warn("Stopping scheduler...")

	waitCh := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(waitCh)
	}()

	select {
	case <-waitCh:
		s.logger.Info("All jobs stopped successfully")
	case <-ctx.Done():
		s.logger.Warn("Context deadline exceeded while waiting for jobs to stop")
	}
}

func (s *Scheduler) runJob(ctx context.Context, job *ScheduledJob) {
	s.logger.Info("Running job", zap.String("job", job.name))

	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	s.executeJob(ctx, job)

	for {
		select {
		case <-ticker.C:
			s.executeJob(ctx, job)
		case <-ctx.Done():
			s.logger.Info("Context cancelled, stopping job", zap.String("job", job.name))
			return
		}
	}
}

// executeJob 周期任务超时为 interval 的一半
func (s *Scheduler) executeJob(ctx context.Context, job *ScheduledJob) {
	jobCtx, cancel := context.WithCancel(ctx)
	if !job.once {
		jobCtx, cancel = context.WithTimeout(ctx, job.interval/2)
	}
	defer cancel()

	startTime := time.Now()
	if err := job.fn(jobCtx); err != nil {
		s.logger.Error("Job execution failed",
			zap.String("job", job.name),
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)))
		return
	}
	s.logger.Debug("Job execution completed",
		zap.String("job", job.name),
		zap.Duration("duration", time.Since(startTime)))
}
