package game

import "time"

// maxCatchUp 单次 Advance 中同一任务最多补发的次数
// 窗口被拖动或挂起后恢复时，超出部分直接跳过，避免一次性补发上百发子弹
const maxCatchUp = 5

// Task 周期性定时任务
type Task struct {
	id        uint64
	name      string
	interval  time.Duration
	next      time.Time
	fn        func()
	cancelled bool
	fired     int // 本次 Advance 中已触发次数
}

// Name 返回任务名称
func (t *Task) Name() string {
	return t.name
}

// Cancel 取消任务
// 只有第一次调用返回 true，之后的调用无副作用
func (t *Task) Cancel() bool {
	if t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Cancelled 任务是否已取消
func (t *Task) Cancelled() bool {
	return t.cancelled
}

// Scheduler 单线程协作式调度器
//
// 射击、倒计时等实时定时器都注册在同一个调度器上，
// 由游戏循环在每帧开始时调用 Advance 统一触发，
// 因此回调与各系统的实体遍历永远不会交错执行，无需加锁。
// 调度器本身不是并发安全的，只能在游戏循环所在的 goroutine 中使用。
type Scheduler struct {
	now    time.Time
	nextID uint64
	tasks  []*Task
}

// NewScheduler 创建调度器，start 为调度器的起始时间
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{
		now:    start,
		nextID: 1,
		tasks:  make([]*Task, 0),
	}
}

// Now 返回调度器当前时间（最近一次 Advance 的时间）
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Every 注册周期任务，首次触发时间为 Now()+interval
//
// 参数：
//   - name: 任务名称（日志用）
//   - interval: 触发周期，<= 0 时按 1ms 处理
//   - fn: 回调函数，可以在回调中取消自身或注册新任务
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := &Task{
		id:       s.nextID,
		name:     name,
		interval: interval,
		next:     s.now.Add(interval),
		fn:       fn,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// Advance 推进时间到 now，按到期时间顺序触发所有到期任务
// 时间不会倒退：now 早于当前时间时按当前时间处理
//
// 返回：
//   - int: 本次触发的回调次数
func (s *Scheduler) Advance(now time.Time) int {
	if now.Before(s.now) {
		now = s.now
	}
	s.now = now

	for _, t := range s.tasks {
		t.fired = 0
	}

	fired := 0
	for {
		t := s.nextDue(now)
		if t == nil {
			break
		}
		if t.fired >= maxCatchUp {
			t.next = now.Add(t.interval)
			continue
		}
		t.next = t.next.Add(t.interval)
		t.fired++
		fired++
		t.fn()
	}

	s.compact()
	return fired
}

// nextDue 返回最早到期且未取消的任务，同时到期时先注册的优先
func (s *Scheduler) nextDue(now time.Time) *Task {
	var due *Task
	for _, t := range s.tasks {
		if t.cancelled || t.next.After(now) {
			continue
		}
		if due == nil || t.next.Before(due.next) {
			due = t
		}
	}
	return due
}

// compact 移除已取消的任务
func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// CancelAll 取消所有任务
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.Cancel()
	}
	s.compact()
}

// Len 返回未取消的任务数量
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
