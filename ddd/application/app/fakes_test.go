package app

import (
	"context"
	"encoding/json"
	"time"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
)

// In-memory repository fakes for exercising the app services without a
// database. They mirror the persistence contracts, including ErrNotFound
// on missing rows.

type fakeGoalRepo struct {
	goals   map[uint64]*entity.Goal
	nextID  uint64
	updates int
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uint64]*entity.Goal)}
}

func (r *fakeGoalRepo) Create(_ context.Context, g *entity.Goal) error {
	r.nextID++
	g.ID = r.nextID
	g.CreatedAt = time.Now()
	cp := *g
	r.goals[g.ID] = &cp
	return nil
}

func (r *fakeGoalRepo) ListByUser(_ context.Context, userUUID string) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserUUID == userUUID {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindByUser(_ context.Context, id uint64, userUUID string) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok || g.UserUUID != userUUID {
		return nil, errno.NewSimpleBizError(errno.ErrNotFound, nil)
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uint64) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, errno.NewSimpleBizError(errno.ErrNotFound, nil)
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, g *entity.Goal) error {
	if _, ok := r.goals[g.ID]; !ok {
		return errno.NewSimpleBizError(errno.ErrNotFound, nil)
	}
	r.updates++
	cp := *g
	r.goals[g.ID] = &cp
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uint64, userUUID string) error {
	g, ok := r.goals[id]
	if !ok || g.UserUUID != userUUID {
		return errno.NewSimpleBizError(errno.ErrNotFound, nil)
	}
	delete(r.goals, id)
	return nil
}

type fakeTaskRepo struct {
	tasks  map[uint64]*entity.Task
	nextID uint64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint64]*entity.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now()
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userUUID string) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.UserUUID == userUUID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) FindByUser(_ context.Context, id uint64, userUUID string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserUUID != userUUID {
		return nil, errno.NewSimpleBizError(errno.ErrNotFound, nil)
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return errno.NewSimpleBizError(errno.ErrNotFound, nil)
	}
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
	nextID        uint64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.nextID++
	n.ID = r.nextID
	n.CreatedAt = time.Now()
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userUUID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].UserUUID == userUUID {
			cp := *r.notifications[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, userUUID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserUUID == userUUID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userUUID string) error {
	now := time.Now()
	for _, n := range r.notifications {
		if n.UserUUID == userUUID && !n.IsRead {
			n.IsRead = true
			n.ReadAt = &now
		}
	}
	return nil
}

type fakeUsageRepo struct {
	events []*entity.UsageEvent
	nextID uint64
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{}
}

func (r *fakeUsageRepo) Create(_ context.Context, ev *entity.UsageEvent) error {
	r.nextID++
	ev.ID = r.nextID
	cp := *ev
	r.events = append(r.events, &cp)
	return nil
}

func (r *fakeUsageRepo) CreateBatch(ctx context.Context, evs []*entity.UsageEvent) error {
	for _, ev := range evs {
		if err := r.Create(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeUsageRepo) ListByUser(_ context.Context, userUUID string) ([]*entity.UsageEvent, error) {
	var out []*entity.UsageEvent
	for _, ev := range r.events {
		if ev.UserUUID == userUUID {
			cp := *ev
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUsageRepo) ListByUserBetween(_ context.Context, userUUID string, from, to time.Time) ([]*entity.UsageEvent, error) {
	var out []*entity.UsageEvent
	for _, ev := range r.events {
		if ev.UserUUID != userUUID {
			continue
		}
		if ev.Timestamp.Before(from) || ev.Timestamp.After(to) {
			continue
		}
		cp := *ev
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUsageRepo) ListAll(_ context.Context) ([]*entity.UsageEvent, error) {
	out := make([]*entity.UsageEvent, 0, len(r.events))
	for _, ev := range r.events {
		cp := *ev
		out = append(out, &cp)
	}
	return out, nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]*entity.User, error) {
	return r.users, nil
}

// recordingEmitter captures Emit calls so tests can assert on the
// exactly-once notification contract.
type recordingEmitter struct {
	calls []emittedNotification
	err   error
}

type emittedNotification struct {
	UserUUID    string
	Title       string
	Description string
}

func (e *recordingEmitter) Emit(_ context.Context, userUUID, title, description string) error {
	if e.err != nil {
		return e.err
	}
	e.calls = append(e.calls, emittedNotification{
		UserUUID:    userUUID,
		Title:       title,
		Description: description,
	})
	return nil
}

// stubPredictor returns a canned recommendation and records its input.
type stubPredictor struct {
	recommendation string
	err            error
	gotUser        string
	gotDaily       []int64
	calls          int
}

func (p *stubPredictor) Predict(_ context.Context, userUUID string, recentDailyMinutes []int64) (string, error) {
	p.calls++
	p.gotUser = userUUID
	p.gotDaily = recentDailyMinutes
	if p.err != nil {
		return "", p.err
	}
	return p.recommendation, nil
}

// memoryCache is a map-backed cache with the same JSON round-trip the
// redis implementation performs.
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) bool {
	body, ok := c.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(body, dest) == nil
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) {
	body, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.data[key] = body
}

func (c *memoryCache) Invalidate(_ context.Context, keys ...string) {
	for _, key := range keys {
		delete(c.data, key)
	}
}
