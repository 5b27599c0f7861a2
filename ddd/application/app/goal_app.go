package app

import (
	"context"
	"fmt"
	"time"

	"github.com/M0nkiiii/Screentime-Management/ddd/application/cqe"
	"github.com/M0nkiiii/Screentime-Management/ddd/application/dto"
	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
	drepo "github.com/M0nkiiii/Screentime-Management/ddd/domain/repo"
	"github.com/M0nkiiii/Screentime-Management/ddd/domain/service"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/persistence"
	"github.com/M0nkiiii/Screentime-Management/pkg/assert"
	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
)

// GoalApp orchestrates the goal lifecycle. Transitions that change state
// emit exactly one notification; re-invoking a terminal transition is a
// no-op and emits nothing.
type GoalApp interface {
	Create(ctx context.Context, userUUID string, req *cqe.CreateGoalReq) (*dto.GoalDto, error)
	List(ctx context.Context, userUUID string) ([]dto.GoalDto, error)
	Update(ctx context.Context, id uint64, userUUID string, req *cqe.UpdateGoalReq) (*dto.GoalDto, error)
	Complete(ctx context.Context, id uint64, userUUID string) (*dto.GoalDto, error)
	Extend(ctx context.Context, id uint64, userUUID string, req *cqe.ExtendGoalReq) (*dto.GoalDto, error)
	MarkNotified(ctx context.Context, goalID uint64) error
	Delete(ctx context.Context, id uint64, userUUID string) error
}

type goalAppImpl struct {
	goals   drepo.GoalRepository
	emitter NotificationEmitter
	now     func() time.Time
}

// NewGoalApp builds the app service over explicit collaborators.
func NewGoalApp(goals drepo.GoalRepository, emitter NotificationEmitter) GoalApp {
	return &goalAppImpl{
		goals:   goals,
		emitter: emitter,
		now:     time.Now,
	}
}

// DefaultGoalApp returns the app service wired to persistence.
func DefaultGoalApp() GoalApp {
	assert.NotCircular()
	return NewGoalApp(persistence.NewGoalRepository(), DefaultNotificationApp())
}

func (a *goalAppImpl) Create(ctx context.Context, userUUID string, req *cqe.CreateGoalReq) (*dto.GoalDto, error) {
	if !req.Validate() {
		return nil, errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "goalName/targetTime")
	}
	g := entity.NewGoal(userUUID, req.GoalName, req.Description, *req.TargetTime)
	if err := a.goals.Create(ctx, g); err != nil {
		return nil, err
	}
	return a.toDto(g), nil
}

func (a *goalAppImpl) List(ctx context.Context, userUUID string) ([]dto.GoalDto, error) {
	goals, err := a.goals.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GoalDto, 0, len(goals))
	for _, g := range goals {
		items = append(items, *a.toDto(g))
	}
	return items, nil
}

func (a *goalAppImpl) Update(ctx context.Context, id uint64, userUUID string, req *cqe.UpdateGoalReq) (*dto.GoalDto, error) {
	if !req.Validate() {
		return nil, errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "goalName/targetTime")
	}
	g, err := a.goals.FindByUser(ctx, id, userUUID)
	if err != nil {
		return nil, err
	}

	g.GoalName = req.GoalName
	if req.Description != "" {
		g.Description = req.Description
	}
	g.TargetTime = *req.TargetTime

	if err := a.goals.Update(ctx, g); err != nil {
		return nil, err
	}
	return a.toDto(g), nil
}

// Complete marks the goal done and emits the achievement notification.
// An already-completed goal is returned unchanged with no notification,
// keeping completion monotonic and the notification exactly-once.
func (a *goalAppImpl) Complete(ctx context.Context, id uint64, userUUID string) (*dto.GoalDto, error) {
	g, err := a.goals.FindByUser(ctx, id, userUUID)
	if err != nil {
		return nil, err
	}
	if g.Completed {
		return a.toDto(g), nil
	}

	g.Completed = true
	if err := a.goals.Update(ctx, g); err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("Your goal %q is achieved.", g.GoalName)
	if err := a.emitter.Emit(ctx, userUUID, "Goal Achieved", desc); err != nil {
		return nil, err
	}
	return a.toDto(g), nil
}

func (a *goalAppImpl) Extend(ctx context.Context, id uint64, userUUID string, req *cqe.ExtendGoalReq) (*dto.GoalDto, error) {
	if !req.Validate() {
		return nil, errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "targetTime")
	}
	g, err := a.goals.FindByUser(ctx, id, userUUID)
	if err != nil {
		return nil, err
	}

	g.TargetTime = *req.TargetTime
	if err := a.goals.Update(ctx, g); err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("Your goal %q has been extended to %s.",
		g.GoalName, g.TargetTime.Format("January 2, 2006 3:04 PM"))
	if err := a.emitter.Emit(ctx, userUUID, "Goal Extended", desc); err != nil {
		return nil, err
	}
	return a.toDto(g), nil
}

// MarkNotified records that the deadline reminder for this goal was shown.
// It is idempotent and, unlike the other operations, looks the goal up by
// primary key only: the reminder scheduler calls it without a user scope.
func (a *goalAppImpl) MarkNotified(ctx context.Context, goalID uint64) error {
	g, err := a.goals.FindByID(ctx, goalID)
	if err != nil {
		return err
	}
	if g.Notified {
		return nil
	}
	g.Notified = true
	return a.goals.Update(ctx, g)
}

func (a *goalAppImpl) Delete(ctx context.Context, id uint64, userUUID string) error {
	return a.goals.Delete(ctx, id, userUUID)
}

func (a *goalAppImpl) toDto(g *entity.Goal) *dto.GoalDto {
	return &dto.GoalDto{
		ID:          g.ID,
		GoalName:    g.GoalName,
		Description: g.Description,
		TargetTime:  g.TargetTime,
		CreatedAt:   g.CreatedAt,
		Completed:   g.Completed,
		Notified:    g.Notified,
		Progress:    service.GoalProgress(g, a.now()),
	}
}
