package app

import (
	"context"
	"fmt"

	"github.com/M0nkiiii/Screentime-Management/ddd/application/cqe"
	"github.com/M0nkiiii/Screentime-Management/ddd/application/dto"
	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
	drepo "github.com/M0nkiiii/Screentime-Management/ddd/domain/repo"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/persistence"
	"github.com/M0nkiiii/Screentime-Management/pkg/assert"
	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
)

// TaskApp orchestrates the task lifecycle: pending → completed, with a
// notification on creation and on the completion transition.
type TaskApp interface {
	Create(ctx context.Context, userUUID string, req *cqe.CreateTaskReq) (*dto.TaskDto, error)
	List(ctx context.Context, userUUID string) ([]dto.TaskDto, error)
	Complete(ctx context.Context, id uint64, userUUID string) (*dto.TaskDto, error)
}

type taskAppImpl struct {
	tasks   drepo.TaskRepository
	emitter NotificationEmitter
}

// NewTaskApp builds the app service over explicit collaborators.
func NewTaskApp(tasks drepo.TaskRepository, emitter NotificationEmitter) TaskApp {
	return &taskAppImpl{tasks: tasks, emitter: emitter}
}

// DefaultTaskApp returns the app service wired to persistence.
func DefaultTaskApp() TaskApp {
	assert.NotCircular()
	return NewTaskApp(persistence.NewTaskRepository(), DefaultNotificationApp())
}

func (a *taskAppImpl) Create(ctx context.Context, userUUID string, req *cqe.CreateTaskReq) (*dto.TaskDto, error) {
	if !req.Validate() {
		return nil, errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "taskName/date")
	}
	t := entity.NewTask(userUUID, req.TaskName, req.Description, *req.Date)
	if err := a.tasks.Create(ctx, t); err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("You have added a new task: %q.", t.TaskName)
	if err := a.emitter.Emit(ctx, userUUID, "New Task Added", desc); err != nil {
		return nil, err
	}
	return taskToDto(t), nil
}

func (a *taskAppImpl) List(ctx context.Context, userUUID string) ([]dto.TaskDto, error) {
	tasks, err := a.tasks.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaskDto, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, *taskToDto(t))
	}
	return items, nil
}

// Complete marks the task done. Like goals, completion is monotonic: an
// already-completed task comes back unchanged with no second notification.
func (a *taskAppImpl) Complete(ctx context.Context, id uint64, userUUID string) (*dto.TaskDto, error) {
	t, err := a.tasks.FindByUser(ctx, id, userUUID)
	if err != nil {
		return nil, err
	}
	if t.Completed {
		return taskToDto(t), nil
	}

	t.Completed = true
	if err := a.tasks.Update(ctx, t); err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("You have marked the task %q as completed.", t.TaskName)
	if err := a.emitter.Emit(ctx, userUUID, "Task Completed", desc); err != nil {
		return nil, err
	}
	return taskToDto(t), nil
}

func taskToDto(t *entity.Task) *dto.TaskDto {
	return &dto.TaskDto{
		ID:          t.ID,
		TaskName:    t.TaskName,
		Description: t.Description,
		Date:        t.Date,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
	}
}
