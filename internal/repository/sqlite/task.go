package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dtroode/tasktracker-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	store   *Store
	builder squirrel.StatementBuilderType
}

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{
		store:   store,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *TaskRepository) selectTasks() squirrel.SelectBuilder {
	return r.builder.
		Select(
			"t.id", "t.title", "t.description", "t.status", "t.user_id", "t.created_at", "t.updated_at",
			"u.id", "u.name", "u.email",
		).
		From("tasks t").
		Join("users u ON u.id = t.user_id")
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t                    model.Task
		description          sql.NullString
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&t.ID, &t.Title, &description, &t.Status, &t.UserID, &createdAt, &updatedAt,
		&t.Owner.ID, &t.Owner.Name, &t.Owner.Email,
	)
	if err != nil {
		return model.Task{}, err
	}
	if description.Valid {
		t.Description = &description.String
	}
	t.CreatedAt = fromMillis(createdAt)
	t.UpdatedAt = fromMillis(updatedAt)
	return t, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query, args, err := r.builder.
		Insert("tasks").
		Columns("title", "description", "status", "user_id", "created_at", "updated_at").
		Values(task.Title, nullable(task.Description), string(task.Status), task.UserID, toMillis(task.CreatedAt), toMillis(task.UpdatedAt)).
		ToSql()
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to build insert: %w", err)
	}

	res, err := r.store.db.ExecContext(ctx, query, args...)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to read task id: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (model.Task, error) {
	query, args, err := r.selectTasks().
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to build select: %w", err)
	}

	task, err := scanTask(r.store.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task model.Task) (model.Task, error) {
	query, args, err := r.builder.
		Update("tasks").
		Set("title", task.Title).
		Set("description", nullable(task.Description)).
		Set("status", string(task.Status)).
		Set("updated_at", toMillis(task.UpdatedAt)).
		Where(squirrel.Eq{"id": task.ID}).
		ToSql()
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to build update: %w", err)
	}

	res, err := r.store.db.ExecContext(ctx, query, args...)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	} else if n == 0 {
		return model.Task{}, model.ErrNotFound
	}

	return r.GetByID(ctx, task.ID)
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Find(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	q := r.selectTasks().OrderBy("t.created_at DESC", "t.id DESC")
	if filter.UserID != nil {
		q = q.Where(squirrel.Eq{"t.user_id": *filter.UserID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"t.status": string(*filter.Status)})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}

	return tasks, nil
}
