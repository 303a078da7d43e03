package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/tasktracker-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db      *Connection
	builder squirrel.StatementBuilderType
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
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

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID, &t.CreatedAt, &t.UpdatedAt,
		&t.Owner.ID, &t.Owner.Name, &t.Owner.Email,
	)
	return t, err
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query, args, err := r.builder.
		Insert("tasks").
		Columns("title", "description", "status", "user_id", "created_at", "updated_at").
		Values(task.Title, task.Description, string(task.Status), task.UserID, task.CreatedAt, task.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to build insert: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
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

	task, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
		Set("description", task.Description).
		Set("status", string(task.Status)).
		Set("updated_at", task.UpdatedAt).
		Where(squirrel.Eq{"id": task.ID}).
		ToSql()
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to build update: %w", err)
	}

	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.Task{}, model.ErrNotFound
	}

	return r.GetByID(ctx, task.ID)
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) findQuery(filter model.TaskFilter) (string, []any, error) {
	q := r.selectTasks().OrderBy("t.created_at DESC", "t.id DESC")
	if filter.UserID != nil {
		q = q.Where(squirrel.Eq{"t.user_id": *filter.UserID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"t.status": string(*filter.Status)})
	}
	return q.ToSql()
}

func (r *TaskRepository) Find(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	query, args, err := r.findQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
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
