package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/tasktracker-server/internal/apierror"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/validation"
)

// User implements user use cases.
type User struct {
	userStore       model.UserStore
	taskStore       model.TaskStore
	logger          *logger.Logger
	defaultPassword string
	bcryptCost      int
	now             func() time.Time
}

// NewUser creates a User service. Users created through it get
// defaultPassword, hashed with bcryptCost.
func NewUser(
	userStore model.UserStore,
	taskStore model.TaskStore,
	logger *logger.Logger,
	defaultPassword string,
	bcryptCost int,
) *User {
	return &User{
		userStore:       userStore,
		taskStore:       taskStore,
		logger:          logger,
		defaultPassword: defaultPassword,
		bcryptCost:      bcryptCost,
		now:             time.Now,
	}
}

// List returns every user with the number of tasks they own.
func (s *User) List(ctx context.Context) ([]model.UserWithTaskCount, error) {
	users, err := s.userStore.ListWithTaskCount(ctx)
	if err != nil {
		s.logger.Error("User service: failed to list users", "error", err)
		return nil, apierror.NewErrPersistence("Failed to retrieve users", err)
	}
	return users, nil
}

// Tasks returns user id and its tasks, newest first. query may carry a status
// to narrow the result.
func (s *User) Tasks(ctx context.Context, id int64, query map[string]any) (model.User, []model.Task, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, nil, apierror.NewErrUserNotFound()
	}
	if err != nil {
		s.logger.Error("User service: failed to get user", "user_id", id, "error", err)
		return model.User{}, nil, apierror.NewErrPersistence("Failed to retrieve user tasks", err)
	}

	values, fields, err := validation.Validate(ctx, validation.StatusFilterRules(), query)
	if err != nil {
		return model.User{}, nil, apierror.NewErrPersistence("Failed to retrieve user tasks", err)
	}
	if fields != nil {
		return model.User{}, nil, apierror.NewErrValidation(fields)
	}

	filter := model.TasksOfUser(user.ID)
	if status, ok := values.String(validation.FieldStatus); ok {
		filter = filter.WithStatus(model.TaskStatus(status))
	}

	tasks, err := s.taskStore.Find(ctx, filter)
	if err != nil {
		s.logger.Error("User service: failed to find user tasks", "user_id", id, "error", err)
		return model.User{}, nil, apierror.NewErrPersistence("Failed to retrieve user tasks", err)
	}

	return user, tasks, nil
}

func (s *User) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := s.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create validates input and registers a user with the default password.
func (s *User) Create(ctx context.Context, input map[string]any) (model.User, error) {
	rules := validation.UserCreateRules(s.emailTaken)

	values, fields, err := validation.Validate(ctx, rules, input)
	if err != nil {
		s.logger.Error("User service: failed to validate user", "error", err)
		return model.User{}, apierror.NewErrPersistence("Failed to create user", err)
	}
	if fields != nil {
		return model.User{}, apierror.NewErrValidation(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), s.bcryptCost)
	if err != nil {
		return model.User{}, apierror.NewErrPersistence("Failed to create user", fmt.Errorf("failed to hash password: %w", err))
	}

	name, _ := values.String(validation.FieldName)
	email, _ := values.String(validation.FieldEmail)
	now := s.now()

	user, err := s.userStore.Create(ctx, model.User{
		Name:      name,
		Email:     email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, apierror.NewErrValidation(rules.Fail(validation.FieldEmail, "unique"))
	}
	if err != nil {
		s.logger.Error("User service: failed to create user", "error", err)
		return model.User{}, apierror.NewErrPersistence("Failed to create user", err)
	}

	s.logger.Info("User service: user created", "user_id", user.ID)
	return user, nil
}
