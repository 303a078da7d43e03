// Command seed loads demo users and tasks into the configured database.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/tasktracker-server/internal/config"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/repository"
	"github.com/dtroode/tasktracker-server/internal/service"
)

const seedPassword = "password123"

type seedTask struct {
	title       string
	description string
	status      model.TaskStatus
}

type seedUser struct {
	name  string
	email string
	tasks []seedTask
}

var seedData = []seedUser{
	{
		name:  "Juan Pérez",
		email: "juan@example.com",
		tasks: []seedTask{
			{"Completar documentación del proyecto", "Escribir la documentación técnica del sistema de tareas", model.TaskStatusInProgress},
			{"Revisar código de autenticación", "Hacer code review del módulo de autenticación", model.TaskStatusPending},
			{"Implementar tests unitarios", "Crear tests para los modelos User y Task", model.TaskStatusCompleted},
		},
	},
	{
		name:  "María García",
		email: "maria@example.com",
		tasks: []seedTask{
			{"Diseñar interfaz de usuario", "Crear mockups para la interfaz de gestión de tareas", model.TaskStatusPending},
			{"Configurar base de datos", "Configurar la base de datos de producción", model.TaskStatusInProgress},
		},
	},
}

func main() {
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("failed to seed database", "error", err)
	}
}

// run seeds the database and prints task counts per status.
func run(ctx context.Context, cfg *config.Config, logger *logger.Logger) error {
	stores, err := repository.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize %s storage: %w", cfg.Database.Driver, err)
	}
	defer stores.Close()

	if err := seed(ctx, stores, cfg.Users.BcryptCost, logger); err != nil {
		return err
	}

	tasks := service.NewTask(stores.Tasks, stores.Users, logger)
	for _, filter := range []struct {
		label  string
		filter model.TaskFilter
	}{
		{"pending", model.PendingTasks()},
		{"in_progress", model.InProgressTasks()},
		{"completed", model.CompletedTasks()},
	} {
		found, err := tasks.Find(ctx, filter.filter)
		if err != nil {
			return fmt.Errorf("failed to count %s tasks: %w", filter.label, err)
		}
		fmt.Printf("%-12s %d\n", filter.label, len(found))
	}
	return nil
}

// seed inserts the demo data. Users that already exist are reused and get
// no new tasks, so running it twice leaves the database unchanged.
func seed(ctx context.Context, stores *repository.Stores, bcryptCost int, logger *logger.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	for _, su := range seedData {
		now := time.Now()
		user, err := stores.Users.Create(ctx, model.User{
			Name:      su.name,
			Email:     su.email,
			Password:  string(hash),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if errors.Is(err, model.ErrAlreadyExists) {
			logger.Info("user already seeded", "email", su.email)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", su.email, err)
		}

		for _, st := range su.tasks {
			description := st.description
			now := time.Now()
			if _, err := stores.Tasks.Create(ctx, model.Task{
				Title:       st.title,
				Description: &description,
				Status:      st.status,
				UserID:      user.ID,
				CreatedAt:   now,
				UpdatedAt:   now,
			}); err != nil {
				return fmt.Errorf("failed to create task %q: %w", st.title, err)
			}
		}
		logger.Info("user seeded", "email", su.email, "tasks", len(su.tasks))
	}

	return nil
}
