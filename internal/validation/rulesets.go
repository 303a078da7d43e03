package validation

import (
	"context"

	"github.com/dtroode/tasktracker-server/internal/model"
)

// Task and user field names.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldUserID      = "user_id"
	FieldName        = "name"
	FieldEmail       = "email"
)

var taskMessages = map[string]string{
	"title.required":     "El título es obligatorio.",
	"title.string":       "El título debe ser una cadena de texto.",
	"title.min":          "El título debe tener al menos 5 caracteres.",
	"title.max":          "El título no puede superar los 255 caracteres.",
	"description.string": "La descripción debe ser una cadena de texto.",
	"description.max":    "La descripción no puede superar los 500 caracteres.",
	"status.required":    "El estado es obligatorio.",
	"status.string":      "El estado debe ser una cadena de texto.",
	"status.in":          "El estado debe ser uno de: pending, in_progress, completed.",
	"user_id.required":   "El ID del usuario es obligatorio.",
	"user_id.integer":    "El ID del usuario debe ser un número entero.",
	"user_id.exists":     "El usuario especificado no existe.",
}

var userMessages = map[string]string{
	"name.required":  "El nombre es obligatorio.",
	"name.string":    "El nombre debe ser una cadena de texto.",
	"name.min":       "El nombre debe tener al menos 2 caracteres.",
	"name.max":       "El nombre no puede superar los 255 caracteres.",
	"email.required": "El email es obligatorio.",
	"email.string":   "El email debe ser una cadena de texto.",
	"email.email":    "El email debe tener un formato válido.",
	"email.max":      "El email no puede superar los 255 caracteres.",
	"email.unique":   "El email ya está registrado.",
}

func statusValues() []string {
	statuses := model.TaskStatuses()
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

func taskFields(presence Presence) []Field {
	return []Field{
		{
			Name:     FieldTitle,
			Presence: presence,
			Rules:    []Rule{Required(), String(), Min(5), Max(255)},
		},
		{
			Name:     FieldDescription,
			Presence: presence,
			Nullable: true,
			Rules:    []Rule{String(), Max(500)},
		},
		{
			Name:     FieldStatus,
			Presence: presence,
			Rules:    []Rule{Required(), String(), In(statusValues()...)},
		},
	}
}

// TaskCreateRules returns the rule set for new tasks. userExists resolves the
// owning user id.
func TaskCreateRules(userExists func(ctx context.Context, id int64) (bool, error)) Rules {
	fields := append(taskFields(Always), Field{
		Name:     FieldUserID,
		Presence: Always,
		Rules: []Rule{
			Required(),
			Integer(),
			Exists(func(ctx context.Context, v any) (bool, error) {
				id, ok := v.(int64)
				if !ok {
					return false, nil
				}
				return userExists(ctx, id)
			}),
		},
	})
	return Rules{Fields: fields, Messages: taskMessages}
}

// TaskUpdateRules returns the rule set for task updates. Every field is
// optional but checked when present; ownership cannot be changed.
func TaskUpdateRules() Rules {
	return Rules{Fields: taskFields(Sometimes), Messages: taskMessages}
}

// StatusFilterRules returns the rule set for an optional status query filter.
func StatusFilterRules() Rules {
	return Rules{
		Fields: []Field{{
			Name:     FieldStatus,
			Presence: Sometimes,
			Nullable: true,
			Rules:    []Rule{String(), In(statusValues()...)},
		}},
		Messages: taskMessages,
	}
}

// UserCreateRules returns the rule set for new users. emailTaken reports
// whether an address is already registered.
func UserCreateRules(emailTaken func(ctx context.Context, email string) (bool, error)) Rules {
	return Rules{
		Fields: []Field{
			{
				Name:     FieldName,
				Presence: Always,
				Rules:    []Rule{Required(), String(), Min(2), Max(255)},
			},
			{
				Name:     FieldEmail,
				Presence: Always,
				Rules: []Rule{
					Required(),
					String(),
					Email(),
					Max(255),
					Unique(func(ctx context.Context, v any) (bool, error) {
						email, ok := v.(string)
						if !ok {
							return false, nil
						}
						return emailTaken(ctx, email)
					}),
				},
			},
		},
		Messages: userMessages,
	}
}
