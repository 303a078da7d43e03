package validation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userExists(ids ...int64) func(context.Context, int64) (bool, error) {
	return func(_ context.Context, id int64) (bool, error) {
		for _, known := range ids {
			if known == id {
				return true, nil
			}
		}
		return false, nil
	}
}

func validTask() map[string]any {
	return map[string]any{
		"title":       "Write the report",
		"description": "Quarterly numbers",
		"status":      "pending",
		"user_id":     json.Number("1"),
	}
}

func TestValidate_TaskCreate_TitleLength(t *testing.T) {
	t.Parallel()

	rules := TaskCreateRules(userExists(1))

	for n := 0; n <= 260; n++ {
		input := validTask()
		input["title"] = strings.Repeat("a", n)

		values, errs, err := Validate(context.Background(), rules, input)
		require.NoError(t, err)

		switch {
		case n == 0:
			assert.Equal(t, []string{"El título es obligatorio."}, errs.Get("title"), n)
		case n < 5:
			assert.Equal(t, []string{"El título debe tener al menos 5 caracteres."}, errs.Get("title"), n)
		case n > 255:
			assert.Equal(t, []string{"El título no puede superar los 255 caracteres."}, errs.Get("title"), n)
		default:
			assert.Nil(t, errs, n)
			title, ok := values.String("title")
			assert.True(t, ok)
			assert.Len(t, title, n)
		}
	}
}

func TestValidate_TaskCreate_TitleCountsCharacters(t *testing.T) {
	t.Parallel()

	input := validTask()
	input["title"] = "Tarea" // 5 characters
	_, errs, err := Validate(context.Background(), TaskCreateRules(userExists(1)), input)
	require.NoError(t, err)
	assert.Nil(t, errs)

	input["title"] = "ñandú" // 5 characters, 7 bytes
	_, errs, err = Validate(context.Background(), TaskCreateRules(userExists(1)), input)
	require.NoError(t, err)
	assert.Nil(t, errs)

	input["title"] = "  abc  "
	_, errs, err = Validate(context.Background(), TaskCreateRules(userExists(1)), input)
	require.NoError(t, err)
	assert.Equal(t, []string{"El título debe tener al menos 5 caracteres."}, errs.Get("title"))
}

func TestValidate_TaskCreate_Status(t *testing.T) {
	t.Parallel()

	rules := TaskCreateRules(userExists(1))

	for _, status := range []string{"pending", "in_progress", "completed"} {
		input := validTask()
		input["status"] = status
		values, errs, err := Validate(context.Background(), rules, input)
		require.NoError(t, err)
		assert.Nil(t, errs, status)
		got, _ := values.String("status")
		assert.Equal(t, status, got)
	}

	for _, status := range []any{"bogus", "PENDING", "done", 3, true} {
		input := validTask()
		input["status"] = status
		_, errs, err := Validate(context.Background(), rules, input)
		require.NoError(t, err)
		assert.True(t, errs.Has("status"), status)
	}

	input := validTask()
	input["status"] = "bogus"
	_, errs, _ := Validate(context.Background(), rules, input)
	assert.Equal(t, []string{"El estado debe ser uno de: pending, in_progress, completed."}, errs.Get("status"))

	delete(input, "status")
	_, errs, _ = Validate(context.Background(), rules, input)
	assert.Equal(t, []string{"El estado es obligatorio."}, errs.Get("status"))
}

func TestValidate_ReportsEveryFailingRuleOfAField(t *testing.T) {
	t.Parallel()

	rules := TaskCreateRules(userExists(1))

	tests := []struct {
		name  string
		field string
		value any
		want  []string
	}{
		{
			name:  "numeric status",
			field: "status",
			value: json.Number("5"),
			want: []string{
				"El estado debe ser una cadena de texto.",
				"El estado debe ser uno de: pending, in_progress, completed.",
			},
		},
		{
			name:  "numeric title",
			field: "title",
			value: json.Number("1234"),
			want: []string{
				"El título debe ser una cadena de texto.",
				"El título debe tener al menos 5 caracteres.",
			},
		},
		{
			name:  "blank title stops at required",
			field: "title",
			value: "   ",
			want:  []string{"El título es obligatorio."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validTask()
			input[tt.field] = tt.value

			values, errs, err := Validate(context.Background(), rules, input)
			require.NoError(t, err)
			assert.Nil(t, values)
			assert.Equal(t, tt.want, errs.Get(tt.field))
			assert.Equal(t, len(tt.want), errs.Count())
		})
	}
}

func TestValidate_TaskCreate_Description(t *testing.T) {
	t.Parallel()

	rules := TaskCreateRules(userExists(1))

	tests := []struct {
		name     string
		value    any
		present  bool
		wantErr  []string
		wantNull bool
	}{
		{name: "absent", present: false},
		{name: "null", value: nil, present: true, wantNull: true},
		{name: "blank becomes null", value: "   ", present: true, wantNull: true},
		{name: "500 chars", value: strings.Repeat("d", 500), present: true},
		{name: "501 chars", value: strings.Repeat("d", 501), present: true, wantErr: []string{"La descripción no puede superar los 500 caracteres."}},
		{name: "not a string", value: json.Number("12"), present: true, wantErr: []string{"La descripción debe ser una cadena de texto."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validTask()
			delete(input, "description")
			if tt.present {
				input["description"] = tt.value
			}

			values, errs, err := Validate(context.Background(), rules, input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantErr, errs.Get("description"))
			if tt.wantErr != nil {
				return
			}
			desc, present := values.NullableString("description")
			assert.Equal(t, tt.present, present)
			if tt.wantNull {
				assert.Nil(t, desc)
			}
		})
	}
}

func TestValidate_TaskCreate_UserID(t *testing.T) {
	t.Parallel()

	rules := TaskCreateRules(userExists(1, 42))

	tests := []struct {
		name    string
		value   any
		present bool
		want    []string
		wantID  int64
	}{
		{name: "missing", want: []string{"El ID del usuario es obligatorio."}},
		{name: "null", value: nil, present: true, want: []string{"El ID del usuario es obligatorio."}},
		{name: "not integer", value: "abc", present: true, want: []string{"El ID del usuario debe ser un número entero.", "El usuario especificado no existe."}},
		{name: "fraction", value: json.Number("1.5"), present: true, want: []string{"El ID del usuario debe ser un número entero.", "El usuario especificado no existe."}},
		{name: "whole json number", value: json.Number("1.0"), present: true, wantID: 1},
		{name: "exponent json number", value: json.Number("4.2e1"), present: true, wantID: 42},
		{name: "unknown user", value: json.Number("999999"), present: true, want: []string{"El usuario especificado no existe."}},
		{name: "known user", value: json.Number("42"), present: true, wantID: 42},
		{name: "numeric string", value: "42", present: true, wantID: 42},
		{name: "float64 whole", value: float64(1), present: true, wantID: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validTask()
			delete(input, "user_id")
			if tt.present {
				input["user_id"] = tt.value
			}

			values, errs, err := Validate(context.Background(), rules, input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, errs.Get("user_id"))
			if tt.want == nil {
				id, ok := values.Int64("user_id")
				assert.True(t, ok)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestValidate_CollectsAllFieldErrors(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"title":       "Test",
		"description": strings.Repeat("x", 501),
		"status":      "bogus",
		"user_id":     json.Number("999999"),
	}

	values, errs, err := Validate(context.Background(), TaskCreateRules(userExists(1)), input)
	require.NoError(t, err)
	assert.Nil(t, values)
	require.Len(t, errs, 4)

	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "description", errs[1].Field)
	assert.Equal(t, "status", errs[2].Field)
	assert.Equal(t, "user_id", errs[3].Field)
	assert.Equal(t, 4, errs.Count())
	assert.Equal(t, "El título debe tener al menos 5 caracteres.", errs.First())
}

func TestValidate_LookupErrorAborts(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	rules := TaskCreateRules(func(context.Context, int64) (bool, error) { return false, boom })

	_, _, err := Validate(context.Background(), rules, validTask())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestValidate_TaskUpdate(t *testing.T) {
	t.Parallel()

	rules := TaskUpdateRules()

	t.Run("empty input passes", func(t *testing.T) {
		values, errs, err := Validate(context.Background(), rules, map[string]any{})
		require.NoError(t, err)
		assert.Nil(t, errs)
		assert.Empty(t, values)
	})

	t.Run("only present fields are checked and returned", func(t *testing.T) {
		values, errs, err := Validate(context.Background(), rules, map[string]any{"status": "completed"})
		require.NoError(t, err)
		assert.Nil(t, errs)
		assert.False(t, values.Has("title"))
		assert.False(t, values.Has("description"))
		status, _ := values.String("status")
		assert.Equal(t, "completed", status)
	})

	t.Run("present but invalid fails", func(t *testing.T) {
		_, errs, err := Validate(context.Background(), rules, map[string]any{
			"title":  "abc",
			"status": "archived",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"El título debe tener al menos 5 caracteres."}, errs.Get("title"))
		assert.Equal(t, []string{"El estado debe ser uno de: pending, in_progress, completed."}, errs.Get("status"))
	})

	t.Run("present null title is required", func(t *testing.T) {
		_, errs, err := Validate(context.Background(), rules, map[string]any{"title": nil})
		require.NoError(t, err)
		assert.Equal(t, []string{"El título es obligatorio."}, errs.Get("title"))
	})

	t.Run("description can be cleared", func(t *testing.T) {
		values, errs, err := Validate(context.Background(), rules, map[string]any{"description": nil})
		require.NoError(t, err)
		assert.Nil(t, errs)
		desc, present := values.NullableString("description")
		assert.True(t, present)
		assert.Nil(t, desc)
	})

	t.Run("owner cannot be reassigned", func(t *testing.T) {
		values, errs, err := Validate(context.Background(), rules, map[string]any{"user_id": json.Number("5")})
		require.NoError(t, err)
		assert.Nil(t, errs)
		assert.False(t, values.Has("user_id"))
	})
}

func TestValidate_UserCreate(t *testing.T) {
	t.Parallel()

	taken := func(_ context.Context, email string) (bool, error) {
		return email == "existente@example.com", nil
	}
	rules := UserCreateRules(taken)

	tests := []struct {
		name  string
		input map[string]any
		field string
		want  []string
	}{
		{name: "missing name", input: map[string]any{"email": "a@example.com"}, field: "name", want: []string{"El nombre es obligatorio."}},
		{name: "short name", input: map[string]any{"name": "A", "email": "a@example.com"}, field: "name", want: []string{"El nombre debe tener al menos 2 caracteres."}},
		{name: "missing email", input: map[string]any{"name": "Ana"}, field: "email", want: []string{"El email es obligatorio."}},
		{name: "invalid email", input: map[string]any{"name": "Ana", "email": "email_invalido"}, field: "email", want: []string{"El email debe tener un formato válido."}},
		{name: "display name is not a bare address", input: map[string]any{"name": "Ana", "email": "Ana <a@example.com>"}, field: "email", want: []string{"El email debe tener un formato válido."}},
		{name: "duplicate email", input: map[string]any{"name": "Ana", "email": "existente@example.com"}, field: "email", want: []string{"El email ya está registrado."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs, err := Validate(context.Background(), rules, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, errs.Get(tt.field))
		})
	}

	values, errs, err := Validate(context.Background(), rules, map[string]any{"name": " Nuevo Usuario ", "email": "nuevo@example.com"})
	require.NoError(t, err)
	assert.Nil(t, errs)
	name, _ := values.String("name")
	assert.Equal(t, "Nuevo Usuario", name)
}

func TestValidate_StatusFilter(t *testing.T) {
	t.Parallel()

	values, errs, err := Validate(context.Background(), StatusFilterRules(), map[string]any{})
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.False(t, values.Has("status"))

	_, errs, err = Validate(context.Background(), StatusFilterRules(), map[string]any{"status": "nope"})
	require.NoError(t, err)
	assert.True(t, errs.Has("status"))
}

func TestErrors_MarshalJSON_KeepsFieldOrder(t *testing.T) {
	t.Parallel()

	errs := Errors{
		{Field: "title", Messages: []string{"a"}},
		{Field: "description", Messages: []string{"b"}},
		{Field: "status", Messages: []string{"c", "d"}},
	}

	out, err := json.Marshal(errs)
	require.NoError(t, err)
	assert.Equal(t, `{"title":["a"],"description":["b"],"status":["c","d"]}`, string(out))

	out, err = json.Marshal(Errors(nil))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}

func TestRules_MessageFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "title.unknown", TaskUpdateRules().Message("title", "unknown"))
}

func TestRules_Fail(t *testing.T) {
	t.Parallel()

	errs := UserCreateRules(nil).Fail(FieldEmail, "unique")
	assert.Equal(t, 1, errs.Count())
	assert.Equal(t, []string{"El email ya está registrado."}, errs.Get("email"))
}
