package validation

import (
	"encoding/json"
	"testing"

	"TaskTrackerService/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) commands.TaskCommand {
	t.Helper()
	var cmd commands.TaskCommand
	require.NoError(t, json.Unmarshal([]byte(body), &cmd))
	return cmd
}

func TestValidTaskCommand(t *testing.T) {
	validate := New()

	cmd := decode(t, `{"title":"A","description":"B","status":"не выполнена"}`)
	assert.NoError(t, validate.Struct(cmd))

	empty := decode(t, `{"title":"A","description":"","status":"выполнена"}`)
	assert.NoError(t, validate.Struct(empty), "empty description is allowed")
}

func TestMissingFieldsAreReportedByJSONName(t *testing.T) {
	validate := New()

	err := validate.Struct(decode(t, `{}`))
	require.Error(t, err)

	fields := FieldErrors(err)
	byName := map[string]string{}
	for _, f := range fields {
		byName[f.Field] = f.Rule
	}
	assert.Equal(t, map[string]string{
		"title":       "required",
		"description": "required",
		"status":      "required",
	}, byName)
}

func TestUnknownStatusIsRejected(t *testing.T) {
	validate := New()

	err := validate.Struct(decode(t, `{"title":"A","description":"B","status":"done"}`))
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "status", fields[0].Field)
	assert.Equal(t, "taskStatus", fields[0].Rule)
	assert.Contains(t, fields[0].Message, "выполнена")
}

func TestFieldErrorsWrapsOtherErrorsAsBody(t *testing.T) {
	var cmd commands.TaskCommand
	err := json.Unmarshal([]byte(`{"title": 5}`), &cmd)
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Field)
	assert.Equal(t, "json", fields[0].Rule)
}

func TestIDError(t *testing.T) {
	fe := IDError("abc")
	assert.Equal(t, "id", fe.Field)
	assert.Equal(t, "int", fe.Rule)
	assert.Contains(t, fe.Message, `"abc"`)
}
