package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope_SuccessDataShape(t *testing.T) {
	t.Parallel()

	env, err := decodeEnvelope([]byte(`{"success":true,"data":{"id":7},"message":"ok"}`))
	require.NoError(t, err)

	assert.True(t, env.Success)
	assert.Equal(t, "ok", env.Message)

	var payload struct {
		ID int `json:"id"`
	}
	require.NoError(t, env.Decode(&payload))
	assert.Equal(t, 7, payload.ID)
}

func TestDecodeEnvelope_SuccessFalse(t *testing.T) {
	t.Parallel()

	env, err := decodeEnvelope([]byte(`{"success":false,"message":"Leave request not found"}`))
	require.NoError(t, err)

	assert.False(t, env.Success)
	assert.Equal(t, "Leave request not found", env.Message)
}

func TestDecodeEnvelope_StatusStringShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		success bool
	}{
		{"status success", `{"status":"success","data":[]}`, true},
		{"status ok", `{"status":"ok","data":[]}`, true},
		{"status error", `{"status":"error","message":"boom"}`, false},
		{"status bool true", `{"status":true,"data":[]}`, true},
		{"status bool false", `{"status":false}`, false},
		{"status numeric one", `{"status":1,"data":[]}`, true},
		{"status numeric zero", `{"status":0}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := decodeEnvelope([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.success, env.Success)
		})
	}
}

func TestDecodeEnvelope_BareArray(t *testing.T) {
	t.Parallel()

	env, err := decodeEnvelope([]byte(`[{"id":1},{"id":2}]`))
	require.NoError(t, err)

	assert.True(t, env.Success)

	var items []struct {
		ID int `json:"id"`
	}
	require.NoError(t, env.Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[1].ID)
}

func TestDecodeEnvelope_BareObject(t *testing.T) {
	t.Parallel()

	env, err := decodeEnvelope([]byte(`{"employee_id":42,"company_id":3}`))
	require.NoError(t, err)

	assert.True(t, env.Success)

	var payload struct {
		EmployeeID int `json:"employee_id"`
	}
	require.NoError(t, env.Decode(&payload))
	assert.Equal(t, 42, payload.EmployeeID)
}

func TestDecodeEnvelope_EmptyBody(t *testing.T) {
	t.Parallel()

	env, err := decodeEnvelope([]byte("  "))
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Nil(t, env.Data)
}

func TestDecodeEnvelope_ErrorFieldFallback(t *testing.T) {
	t.Parallel()

	env, err := decodeEnvelope([]byte(`{"success":false,"error":"Something broke"}`))
	require.NoError(t, err)
	assert.Equal(t, "Something broke", env.Message)
}

func TestDecodeEnvelope_NonJSON(t *testing.T) {
	t.Parallel()

	_, err := decodeEnvelope([]byte("<html>Fatal error</html>"))
	assert.Error(t, err)
}

func TestFlexInt(t *testing.T) {
	t.Parallel()

	var payload struct {
		Quoted FlexInt `json:"quoted"`
		Plain  FlexInt `json:"plain"`
		Empty  FlexInt `json:"empty"`
		Null   FlexInt `json:"null"`
	}

	body := `{"quoted":"42","plain":7,"empty":"","null":null}`
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	assert.Equal(t, 42, payload.Quoted.Int())
	assert.Equal(t, 7, payload.Plain.Int())
	assert.Equal(t, 0, payload.Empty.Int())
	assert.Equal(t, 0, payload.Null.Int())
}

func TestFlexInt_Invalid(t *testing.T) {
	t.Parallel()

	var v FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"forty-two"`), &v))
}
