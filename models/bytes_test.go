package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes_MarshalsAsNumberArray(t *testing.T) {
	out, err := json.Marshal(Bytes{0, 1, 127, 255})
	require.NoError(t, err)
	assert.JSONEq(t, "[0,1,127,255]", string(out))
}

func TestBytes_NilMarshalsAsEmptyArray(t *testing.T) {
	out, err := json.Marshal(Bytes(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestBytes_UnmarshalNumberArray(t *testing.T) {
	var b Bytes
	require.NoError(t, json.Unmarshal([]byte("[0,1,127,255]"), &b))
	assert.Equal(t, Bytes{0, 1, 127, 255}, b)
}

func TestBytes_UnmarshalRejectsOutOfRange(t *testing.T) {
	var b Bytes
	assert.Error(t, json.Unmarshal([]byte("[0,256]"), &b))
	assert.Error(t, json.Unmarshal([]byte("[-1]"), &b))
}

func TestBytes_UnmarshalRejectsBase64String(t *testing.T) {
	var b Bytes
	assert.Error(t, json.Unmarshal([]byte(`"AAEC"`), &b))
}

func TestBytes_FieldRoundTrip(t *testing.T) {
	req := LoginRequest{Email: "user@example.com", LoginKey: Bytes{9, 8, 7}}

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"user@example.com","login_key":[9,8,7]}`, string(out))

	var back LoginRequest
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, req, back)
}
