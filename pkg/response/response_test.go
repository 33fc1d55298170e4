package response_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexterasolutions/go-utils/pkg/response"
)

func TestEnvelopes(t *testing.T) {
	t.Parallel()

	t.Run("message envelope", func(t *testing.T) {
		t.Parallel()
		msg := response.Message{Message: "Hello"}
		raw, err := json.Marshal(msg)
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":"Hello"}`, string(raw))
	})

	t.Run("data envelope keeps items and total independently", func(t *testing.T) {
		t.Parallel()
		data := response.Data[int]{Data: []int{1, 2, 3}, Total: 30}
		assert.Len(t, data.Data, 3)
		assert.Equal(t, int64(30), data.Total)

		raw, err := json.Marshal(data)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[1,2,3],"total":30}`, string(raw))
	})

	t.Run("service envelope", func(t *testing.T) {
		t.Parallel()
		svc := response.Service{StatusCode: 200, Message: "Hello"}
		raw, err := json.Marshal(svc)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status_code":200,"message":"Hello"}`, string(raw))
	})

	t.Run("cache envelope round-trips through JSON", func(t *testing.T) {
		t.Parallel()
		in := response.Cache[string]{Data: []string{"a", "b"}, Total: 2}
		raw, err := json.Marshal(in)
		require.NoError(t, err)

		var out response.Cache[string]
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, in, out)
	})
}
