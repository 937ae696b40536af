package mevshare

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyorkin/kazuka"
	"github.com/vyorkin/kazuka/mevsharerpc"
)

func TestMevShareExecutor_DryRunDoesNotCallRelay(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	exec := NewMevShareExecutor(srv.Client(), srv.URL, true)
	err := exec.Execute(context.Background(), &kazuka.SubmitBundle{})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestMevShareExecutor_SendsMevSendBundleRequest(t *testing.T) {
	var seenMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		seenMethod = req.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0xok"}`))
	}))
	defer srv.Close()

	exec := NewMevShareExecutor(srv.Client(), srv.URL, false)
	bundle := kazuka.SubmitBundle{
		Bundle: mevsharerpc.MevSendBundle{
			ProtocolVersion: mevsharerpc.ProtocolVersionV01,
			Inclusion:       mevsharerpc.Inclusion{Block: 100},
		},
	}
	err := exec.Execute(context.Background(), &bundle)
	require.NoError(t, err)
	assert.Equal(t, mevsharerpc.MethodMevSendBundle, seenMethod)
}
