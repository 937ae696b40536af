package fbauth

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRoundTripper struct {
	req *http.Request
}

func (r *recordingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	r.req = req
	return httptest.NewRecorder().Result(), nil
}

func TestTransport_PassThroughNonPOST(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	rec := &recordingRoundTripper{}
	tr := New(rec, key)

	req, _ := http.NewRequest(http.MethodGet, "http://relay.example/", nil)
	_, err = tr.RoundTrip(req)
	require.NoError(t, err)
	assert.Empty(t, rec.req.Header.Get("X-Flashbots-Signature"))
}

func TestTransport_PassThroughNonJSON(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	rec := &recordingRoundTripper{}
	tr := New(rec, key)

	req, _ := http.NewRequest(http.MethodPost, "http://relay.example/", bytes.NewReader([]byte("plain")))
	req.Header.Set("Content-Type", "text/plain")
	_, err = tr.RoundTrip(req)
	require.NoError(t, err)
	assert.Empty(t, rec.req.Header.Get("X-Flashbots-Signature"))
}

func TestTransport_PassThroughExistingSignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	rec := &recordingRoundTripper{}
	tr := New(rec, key)

	req, _ := http.NewRequest(http.MethodPost, "http://relay.example/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Flashbots-Signature", "already-set")
	_, err = tr.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, "already-set", rec.req.Header.Get("X-Flashbots-Signature"))
}

func TestTransport_SignsJSONPost(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	rec := &recordingRoundTripper{}
	tr := New(rec, key)

	body := []byte(`{"jsonrpc":"2.0"}`)
	req, _ := http.NewRequest(http.MethodPost, "http://relay.example/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	_, err = tr.RoundTrip(req)
	require.NoError(t, err)

	sig := rec.req.Header.Get("X-Flashbots-Signature")
	require.NotEmpty(t, sig)

	addr := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())
	assert.True(t, strings.HasPrefix(sig, addr+":0x"))

	gotBody, err := io.ReadAll(rec.req.Body)
	require.NoError(t, err)
	assert.Equal(t, body, gotBody)
}

func TestSignatureHeader_MatchesExpectedMessage(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	body := bytes.Repeat([]byte{0x01}, 32)
	header, err := SignatureHeader(key, body)
	require.NoError(t, err)

	parts := strings.SplitN(header, ":", 2)
	require.Len(t, parts, 2)

	addr := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())
	assert.Equal(t, addr, parts[0])
	assert.True(t, strings.HasPrefix(parts[1], "0x"))

	// The signature recovers to the signer over the text "0x" +
	// hex(keccak256(body)), not over the raw digest.
	message := []byte(hexutil.Encode(crypto.Keccak256(body)))
	sig, err := hexutil.Decode(parts[1])
	require.NoError(t, err)
	pub, err := crypto.SigToPub(accounts.TextHash(message), sig)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(*pub))
}
