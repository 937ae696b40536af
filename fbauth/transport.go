// Package fbauth implements the Flashbots request-signing transport: an
// http.RoundTripper that computes and injects the X-Flashbots-Signature
// header on outgoing JSON-RPC requests, grounded on the signing logic in
// the retrieval pack's bundle-rescue relay client.
package fbauth

import (
	"bytes"
	"crypto/ecdsa"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Transport wraps an inner http.RoundTripper, signing every outgoing
// request that looks like a Flashbots JSON-RPC call. Requests that are
// not POST, not application/json, or already carry a signature are
// passed through untouched.
type Transport struct {
	Inner  http.RoundTripper
	Signer *ecdsa.PrivateKey
}

// New wraps inner (http.DefaultTransport if nil) with signer's key.
func New(inner http.RoundTripper, signer *ecdsa.PrivateKey) *Transport {
	if inner == nil {
		inner = http.DefaultTransport
	}
	return &Transport{Inner: inner, Signer: signer}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodPost ||
		req.Header.Get("Content-Type") != "application/json" ||
		req.Header.Get("X-Flashbots-Signature") != "" {
		return t.Inner.RoundTrip(req)
	}

	if req.Body == nil {
		return t.Inner.RoundTrip(req)
	}
	body, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, &SigningError{Err: err}
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))

	header, err := SignatureHeader(t.Signer, body)
	if err != nil {
		return nil, &SigningError{Err: err}
	}
	req.Header.Set("X-Flashbots-Signature", header)

	return t.Inner.RoundTrip(req)
}

// SignatureHeader computes the "addr:0xsig" value of X-Flashbots-Signature
// for body, signed by signer. The Flashbots protocol signs the ASCII hex
// text of the body's keccak256 digest, not the raw digest bytes.
func SignatureHeader(signer *ecdsa.PrivateKey, body []byte) (string, error) {
	digest := crypto.Keccak256(body)
	message := []byte("0x" + common0xHex(digest))
	msgHash := accounts.TextHash(message)

	sig, err := crypto.Sign(msgHash, signer)
	if err != nil {
		return "", err
	}
	addr := strings.ToLower(crypto.PubkeyToAddress(signer.PublicKey).Hex())
	return fmt.Sprintf("%s:%s", addr, hexutil.Encode(sig)), nil
}

func common0xHex(b []byte) string {
	return hexutil.Encode(b)[2:]
}
