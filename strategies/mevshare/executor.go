package mevshare

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/ethereum/go-ethereum/log"

	"github.com/vyorkin/kazuka"
	"github.com/vyorkin/kazuka/mevsharerpc"
)

// MevShareExecutor carries out kazuka.SubmitBundle actions by calling
// mev_sendBundle against a relay endpoint. It expects httpClient's
// transport to already be wrapped with fbauth.Transport; this package
// has no opinion on signing, only on the RPC call shape.
type MevShareExecutor struct {
	http     *http.Client
	endpoint string
	dryRun   bool
	nextID   int
}

// NewMevShareExecutor wraps httpClient (nil uses http.DefaultClient)
// targeting endpoint. In dry-run mode, Execute logs the bundle it would
// have submitted and returns success without making a request.
func NewMevShareExecutor(httpClient *http.Client, endpoint string, dryRun bool) *MevShareExecutor {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &MevShareExecutor{http: httpClient, endpoint: endpoint, dryRun: dryRun}
}

func (e *MevShareExecutor) Execute(ctx context.Context, action kazuka.Action) error {
	submit, ok := action.(*kazuka.SubmitBundle)
	if !ok {
		return fmt.Errorf("mevshare: executor cannot handle %T", action)
	}

	if e.dryRun {
		log.Info("mevshare: dry-run bundle submit", "inclusion", submit.Bundle.Inclusion)
		return nil
	}

	e.nextID++
	body, err := mevsharerpc.NewRequest(mevsharerpc.MethodMevSendBundle, e.nextID, submit.Bundle)
	if err != nil {
		return fmt.Errorf("mevshare: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.http.Do(req)
	if err != nil {
		log.Error("mevshare: relay request failed", "err", err)
		return nil
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("mevshare: read relay response", "err", err)
		return nil
	}
	if err := mevsharerpc.DecodeResponse(respBody, nil); err != nil {
		log.Error("mevshare: relay rejected bundle", "err", err)
	}
	return nil
}
