package blindarb

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/edsrzf/mmap-go"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/rjeczalik/notify"

	"github.com/vyorkin/kazuka"
)

// PoolPair is one row of the V3→V2 pool map: a V3 pool's matching V2
// pool, and which side of the V2 pool holds WETH.
type PoolPair struct {
	V2Pool  common.Address
	IsWeth0 bool
}

// mmapThreshold is the file size above which PoolTable memory-maps the
// CSV instead of reading it into a []byte, to avoid double-buffering a
// large map file.
const mmapThreshold = 8 << 20 // 8 MiB

// PoolTable is a hot-swappable V3-pool-address -> PoolPair map, loaded
// from a CSV file of "v2_pool,v3_pool,token_address,is_weth_token0" rows.
type PoolTable struct {
	table atomic.Pointer[map[common.Address]PoolPair]

	path    string
	watchMu sync.Mutex
	stopCh  chan struct{}
}

// LoadPoolTable parses path once and returns a PoolTable holding the
// result. It runs before the strategy is built (Strategy.SyncState does
// not load or re-check the table); a parse failure is returned as a
// *kazuka.ConfigError.
func LoadPoolTable(path string) (*PoolTable, error) {
	m, err := parsePoolCSV(path)
	if err != nil {
		return nil, &kazuka.ConfigError{Component: "blindarb.pool_table", Err: err}
	}
	pt := &PoolTable{path: path}
	pt.table.Store(&m)
	return pt, nil
}

// Lookup returns the PoolPair for v3Pool, if mapped.
func (pt *PoolTable) Lookup(v3Pool common.Address) (PoolPair, bool) {
	m := *pt.table.Load()
	p, ok := m[v3Pool]
	return p, ok
}

// WatchForChanges starts a background watch on the table's source CSV
// path and atomically swaps in a freshly parsed map whenever the file
// changes. This is a supplemental feature beyond what the CSV loader
// strictly needs: operators can update the pool map without restarting
// the process. Call Close to stop watching.
func (pt *PoolTable) WatchForChanges() error {
	pt.watchMu.Lock()
	defer pt.watchMu.Unlock()
	if pt.stopCh != nil {
		return nil
	}

	events := make(chan notify.EventInfo, 8)
	if err := notify.Watch(pt.path, events, notify.Write, notify.Create); err != nil {
		return fmt.Errorf("blindarb: watch pool table: %w", err)
	}
	stop := make(chan struct{})
	pt.stopCh = stop

	go func() {
		defer notify.Stop(events)
		for {
			select {
			case <-stop:
				return
			case <-events:
				m, err := parsePoolCSV(pt.path)
				if err != nil {
					log.Warn("blindarb: pool table reload failed, keeping previous map", "err", err)
					continue
				}
				pt.table.Store(&m)
				log.Info("blindarb: pool table reloaded", "pools", len(m))
			}
		}
	}()
	return nil
}

// Close stops any active WatchForChanges goroutine.
func (pt *PoolTable) Close() {
	pt.watchMu.Lock()
	defer pt.watchMu.Unlock()
	if pt.stopCh != nil {
		close(pt.stopCh)
		pt.stopCh = nil
	}
}

func parsePoolCSV(path string) (map[common.Address]PoolPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("blindarb: open pool table: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("blindarb: stat pool table: %w", err)
	}

	var r io.Reader = f
	if info.Size() > mmapThreshold {
		mapped, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("blindarb: mmap pool table: %w", err)
		}
		defer mapped.Unmap()
		r = bytes.NewReader(mapped)
	}

	return parsePoolRows(r)
}

// parsePoolRows parses "v2_pool,v3_pool,token_address,is_weth_token0" rows,
// keying the resulting map by v3_pool. token_address is validated (it must
// be a well-formed address) but not retained: nothing downstream of the
// pool map keys or joins on it, it is part of the persisted schema only.
func parsePoolRows(r io.Reader) (map[common.Address]PoolPair, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	out := make(map[common.Address]PoolPair)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("blindarb: parse pool table: %w", err)
		}
		if len(row) != 4 {
			return nil, fmt.Errorf("blindarb: malformed pool table row %v", row)
		}
		if !common.IsHexAddress(row[0]) || !common.IsHexAddress(row[1]) || !common.IsHexAddress(row[2]) {
			return nil, fmt.Errorf("blindarb: malformed address in row %v", row)
		}
		isWeth0, err := strconv.ParseBool(row[3])
		if err != nil {
			return nil, fmt.Errorf("blindarb: malformed is_weth_token0 in row %v: %w", row, err)
		}
		out[common.HexToAddress(row[1])] = PoolPair{
			V2Pool:  common.HexToAddress(row[0]),
			IsWeth0: isWeth0,
		}
	}
	return out, nil
}
