// Package deployment persists records of deployed contracts as JSON files laid out as
// <dir>/<network>/<ContractName>.json.
package deployment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/smartcontractkit/scaffold/types"
)

const recordExt = ".json"

// ErrRecordNotFound is returned by Load when no record exists for a contract.
var ErrRecordNotFound = errors.New("deployment record not found")

// Record describes a deployed contract.
type Record struct {
	ID            uuid.UUID           `json:"id"`
	Network       string              `json:"network" validate:"required,excludesall=/\\"`
	ChainID       uint64              `json:"chainId" validate:"required"`
	ChainSelector types.ChainSelector `json:"chainSelector,omitempty"`
	ChainName     string              `json:"chainName,omitempty"`
	ContractName  string              `json:"contractName" validate:"required,excludesall=/\\"`
	Address       string              `json:"address" validate:"required"`
	Deployer      string              `json:"deployer" validate:"required"`
	TxHash        string              `json:"txHash" validate:"required"`
	BlockNumber   uint64              `json:"blockNumber"`
	DeployedAt    time.Time           `json:"deployedAt"`
	ABI           json.RawMessage     `json:"abi,omitempty"`
}

// Store reads and writes deployment records under a root directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Path returns the file a record is stored in.
func (s *Store) Path(network, contractName string) string {
	return filepath.Join(s.dir, network, contractName+recordExt)
}

// Save writes rec, replacing any previous record of the same contract on the same network. A
// missing ID and deployment time are filled in.
func (s *Store) Save(rec Record) (Record, error) {
	if err := validator.New().Struct(rec); err != nil {
		return Record{}, fmt.Errorf("invalid deployment record: %w", err)
	}

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.DeployedAt.IsZero() {
		rec.DeployedAt = s.now().UTC()
	}

	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return Record{}, err
	}

	path := s.Path(rec.Network, rec.ContractName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Record{}, fmt.Errorf("failed to create deployments directory: %w", err)
	}

	// Write to a temporary file first so a reader never sees a partial record.
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+rec.ContractName+"-*")
	if err != nil {
		return Record{}, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		return Record{}, err
	}
	if err := tmp.Close(); err != nil {
		return Record{}, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return Record{}, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return rec, nil
}

// Load reads the record of contractName on network.
func (s *Store) Load(network, contractName string) (Record, error) {
	return s.read(s.Path(network, contractName))
}

// List returns the records of every contract deployed on network, sorted by contract name.
func (s *Store) List(network string) ([]Record, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, network))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Record{}, nil
		}

		return nil, err
	}

	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != recordExt || strings.HasPrefix(e.Name(), ".") {
			continue
		}

		rec, err := s.read(filepath.Join(s.dir, network, e.Name()))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	slices.SortFunc(records, func(a, b Record) int {
		return strings.Compare(a.ContractName, b.ContractName)
	})

	return records, nil
}

func (s *Store) read(path string) (Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, fmt.Errorf("%w: %s", ErrRecordNotFound, path)
		}

		return Record{}, err
	}

	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return rec, nil
}
