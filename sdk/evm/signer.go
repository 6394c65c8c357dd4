package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/accounts/usbwallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/scaffold/sdk"
)

var _ sdk.Signer = (*Signer)(nil)

// Signer is an EVM signing identity backed by geth transact options.
type Signer struct {
	opts *bind.TransactOpts
}

// NewSigner wraps transact options as a Signer.
func NewSigner(opts *bind.TransactOpts) *Signer {
	return &Signer{opts: opts}
}

// Address returns the hex address of the signer.
func (s *Signer) Address() string {
	return s.opts.From.Hex()
}

// TransactOpts returns a copy of the signer's transact options bound to ctx.
func (s *Signer) TransactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *s.opts
	opts.Context = ctx

	return &opts
}

var _ sdk.SignerProvider = (*PrivateKeySignerProvider)(nil)

// PrivateKeySignerProvider provides signers from raw private keys.
type PrivateKeySignerProvider struct {
	chainID *big.Int
	keys    []*ecdsa.PrivateKey
}

// NewPrivateKeySignerProvider creates a PrivateKeySignerProvider signing for chainID.
func NewPrivateKeySignerProvider(chainID *big.Int, keys ...*ecdsa.PrivateKey) *PrivateKeySignerProvider {
	return &PrivateKeySignerProvider{chainID: chainID, keys: keys}
}

// NewPrivateKeySignerProviderFromHex parses hex encoded private keys, with or without the 0x
// prefix.
func NewPrivateKeySignerProviderFromHex(chainID *big.Int, hexKeys ...string) (*PrivateKeySignerProvider, error) {
	keys := make([]*ecdsa.PrivateKey, 0, len(hexKeys))
	for i, hk := range hexKeys {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hk), "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid private key at index %d: %w", i, err)
		}
		keys = append(keys, key)
	}

	return NewPrivateKeySignerProvider(chainID, keys...), nil
}

// Signers returns one signer per key, in the order the keys were given.
func (p *PrivateKeySignerProvider) Signers(_ context.Context) ([]sdk.Signer, error) {
	signers := make([]sdk.Signer, 0, len(p.keys))
	for _, key := range p.keys {
		opts, err := bind.NewKeyedTransactorWithChainID(key, p.chainID)
		if err != nil {
			return nil, err
		}
		signers = append(signers, NewSigner(opts))
	}

	return signers, nil
}

var _ sdk.SignerProvider = (*KeystoreSignerProvider)(nil)

// KeystoreSignerProvider provides signers for every account of a geth keystore directory. All
// accounts are unlocked with the same passphrase.
type KeystoreSignerProvider struct {
	ks         *keystore.KeyStore
	passphrase string
	chainID    *big.Int
}

// NewKeystoreSignerProvider opens the keystore in dir.
func NewKeystoreSignerProvider(dir string, passphrase string, chainID *big.Int) *KeystoreSignerProvider {
	return &KeystoreSignerProvider{
		ks:         keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP),
		passphrase: passphrase,
		chainID:    chainID,
	}
}

// Signers unlocks and returns every keystore account.
func (p *KeystoreSignerProvider) Signers(_ context.Context) ([]sdk.Signer, error) {
	accts := p.ks.Accounts()
	signers := make([]sdk.Signer, 0, len(accts))
	for _, acct := range accts {
		if err := p.ks.Unlock(acct, p.passphrase); err != nil {
			return nil, fmt.Errorf("failed to unlock keystore account %s: %w", acct.Address.Hex(), err)
		}

		opts, err := bind.NewKeyStoreTransactorWithChainID(p.ks, acct, p.chainID)
		if err != nil {
			return nil, err
		}
		signers = append(signers, NewSigner(opts))
	}

	return signers, nil
}

// ParseDerivationPaths parses HD wallet derivation paths such as m/44'/60'/0'/0/0.
func ParseDerivationPaths(paths []string) ([]accounts.DerivationPath, error) {
	parsed := make([]accounts.DerivationPath, 0, len(paths))
	for _, p := range paths {
		path, err := accounts.ParseDerivationPath(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("failed to parse derivation path %q: %w", p, err)
		}
		parsed = append(parsed, path)
	}

	return parsed, nil
}

var _ sdk.SignerProvider = (*LedgerSignerProvider)(nil)

// LedgerSignerProvider provides signers for accounts derived on the first connected Ledger. The
// device stays open until Close is called.
type LedgerSignerProvider struct {
	chainID *big.Int
	paths   []accounts.DerivationPath

	mu     sync.Mutex
	wallet accounts.Wallet
}

// NewLedgerSignerProvider creates a LedgerSignerProvider deriving one account per path.
func NewLedgerSignerProvider(chainID *big.Int, paths ...accounts.DerivationPath) *LedgerSignerProvider {
	return &LedgerSignerProvider{chainID: chainID, paths: paths}
}

// Signers opens the Ledger and derives an account for every configured path.
func (p *LedgerSignerProvider) Signers(_ context.Context) ([]sdk.Signer, error) {
	wallet, err := p.openWallet()
	if err != nil {
		return nil, err
	}

	signers := make([]sdk.Signer, 0, len(p.paths))
	for _, path := range p.paths {
		account, err := wallet.Derive(path, true)
		if err != nil {
			return nil, fmt.Errorf("is your ledger ethereum app open? Failed to derive account: %w derivation path %v", err, path)
		}

		signers = append(signers, NewSigner(&bind.TransactOpts{
			From: account.Address,
			Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
				if address != account.Address {
					return nil, bind.ErrNotAuthorized
				}

				return wallet.SignTx(account, tx, p.chainID)
			},
		}))
	}

	return signers, nil
}

// Close releases the Ledger.
func (p *LedgerSignerProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.wallet == nil {
		return nil
	}
	err := p.wallet.Close()
	p.wallet = nil

	return err
}

func (p *LedgerSignerProvider) openWallet() (accounts.Wallet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.wallet != nil {
		return p.wallet, nil
	}

	ledgerhub, err := usbwallet.NewLedgerHub()
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger hub: %w", err)
	}

	wallets := ledgerhub.Wallets()
	if len(wallets) == 0 {
		return nil, errors.New("no wallets found")
	}
	wallet := wallets[0]

	if err = wallet.Open(""); err != nil {
		return nil, fmt.Errorf("failed to open wallet: %w", err)
	}
	p.wallet = wallet

	return wallet, nil
}
