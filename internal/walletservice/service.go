// Package walletservice manages business logic layer of wallets.
package walletservice

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/crypto-wallet/internal/domain"
	"github.com/go-petr/crypto-wallet/pkg/currencypkg"
)

// Repo provides data access layer interface needed by wallet service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package walletservice
type Repo interface {
	ExecTx(ctx context.Context, fn func(ctx context.Context) error) error
	Create(ctx context.Context, name string) (domain.Wallet, error)
	Get(ctx context.Context, id int64) (domain.Wallet, error)
	GetForUpdate(ctx context.Context, id int64) (domain.Wallet, error)
	GetByName(ctx context.Context, name string) (domain.Wallet, error)
	UpdateName(ctx context.Context, id int64, name string) (domain.Wallet, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int64, orders []domain.WalletOrder) ([]domain.Wallet, error)
	Count(ctx context.Context) (int64, error)
	AddBalance(ctx context.Context, walletID int64, code string, delta decimal.Decimal) (domain.Balance, error)
}

// CurrencyService provides the supported currency lists.
type CurrencyService interface {
	ListFiat(ctx context.Context) ([]domain.SupportedCurrency, error)
	ListCrypto(ctx context.Context) ([]domain.SupportedCurrency, error)
}

// RateGateway provides live conversion rates.
type RateGateway interface {
	FetchRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// Service facilitates wallet service layer logic.
type Service struct {
	repo       Repo
	currencies CurrencyService
	rates      RateGateway
}

// New returns wallet service struct to manage wallet bussines logic.
func New(repo Repo, currencies CurrencyService, rates RateGateway) *Service {
	return &Service{
		repo:       repo,
		currencies: currencies,
		rates:      rates,
	}
}

// checkNameFree validates a new wallet name and makes sure no wallet uses it.
func (s *Service) checkNameFree(ctx context.Context, name string) error {
	if name == "" {
		return domain.ErrEmptyName
	}

	_, err := s.repo.GetByName(ctx, name)

	switch {
	case err == nil:
		return domain.ErrNameAlreadyExists
	case errors.Is(err, domain.ErrWalletNotFound):
		return nil
	default:
		return err
	}
}

// Create creates and returns an empty wallet with the given name.
func (s *Service) Create(ctx context.Context, name string) (domain.Wallet, error) {
	name = strings.TrimSpace(name)

	var wallet domain.Wallet

	err := s.repo.ExecTx(ctx, func(ctx context.Context) error {
		if err := s.checkNameFree(ctx, name); err != nil {
			return err
		}

		var err error
		wallet, err = s.repo.Create(ctx, name)

		return err
	})
	if err != nil {
		return domain.Wallet{}, err
	}

	return wallet, nil
}

// Update renames the wallet and returns it.
func (s *Service) Update(ctx context.Context, id int64, name string) (domain.Wallet, error) {
	name = strings.TrimSpace(name)

	var wallet domain.Wallet

	err := s.repo.ExecTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if current.Name == name {
			return domain.ErrSameName
		}

		if err := s.checkNameFree(ctx, name); err != nil {
			return err
		}

		wallet, err = s.repo.UpdateName(ctx, id, name)

		return err
	})
	if err != nil {
		return domain.Wallet{}, err
	}

	return wallet, nil
}

// Get returns the wallet with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Wallet, error) {
	return s.repo.Get(ctx, id)
}

// List returns the requested page of wallets.
func (s *Service) List(ctx context.Context, page, size int, orders []domain.WalletOrder) (domain.Page[domain.Wallet], error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return domain.Page[domain.Wallet]{}, err
	}

	// pages past the end are empty, which also keeps the offset within total
	if size <= 0 || int64(page) > total/int64(size) {
		return domain.NewPage[domain.Wallet](nil, page, size, total), nil
	}

	limit := int64(size)
	offset := int64(page) * limit

	wallets, err := s.repo.List(ctx, limit, offset, orders)
	if err != nil {
		return domain.Page[domain.Wallet]{}, err
	}

	return domain.NewPage(wallets, page, size, total), nil
}

// Delete removes the wallet and returns its state before removal.
func (s *Service) Delete(ctx context.Context, id int64) (domain.Wallet, error) {
	var snapshot domain.Wallet

	err := s.repo.ExecTx(ctx, func(ctx context.Context) error {
		var err error

		snapshot, err = s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return domain.Wallet{}, err
	}

	return snapshot, nil
}

func (s *Service) checkSupported(ctx context.Context, code string,
	list func(ctx context.Context) ([]domain.SupportedCurrency, error)) error {
	currencies, err := list(ctx)
	if err != nil {
		return err
	}

	for _, c := range currencies {
		if c.Code == code {
			return nil
		}
	}

	return domain.UnsupportedCurrencyError(code)
}

// Add converts a fiat amount into the wallet's crypto balance at the live rate
// and returns the updated wallet.
func (s *Service) Add(ctx context.Context, id int64, arg domain.AddParams) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	from := currencypkg.Normalize(arg.CurrencyFrom)
	to := currencypkg.Normalize(arg.CurrencyTo)

	var wallet domain.Wallet

	err := s.repo.ExecTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetForUpdate(ctx, id); err != nil {
			return err
		}

		if err := s.checkSupported(ctx, to, s.currencies.ListCrypto); err != nil {
			return err
		}

		if err := s.checkSupported(ctx, from, s.currencies.ListFiat); err != nil {
			return err
		}

		if !arg.Amount.IsPositive() {
			return domain.ErrInvalidAmount
		}

		rate, err := s.rates.FetchRate(ctx, from, to)
		if err != nil {
			return err
		}

		credit := arg.Amount.Mul(rate)

		if _, err := s.repo.AddBalance(ctx, id, to, credit); err != nil {
			return err
		}

		l.Info().
			Int64("wallet_id", id).
			Str("from", from).
			Str("to", to).
			Str("amount", arg.Amount.String()).
			Str("rate", rate.String()).
			Msg("wallet credited")

		wallet, err = s.repo.Get(ctx, id)

		return err
	})
	if err != nil {
		return domain.Wallet{}, err
	}

	return wallet, nil
}

// lockPair locks both wallets in ascending id order and returns them as (source, destination).
func (s *Service) lockPair(ctx context.Context, srcID, dstID int64) (domain.Wallet, domain.Wallet, error) {
	if srcID == dstID {
		w, err := s.repo.GetForUpdate(ctx, srcID)
		return w, w, err
	}

	firstID, secondID := srcID, dstID
	if firstID > secondID {
		firstID, secondID = secondID, firstID
	}

	first, err := s.repo.GetForUpdate(ctx, firstID)
	if err != nil {
		return domain.Wallet{}, domain.Wallet{}, err
	}

	second, err := s.repo.GetForUpdate(ctx, secondID)
	if err != nil {
		return domain.Wallet{}, domain.Wallet{}, err
	}

	if first.ID == srcID {
		return first, second, nil
	}

	return second, first, nil
}

// Transfer moves an amount of crypto from the wallet's balance into the destination wallet,
// converted at the live rate, and returns the updated source wallet.
func (s *Service) Transfer(ctx context.Context, id int64, arg domain.TransferParams) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	from := currencypkg.Normalize(arg.CurrencyFrom)
	to := currencypkg.Normalize(arg.CurrencyTo)

	var wallet domain.Wallet

	err := s.repo.ExecTx(ctx, func(ctx context.Context) error {
		src, _, err := s.lockPair(ctx, id, arg.DestinationWalletID)
		if err != nil {
			return err
		}

		if err := s.checkSupported(ctx, to, s.currencies.ListCrypto); err != nil {
			return err
		}

		if err := s.checkSupported(ctx, from, s.currencies.ListCrypto); err != nil {
			return err
		}

		if !arg.Amount.IsPositive() {
			return domain.ErrInvalidAmount
		}

		balance, ok := src.Balance(from)
		if !ok {
			return domain.ErrCurrencyNotInWallet
		}

		if balance.Amount.LessThan(arg.Amount) {
			return domain.ErrInsufficientBalance
		}

		rate, err := s.rates.FetchRate(ctx, from, to)
		if err != nil {
			return err
		}

		if _, err := s.repo.AddBalance(ctx, id, from, arg.Amount.Neg()); err != nil {
			return err
		}

		if _, err := s.repo.AddBalance(ctx, arg.DestinationWalletID, to, arg.Amount.Mul(rate)); err != nil {
			return err
		}

		l.Info().
			Int64("wallet_id", id).
			Int64("destination_wallet_id", arg.DestinationWalletID).
			Str("from", from).
			Str("to", to).
			Str("amount", arg.Amount.String()).
			Str("rate", rate.String()).
			Msg("wallet transfer")

		wallet, err = s.repo.Get(ctx, id)

		return err
	})
	if err != nil {
		return domain.Wallet{}, err
	}

	return wallet, nil
}
