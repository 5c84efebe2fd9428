package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/ledger"
)

// MintHolder is the `from` side of journal entries that create balances
const MintHolder = domain.Holder("mint")

var (
	timeNow = time.Now
	met     = metrics.New("ledger")
)

type impl struct {
	repo ledger.Repo
	tx   domain.Transactor
}

// New returns the ledger usecase. Transfers join the transaction carried by
// their ctx; Credit and Mint open their own.
func New(repo ledger.Repo, tx domain.Transactor) ledger.UseCase {
	return &impl{repo: repo, tx: tx}
}

func (im *impl) TransferCurrency(c ctx.Ctx, from, to domain.Holder, amount int64, memo string) error {
	return im.transfer(c, ledger.CurrencyId(from), ledger.CurrencyId(to), amount, memo, ledger.ErrInsufficientBalance)
}

func (im *impl) TransferAsset(c ctx.Ctx, from, to domain.Holder, assetId domain.AssetId, units int64, memo string) error {
	if assetId.IsEmpty() {
		return domain.ErrBadParamInput
	}
	return im.transfer(c, ledger.AssetId(from, assetId), ledger.AssetId(to, assetId), units, memo, ledger.ErrInsufficientAsset)
}

func (im *impl) transfer(c ctx.Ctx, from, to ledger.BalanceId, amount int64, memo string, insufficient error) error {
	defer met.BumpTime("transfer.time", "kind", string(from.Kind)).End()

	if amount < 0 {
		return domain.ErrBadParamInput
	} else if amount == 0 {
		return nil
	}

	if err := im.repo.Debit(c, from, amount); err == domain.ErrNotFound {
		met.BumpSum("transfer.insufficient", 1, "kind", string(from.Kind))
		return insufficient
	} else if err != nil {
		c.WithFields(log.Fields{"from": from, "amount": amount, "err": err}).Error("repo.Debit failed")
		return xerrors.Errorf("debit %s: %w", from, err)
	}

	if err := im.repo.Credit(c, to, amount); err != nil {
		c.WithFields(log.Fields{"to": to, "amount": amount, "err": err}).Error("repo.Credit failed")
		return xerrors.Errorf("credit %s: %w", to, err)
	}

	return im.journal(c, from.Holder, to, amount, memo)
}

func (im *impl) journal(c ctx.Ctx, from domain.Holder, to ledger.BalanceId, amount int64, memo string) error {
	entry := &ledger.Entry{
		Id:      uuid.NewString(),
		From:    from,
		To:      to.Holder,
		Kind:    to.Kind,
		AssetId: to.AssetId,
		Amount:  amount,
		Memo:    memo,
		Time:    timeNow(),
	}
	if err := im.repo.InsertEntry(c, entry); err != nil {
		c.WithFields(log.Fields{"entry": entry, "err": err}).Error("repo.InsertEntry failed")
		return xerrors.Errorf("journal: %w", err)
	}
	return nil
}

func (im *impl) Credit(c ctx.Ctx, holder domain.Holder, amount int64) error {
	if amount <= 0 || holder == "" {
		return domain.ErrBadParamInput
	}
	return im.seed(c, ledger.CurrencyId(holder), amount, "credit")
}

func (im *impl) Mint(c ctx.Ctx, holder domain.Holder, assetId domain.AssetId) error {
	if assetId.IsEmpty() || holder == "" {
		return domain.ErrBadParamInput
	}
	return im.seed(c, ledger.AssetId(holder, assetId), 1, "mint")
}

func (im *impl) seed(c ctx.Ctx, id ledger.BalanceId, amount int64, memo string) error {
	return im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.repo.Credit(c, id, amount); err != nil {
			c.WithFields(log.Fields{"id": id, "err": err}).Error("repo.Credit failed")
			return err
		}
		return im.journal(c, MintHolder, id, amount, memo)
	})
}

func (im *impl) Balances(c ctx.Ctx, holder domain.Holder) ([]*ledger.Balance, error) {
	res, err := im.repo.FindAll(c, holder)
	if err != nil {
		c.WithFields(log.Fields{"holder": holder, "err": err}).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}
