package futureentry

import (
	"context"

	"github.com/google/uuid"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/entity"
	domainerror "github.com/centavo/backend/internal/domain/error"
)

// In-memory repository fakes shared by this package's tests.

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
	}
	return repo
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, domainerror.ErrAccountNotFound
	}
	return account, nil
}

func (r *fakeAccountRepo) FindAll(_ context.Context) ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *entity.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.accounts, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return transaction, nil
}

func (r *fakeTransactionRepo) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(r.transactions))
	for _, txn := range r.transactions {
		out = append(out, txn)
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByFilter(ctx context.Context, _ adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return r.FindAll(ctx)
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

type fakeFutureEntryRepo struct {
	entries map[uuid.UUID]*entity.FutureEntry
}

func newFakeFutureEntryRepo(entries ...*entity.FutureEntry) *fakeFutureEntryRepo {
	repo := &fakeFutureEntryRepo{entries: make(map[uuid.UUID]*entity.FutureEntry)}
	for _, e := range entries {
		repo.entries[e.ID] = e
	}
	return repo
}

func (r *fakeFutureEntryRepo) Create(_ context.Context, entry *entity.FutureEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeFutureEntryRepo) CreateBatch(_ context.Context, entries []*entity.FutureEntry) error {
	for _, e := range entries {
		r.entries[e.ID] = e
	}
	return nil
}

func (r *fakeFutureEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FutureEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrFutureEntryNotFound
	}
	return entry, nil
}

func (r *fakeFutureEntryRepo) FindByFilter(_ context.Context, filter adapter.FutureEntryFilter) ([]*entity.FutureEntry, error) {
	out := make([]*entity.FutureEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if filter.PurchaseID != nil && (e.PurchaseID == nil || *e.PurchaseID != *filter.PurchaseID) {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.Month != nil && !filter.Month.Contains(e.DueDate) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeFutureEntryRepo) Update(_ context.Context, entry *entity.FutureEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeFutureEntryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeFutureEntryRepo) DeleteByPurchase(_ context.Context, purchaseID uuid.UUID) (int64, error) {
	var deleted int64
	for id, e := range r.entries {
		if e.PurchaseID != nil && *e.PurchaseID == purchaseID {
			delete(r.entries, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakePurchaseRepo struct {
	purchases map[uuid.UUID]*entity.InstallmentPurchase
}

func newFakePurchaseRepo(purchases ...*entity.InstallmentPurchase) *fakePurchaseRepo {
	repo := &fakePurchaseRepo{purchases: make(map[uuid.UUID]*entity.InstallmentPurchase)}
	for _, p := range purchases {
		repo.purchases[p.ID] = p
	}
	return repo
}

func (r *fakePurchaseRepo) Create(_ context.Context, purchase *entity.InstallmentPurchase) error {
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *fakePurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.InstallmentPurchase, error) {
	purchase, ok := r.purchases[id]
	if !ok {
		return nil, domainerror.ErrPurchaseNotFound
	}
	return purchase, nil
}

func (r *fakePurchaseRepo) FindAll(_ context.Context) ([]*entity.InstallmentPurchase, error) {
	out := make([]*entity.InstallmentPurchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePurchaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.purchases, id)
	return nil
}
