package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// --- Fake transaction plumbing ---

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(_ context.Context) error   { return nil }
func (fakeTx) Rollback(_ context.Context) error { return nil }

type fakeTransactor struct{}

func (fakeTransactor) Begin(_ context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

// --- In-memory offer repo ---

type inMemoryOfferRepo struct {
	mu     sync.RWMutex
	nextID int64
	offers map[int64]*domain.Offer
}

func newInMemoryOfferRepo() *inMemoryOfferRepo {
	return &inMemoryOfferRepo{nextID: 1, offers: make(map[int64]*domain.Offer)}
}

func (r *inMemoryOfferRepo) Create(_ context.Context, offer *domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	offer.ID = r.nextID
	r.nextID++
	cp := *offer
	r.offers[offer.ID] = &cp
	return nil
}

func (r *inMemoryOfferRepo) GetByID(_ context.Context, id int64) (*domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.offers[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *inMemoryOfferRepo) Update(_ context.Context, offer *domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.offers[offer.ID]; !ok {
		return fmt.Errorf("offer %d not found", offer.ID)
	}
	cp := *offer
	r.offers[offer.ID] = &cp
	return nil
}

func (r *inMemoryOfferRepo) ListOpen(_ context.Context, direction domain.OfferDirection, currency, fiat string) ([]domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Offer
	for _, o := range r.offers {
		if o.Status != domain.OfferStatusOpen {
			continue
		}
		if direction != "" && o.Direction != direction {
			continue
		}
		if currency != "" && o.Currency != currency {
			continue
		}
		if fiat != "" {
			accepted := false
			for _, f := range o.FiatCurrencies {
				if f == fiat {
					accepted = true
					break
				}
			}
			if !accepted {
				continue
			}
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *inMemoryOfferRepo) ListByIssuer(_ context.Context, issuerID int64) ([]domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Offer
	for _, o := range r.offers {
		if o.IssuerID == issuerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *inMemoryOfferRepo) UpdateStatusByIssuer(_ context.Context, _ pgx.Tx, issuerID int64, from, to domain.OfferStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, o := range r.offers {
		if o.IssuerID == issuerID && o.Status == from {
			o.Status = to
			n++
		}
	}
	return n, nil
}

// --- In-memory deal repo ---

// inMemoryDealRepo holds the offer repo too: the SQL implementation answers
// the held-amount queries with a join.
type inMemoryDealRepo struct {
	mu     sync.RWMutex
	nextID int64
	deals  map[int64]*domain.Deal
	offers *inMemoryOfferRepo
}

func newInMemoryDealRepo(offers *inMemoryOfferRepo) *inMemoryDealRepo {
	return &inMemoryDealRepo{nextID: 1, deals: make(map[int64]*domain.Deal), offers: offers}
}

func (r *inMemoryDealRepo) Create(_ context.Context, _ pgx.Tx, deal *domain.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	deal.ID = r.nextID
	r.nextID++
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = time.Now()
	}
	cp := *deal
	r.deals[deal.ID] = &cp
	return nil
}

func (r *inMemoryDealRepo) GetByID(_ context.Context, id int64) (*domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.deals[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *inMemoryDealRepo) UpdateStatusIf(_ context.Context, _ pgx.Tx, id int64, from, to domain.DealStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deals[id]
	if !ok || d.Status != from {
		return false, nil
	}
	d.Status = to
	d.UpdatedAt = time.Now()
	return true, nil
}

func (r *inMemoryDealRepo) SetClientConfirmed(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deals[id]
	if !ok || d.Status != domain.DealStatusPending || d.ClientConfirmed {
		return false, nil
	}
	d.ClientConfirmed = true
	d.UpdatedAt = time.Now()
	return true, nil
}

func (r *inMemoryDealRepo) SetCounterpartyDetails(_ context.Context, id int64, details string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deals[id]
	if !ok {
		return fmt.Errorf("deal %d not found", id)
	}
	d.CounterpartyDetails = details
	d.UpdatedAt = time.Now()
	return nil
}

func (r *inMemoryDealRepo) Complete(_ context.Context, _ pgx.Tx, id int64, from domain.DealStatus, txID string, referralFee decimal.Decimal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deals[id]
	if !ok || d.Status != from {
		return false, nil
	}
	d.Status = domain.DealStatusCompleted
	d.SettlementTxID = &txID
	if !referralFee.IsZero() {
		fee := referralFee
		d.ReferralFee = &fee
	}
	d.UpdatedAt = time.Now()
	return true, nil
}

func (r *inMemoryDealRepo) HeldAsCounterparty(ctx context.Context, userID int64, currency string) (decimal.Decimal, error) {
	return r.held(ctx, currency, func(d *domain.Deal, o *domain.Offer) bool {
		return d.CounterpartyID == userID && o.Direction == domain.OfferDirectionSell
	})
}

func (r *inMemoryDealRepo) HeldAsIssuer(ctx context.Context, issuerID int64, currency string) (decimal.Decimal, error) {
	return r.held(ctx, currency, func(d *domain.Deal, o *domain.Offer) bool {
		return o.IssuerID == issuerID && o.Direction == domain.OfferDirectionBuy
	})
}

func (r *inMemoryDealRepo) held(ctx context.Context, currency string, match func(*domain.Deal, *domain.Offer) bool) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, d := range r.deals {
		if d.Status != domain.DealStatusPending {
			continue
		}
		o, err := r.offers.GetByID(ctx, d.OfferID)
		if err != nil || o == nil || o.Currency != currency {
			continue
		}
		if match(d, o) {
			total = total.Add(d.GrossAmount())
		}
	}
	return total, nil
}

func (r *inMemoryDealRepo) ListExpirable(_ context.Context, cutoff time.Time) ([]domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Deal
	for _, d := range r.deals {
		if d.Status == domain.DealStatusPending && !d.ClientConfirmed && d.CreatedAt.Before(cutoff) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *inMemoryDealRepo) ExpireIfUnconfirmed(_ context.Context, id int64, cutoff time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deals[id]
	if !ok || d.Status != domain.DealStatusPending || d.ClientConfirmed || !d.CreatedAt.Before(cutoff) {
		return false, nil
	}
	d.Status = domain.DealStatusExpired
	d.UpdatedAt = time.Now()
	return true, nil
}

func (r *inMemoryDealRepo) UpdateStatusByIssuer(ctx context.Context, _ pgx.Tx, issuerID int64, from, to domain.DealStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, d := range r.deals {
		if d.Status != from {
			continue
		}
		o, err := r.offers.GetByID(ctx, d.OfferID)
		if err != nil || o == nil || o.IssuerID != issuerID {
			continue
		}
		d.Status = to
		n++
	}
	return n, nil
}

// setCreatedAt backdates a deal so expiry paths can be exercised.
func (r *inMemoryDealRepo) setCreatedAt(id int64, t time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.deals[id]; ok {
		d.CreatedAt = t
	}
}

// --- In-memory wallet repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	nextID  int64
	wallets map[int64]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{nextID: 1, wallets: make(map[int64]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(_ context.Context, wallet *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	wallet.ID = r.nextID
	r.nextID++
	cp := *wallet
	r.wallets[wallet.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByID(_ context.Context, id int64) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetByOwner(_ context.Context, ownerID int64, currency string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.OwnerID == ownerID && w.Currency == currency {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) UpdateBalances(_ context.Context, walletID int64, confirmed, unconfirmed decimal.Decimal, checkedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet %d not found", walletID)
	}
	w.Confirmed = confirmed
	w.Unconfirmed = unconfirmed
	w.CheckedAt = checkedAt
	return nil
}

// --- In-memory compliance repo ---

type inMemoryComplianceRepo struct {
	mu     sync.RWMutex
	nextID int64
	cases  map[int64]*domain.ComplianceCase
}

func newInMemoryComplianceRepo() *inMemoryComplianceRepo {
	return &inMemoryComplianceRepo{nextID: 1, cases: make(map[int64]*domain.ComplianceCase)}
}

func (r *inMemoryComplianceRepo) Create(_ context.Context, c *domain.ComplianceCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	cp := *c
	r.cases[c.ID] = &cp
	return nil
}

func (r *inMemoryComplianceRepo) GetByID(_ context.Context, id int64) (*domain.ComplianceCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cases[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *inMemoryComplianceRepo) GetOpenByUser(_ context.Context, userID int64) (*domain.ComplianceCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.cases {
		if c.UserID == userID && c.Status == domain.CaseStatusOpen {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryComplianceRepo) HasCompletedByUser(_ context.Context, userID int64) (bool, error) {
	return r.hasStatus(userID, domain.CaseStatusCompleted), nil
}

func (r *inMemoryComplianceRepo) HasRejectedByUser(_ context.Context, userID int64) (bool, error) {
	return r.hasStatus(userID, domain.CaseStatusRejected), nil
}

func (r *inMemoryComplianceRepo) hasStatus(userID int64, status domain.CaseStatus) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.cases {
		if c.UserID == userID && c.Status == status {
			return true
		}
	}
	return false
}

func (r *inMemoryComplianceRepo) UpdateStatusIf(_ context.Context, id int64, from, to domain.CaseStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cases[id]
	if !ok || c.Status != from {
		return false, nil
	}
	c.Status = to
	c.UpdatedAt = time.Now()
	return true, nil
}

func (r *inMemoryComplianceRepo) ListExpirable(_ context.Context, cutoff time.Time) ([]domain.ComplianceCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.ComplianceCase
	for _, c := range r.cases {
		if c.Status == domain.CaseStatusOpen && c.CreatedAt.Before(cutoff) {
			out = append(out, *c)
		}
	}
	return out, nil
}

// --- In-memory settlement leg repo ---

type inMemoryLegRepo struct {
	mu     sync.Mutex
	nextID int64
	legs   map[int64]*domain.SettlementLeg
}

func newInMemoryLegRepo() *inMemoryLegRepo {
	return &inMemoryLegRepo{nextID: 1, legs: make(map[int64]*domain.SettlementLeg)}
}

func (r *inMemoryLegRepo) Ensure(_ context.Context, leg *domain.SettlementLeg) (*domain.SettlementLeg, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.legs {
		if existing.IdempotencyKey == leg.IdempotencyKey {
			cp := *existing
			return &cp, nil
		}
	}
	leg.ID = r.nextID
	r.nextID++
	leg.Status = domain.LegStatusPending
	leg.CreatedAt = time.Now()
	cp := *leg
	r.legs[leg.ID] = &cp
	out := cp
	return &out, nil
}

func (r *inMemoryLegRepo) ListByDeal(_ context.Context, dealID int64) ([]domain.SettlementLeg, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.SettlementLeg
	for _, leg := range r.legs {
		if leg.DealID == dealID {
			out = append(out, *leg)
		}
	}
	return out, nil
}

func (r *inMemoryLegRepo) MarkConfirmed(_ context.Context, id int64, txID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	leg, ok := r.legs[id]
	if !ok {
		return fmt.Errorf("leg %d not found", id)
	}
	leg.Status = domain.LegStatusConfirmed
	leg.TxID = &txID
	return nil
}

// --- In-memory activity window ---

// inMemoryActivityWindow counts without window expiry: the tests run far
// inside a single hour.
type inMemoryActivityWindow struct {
	mu           sync.Mutex
	deals        map[int64]int64
	transfers    map[int64]int64
	destinations map[int64]map[string]struct{}
}

func newInMemoryActivityWindow() *inMemoryActivityWindow {
	return &inMemoryActivityWindow{
		deals:        make(map[int64]int64),
		transfers:    make(map[int64]int64),
		destinations: make(map[int64]map[string]struct{}),
	}
}

func (w *inMemoryActivityWindow) RecordDeal(_ context.Context, userID int64, _ time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.deals[userID]++
	return nil
}

func (w *inMemoryActivityWindow) RecordTransfer(_ context.Context, userID int64, _ time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.transfers[userID]++
	return nil
}

func (w *inMemoryActivityWindow) RecordDestination(_ context.Context, userID int64, destination string, _ time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	set, ok := w.destinations[userID]
	if !ok {
		set = make(map[string]struct{})
		w.destinations[userID] = set
	}
	set[destination] = struct{}{}
	return nil
}

func (w *inMemoryActivityWindow) DealCounts(_ context.Context, userID int64, _ time.Time) (ports.WindowCounts, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := w.deals[userID]
	return ports.WindowCounts{Hour: n, Day: n, Week: n}, nil
}

func (w *inMemoryActivityWindow) TransferCounts(_ context.Context, userID int64, _ time.Time) (ports.WindowCounts, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := w.transfers[userID]
	return ports.WindowCounts{Hour: n, Day: n, Week: n}, nil
}

func (w *inMemoryActivityWindow) DestinationCounts(_ context.Context, userID int64, _ time.Time) (ports.WindowCounts, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := int64(len(w.destinations[userID]))
	return ports.WindowCounts{Hour: n, Day: n, Week: n}, nil
}

// --- Supporting fakes ---

// recordingNotifier captures every notification.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Notify(_ context.Context, recipientID int64, message string, _ ...string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, fmt.Sprintf("%d: %s", recipientID, message))
	return nil
}

// plainVault hands ciphertexts back unchanged.
type plainVault struct{}

func (plainVault) Decrypt(ciphertext string) (string, error) { return ciphertext, nil }

// fakeUTXOChain serves a fixed unspent set and records broadcasts.
type fakeUTXOChain struct {
	mu        sync.Mutex
	confirmed int64
	unspent   []domain.UnspentOutput
	feeRate   int64
	broadcast [][]domain.TxOutput
	txSeq     int
}

func (c *fakeUTXOChain) AddressBalance(_ context.Context, _ string) (int64, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmed, 0, nil
}

func (c *fakeUTXOChain) ListUnspent(_ context.Context, _ string) ([]domain.UnspentOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.UnspentOutput, len(c.unspent))
	copy(out, c.unspent)
	return out, nil
}

func (c *fakeUTXOChain) FeeRate(_ context.Context, _ string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feeRate, nil
}

func (c *fakeUTXOChain) SignAndBroadcast(_ context.Context, _ []domain.UnspentOutput, outputs []domain.TxOutput, _ string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.txSeq++
	c.broadcast = append(c.broadcast, outputs)
	return fmt.Sprintf("utxo_tx_%d", c.txSeq), nil
}

// fixedPriceOracle quotes one constant price per pair.
type fixedPriceOracle struct {
	prices map[string]decimal.Decimal // "BTCUSD" -> price
}

func (o fixedPriceOracle) Price(_ context.Context, currency, fiat string) (decimal.Decimal, error) {
	p, ok := o.prices[currency+fiat]
	if !ok {
		return decimal.Zero, fmt.Errorf("no price for %s/%s", currency, fiat)
	}
	return p, nil
}
