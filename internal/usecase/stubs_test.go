package usecase

import (
	"context"
	"sync"
	"time"

	"carwash-booking/internal/data/entity"
	"carwash-booking/internal/data/repository"
	"carwash-booking/internal/gateway"

	"github.com/google/uuid"
)

// In-memory fakes mirroring the SQL semantics the services rely on. The
// user-package fake performs its guard-and-decrement under a mutex, the
// same all-or-nothing step the conditional UPDATE gives us.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Phone == user.Phone {
			return repository.ErrUserExists
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Phone == phone {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) SetPaid(_ context.Context, id uuid.UUID, paid bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		user.IsPaid = paid
	}
	return nil
}

type fakeCarRepo struct {
	mu   sync.Mutex
	cars map[uuid.UUID]*entity.Car
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{cars: map[uuid.UUID]*entity.Car{}}
}

func (f *fakeCarRepo) Create(_ context.Context, car *entity.Car) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *car
	f.cars[car.ID] = &clone
	return nil
}

func (f *fakeCarRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if car, ok := f.cars[id]; ok {
		clone := *car
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeCarRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cars []*entity.Car
	for _, car := range f.cars {
		if car.UserID == userID {
			clone := *car
			cars = append(cars, &clone)
		}
	}
	return cars, nil
}

func (f *fakeCarRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.cars, id)
	return nil
}

type fakePackageRepo struct {
	mu       sync.Mutex
	packages map[uuid.UUID]*entity.Package
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{packages: map[uuid.UUID]*entity.Package{}}
}

func (f *fakePackageRepo) Create(_ context.Context, pkg *entity.Package) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *pkg
	f.packages[pkg.ID] = &clone
	return nil
}

func (f *fakePackageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if pkg, ok := f.packages[id]; ok {
		clone := *pkg
		return &clone, nil
	}
	return nil, nil
}

func (f *fakePackageRepo) FindAllActive(_ context.Context) ([]*entity.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var packages []*entity.Package
	for _, pkg := range f.packages {
		if pkg.IsActive {
			clone := *pkg
			packages = append(packages, &clone)
		}
	}
	return packages, nil
}

type fakeBranchRepo struct {
	mu       sync.Mutex
	branches map[uuid.UUID]*entity.Branch
}

func newFakeBranchRepo() *fakeBranchRepo {
	return &fakeBranchRepo{branches: map[uuid.UUID]*entity.Branch{}}
}

func (f *fakeBranchRepo) Create(_ context.Context, branch *entity.Branch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *branch
	f.branches[branch.ID] = &clone
	return nil
}

func (f *fakeBranchRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Branch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if branch, ok := f.branches[id]; ok {
		clone := *branch
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeBranchRepo) FindAllActive(_ context.Context) ([]*entity.Branch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var branches []*entity.Branch
	for _, branch := range f.branches {
		if branch.IsActive {
			clone := *branch
			branches = append(branches, &clone)
		}
	}
	return branches, nil
}

type fakeUserPackageRepo struct {
	mu       sync.Mutex
	packages map[uuid.UUID]*entity.UserPackage
}

func newFakeUserPackageRepo() *fakeUserPackageRepo {
	return &fakeUserPackageRepo{packages: map[uuid.UUID]*entity.UserPackage{}}
}

func (f *fakeUserPackageRepo) Create(_ context.Context, up *entity.UserPackage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *up
	f.packages[up.ID] = &clone
	return nil
}

func (f *fakeUserPackageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.UserPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if up, ok := f.packages[id]; ok {
		clone := *up
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeUserPackageRepo) FindByBarcode(_ context.Context, barcode string) (*entity.UserPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, up := range f.packages {
		if up.Barcode == barcode {
			clone := *up
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserPackageRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.UserPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ups []*entity.UserPackage
	for _, up := range f.packages {
		if up.UserID == userID {
			clone := *up
			ups = append(ups, &clone)
		}
	}
	return ups, nil
}

func (f *fakeUserPackageRepo) RedeemByBarcode(_ context.Context, barcode string) (*entity.UserPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, up := range f.packages {
		if up.Barcode != barcode {
			continue
		}
		if up.Status != entity.UserPackageStatusActive || up.WashesLeft <= 0 || !up.Expiry.After(time.Now()) {
			return nil, nil
		}
		up.WashesLeft--
		if up.WashesLeft == 0 {
			up.Status = entity.UserPackageStatusUsed
		}
		clone := *up
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeUserPackageRepo) MarkExpired(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var expired int64
	for _, up := range f.packages {
		if up.Status == entity.UserPackageStatusActive && time.Now().After(up.Expiry) {
			up.Status = entity.UserPackageStatusExpired
			expired++
		}
	}
	return expired, nil
}

type fakeWashRepo struct {
	mu     sync.Mutex
	washes []*entity.Wash
}

func newFakeWashRepo() *fakeWashRepo {
	return &fakeWashRepo{}
}

func (f *fakeWashRepo) Create(_ context.Context, wash *entity.Wash) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *wash
	f.washes = append(f.washes, &clone)
	return nil
}

func (f *fakeWashRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Wash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, wash := range f.washes {
		if wash.ID == id {
			clone := *wash
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeWashRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Wash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var washes []*entity.Wash
	for _, wash := range f.washes {
		if wash.UserID == userID {
			clone := *wash
			washes = append(washes, &clone)
		}
	}
	if offset >= len(washes) {
		return nil, nil
	}
	washes = washes[offset:]
	if limit < len(washes) {
		washes = washes[:limit]
	}
	return washes, nil
}

func (f *fakeWashRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, wash := range f.washes {
		if wash.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeWashRepo) FindByBranchID(_ context.Context, branchID uuid.UUID, limit, offset int) ([]*entity.Wash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var washes []*entity.Wash
	for _, wash := range f.washes {
		if wash.BranchID == branchID {
			clone := *wash
			washes = append(washes, &clone)
		}
	}
	return washes, nil
}

func (f *fakeWashRepo) CountByBranchID(_ context.Context, branchID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, wash := range f.washes {
		if wash.BranchID == branchID {
			count++
		}
	}
	return count, nil
}

func (f *fakeWashRepo) CountByBranchPerDay(_ context.Context, since time.Time) ([]repository.BranchWashCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[uuid.UUID]int64{}
	for _, wash := range f.washes {
		if wash.CreatedAt.After(since) {
			counts[wash.BranchID]++
		}
	}
	var result []repository.BranchWashCount
	for branchID, count := range counts {
		result = append(result, repository.BranchWashCount{
			BranchID: branchID,
			Day:      time.Now().Truncate(24 * time.Hour),
			Count:    count,
		})
	}
	return result, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uuid.UUID]*entity.Payment{}}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *payment
	f.payments[payment.ID] = &clone
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if payment, ok := f.payments[id]; ok {
		clone := *payment
		return &clone, nil
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByCheckoutID(_ context.Context, checkoutID string) (*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, payment := range f.payments {
		if payment.CheckoutID == checkoutID {
			clone := *payment
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var payments []*entity.Payment
	for _, payment := range f.payments {
		if payment.UserID == userID {
			clone := *payment
			payments = append(payments, &clone)
		}
	}
	return payments, nil
}

func (f *fakePaymentRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, payment := range f.payments {
		if payment.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakePaymentRepo) Settle(_ context.Context, id uuid.UUID, status entity.PaymentStatus, transactionID *string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[id]
	if !ok || payment.Status != entity.PaymentStatusPending {
		return false, nil
	}
	payment.Status = status
	if transactionID != nil {
		payment.TransactionID = transactionID
	}
	payment.UpdatedAt = time.Now()
	return true, nil
}

func (f *fakePaymentRepo) Totals(_ context.Context, since time.Time) (*repository.PaymentTotals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	totals := &repository.PaymentTotals{}
	for _, payment := range f.payments {
		if payment.CreatedAt.Before(since) {
			continue
		}
		switch payment.Status {
		case entity.PaymentStatusCompleted:
			totals.Completed++
			totals.CompletedTotal += payment.Amount
		case entity.PaymentStatusFailed:
			totals.Failed++
		case entity.PaymentStatusPending:
			totals.Pending++
		}
	}
	return totals, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
	failCreate    error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return f.failCreate
	}
	clone := *n
	f.notifications = append(f.notifications, &clone)
	return nil
}

func (f *fakeNotificationRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var notifications []*entity.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			clone := *n
			notifications = append(notifications, &clone)
		}
	}
	return notifications, nil
}

func (f *fakeNotificationRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, n := range f.notifications {
		if n.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, userID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNotificationRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []*entity.Notification
	var purged int64
	for _, n := range f.notifications {
		if n.CreatedAt.Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, n)
	}
	f.notifications = kept
	return purged, nil
}

type fakeFeedbackRepo struct {
	mu        sync.Mutex
	feedbacks []*entity.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{}
}

func (f *fakeFeedbackRepo) Create(_ context.Context, fb *entity.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *fb
	f.feedbacks = append(f.feedbacks, &clone)
	return nil
}

func (f *fakeFeedbackRepo) FindByWashID(_ context.Context, washID uuid.UUID) (*entity.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fb := range f.feedbacks {
		if fb.WashID == washID {
			clone := *fb
			return &clone, nil
		}
	}
	return nil, nil
}

type fakeContentRepo struct {
	mu    sync.Mutex
	pages map[string]*entity.Content
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{pages: map[string]*entity.Content{}}
}

func (f *fakeContentRepo) FindBySlug(_ context.Context, slug string) (*entity.Content, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if page, ok := f.pages[slug]; ok {
		clone := *page
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeContentRepo) Upsert(_ context.Context, content *entity.Content) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *content
	f.pages[content.Slug] = &clone
	return nil
}

// stubGateway scripts the purchase flow's gateway calls. A non-nil statusGate
// holds status polls open until the test closes it.
type stubGateway struct {
	mu           sync.Mutex
	checkoutID   string
	checkoutErr  error
	statusCode   string
	statusErr    error
	statusCalls  int
	statusGate   chan struct{}
	lastCheckout *gateway.CheckoutRequest
}

func (g *stubGateway) PrepareCheckout(_ context.Context, req *gateway.CheckoutRequest) (*gateway.CheckoutResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.checkoutErr != nil {
		return nil, g.checkoutErr
	}
	g.lastCheckout = req
	return &gateway.CheckoutResponse{
		ID:     g.checkoutID,
		Result: gateway.Result{Code: "000.200.100", Description: "successfully created checkout"},
	}, nil
}

func (g *stubGateway) PaymentStatusWithFallback(_ context.Context, resourcePath string) (*gateway.StatusResponse, error) {
	g.mu.Lock()
	g.statusCalls++
	gate := g.statusGate
	statusErr := g.statusErr
	code := g.statusCode
	id := "8ac7a4a09" + g.checkoutID
	g.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if statusErr != nil {
		return nil, statusErr
	}
	return &gateway.StatusResponse{
		ID:     id,
		Result: gateway.Result{Code: code},
	}, nil
}

func (g *stubGateway) statusCallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.statusCalls
}

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:         newFakeUserRepo(),
		Car:          newFakeCarRepo(),
		Package:      newFakePackageRepo(),
		Branch:       newFakeBranchRepo(),
		UserPackage:  newFakeUserPackageRepo(),
		Wash:         newFakeWashRepo(),
		Payment:      newFakePaymentRepo(),
		Notification: newFakeNotificationRepo(),
		Feedback:     newFakeFeedbackRepo(),
		Content:      newFakeContentRepo(),
	}
}
