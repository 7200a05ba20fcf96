package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	areaRepo "coden/database/repository/area"
	bookingRepo "coden/database/repository/booking"
	customerRepo "coden/database/repository/customer"
	"coden/models"
	"coden/services/messaging"
	"coden/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- Fake collaborators ---

type fakeNetwork struct {
	mu        sync.Mutex
	created   []string
	disabled  []string
	deleted   []string
	createErr error
	disErr    error
}

func (f *fakeNetwork) Create(ctx context.Context, loginID string, durationMinutes int, bandwidth string) (*models.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, loginID)
	return &models.Credentials{
		Username:  loginID,
		Password:  "secret123",
		Bandwidth: "5M/5M",
		ExpiresAt: time.Now().Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

func (f *fakeNetwork) Enable(ctx context.Context, loginID string) error { return nil }

func (f *fakeNetwork) Disable(ctx context.Context, loginID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.disErr != nil {
		return f.disErr
	}
	f.disabled = append(f.disabled, loginID)
	return nil
}

func (f *fakeNetwork) Delete(ctx context.Context, loginID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, loginID)
	return nil
}

func (f *fakeNetwork) Usage(ctx context.Context, loginID string) (*models.Usage, error) {
	return &models.Usage{UploadBytes: 1024, DownloadBytes: 2048, SessionSeconds: 600}, nil
}

type fakePayment struct {
	createErr error
}

func (f *fakePayment) CreateInvoice(ctx context.Context, req payment.InvoiceRequest) (*models.Invoice, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Invoice{
		InvoiceID:   "inv-" + req.BookingID,
		BookingID:   req.BookingID,
		Amount:      req.Amount,
		CheckoutURL: "https://checkout.example/" + req.BookingID,
	}, nil
}

func (f *fakePayment) GetInvoiceStatus(ctx context.Context, invoiceID string) (*models.InvoiceStatus, error) {
	return &models.InvoiceStatus{Status: models.InvoicePending}, nil
}

type sentMessage struct {
	BookingID    string
	TemplateType string
}

type fakeNotifier struct {
	mu      sync.Mutex
	sent    []sentMessage
	sendErr error
}

func (f *fakeNotifier) Notify(ctx context.Context, bookingID, phone, templateType string, data messaging.TemplateData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMessage{BookingID: bookingID, TemplateType: templateType})
	return nil
}

func (f *fakeNotifier) RefreshStatus(ctx context.Context, messageID string) (string, error) {
	return models.MessageDelivered, nil
}

func (f *fakeNotifier) count(templateType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.sent {
		if m.TemplateType == templateType {
			n++
		}
	}
	return n
}

// --- Fixture ---

type fixture struct {
	svc      *DefaultBookingService
	bookings *bookingRepo.MemoryBookingRepo
	areas    *areaRepo.MemoryAreaRepo
	network  *fakeNetwork
	payment  *fakePayment
	notifier *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	bookings := bookingRepo.NewMemoryBookingRepo()
	areas := areaRepo.NewMemoryAreaRepo()
	customers := customerRepo.NewMemoryCustomerRepo()

	require.NoError(t, areas.Create(&models.Area{
		ID:          "area-1",
		Name:        "Focus Room",
		Type:        models.AreaPrivateOffice,
		Capacity:    3,
		Available:   3,
		Pricing:     studioPricing,
		IsAvailable: true,
	}))
	require.NoError(t, customers.Create(&models.Customer{
		ID:    "cust-1",
		Name:  "Budi",
		Phone: "+628111234567",
	}))

	net := &fakeNetwork{}
	pay := &fakePayment{}
	notif := &fakeNotifier{}

	return &fixture{
		svc: &DefaultBookingService{
			BookingRepo:  bookings,
			AreaRepo:     areas,
			CustomerRepo: customers,
			Network:      net,
			Payment:      pay,
			Notifier:     notif,
			Logger:       zap.NewNop(),
			CallTimeout:  time.Second,
			RetryDelay:   time.Millisecond,
		},
		bookings: bookings,
		areas:    areas,
		network:  net,
		payment:  pay,
		notifier: notif,
	}
}

func validInput() models.BookingRequestInput {
	return models.BookingRequestInput{
		CustomerID:  "cust-1",
		AreaID:      "area-1",
		StartTime:   time.Now().Add(time.Hour),
		Duration:    240,
		PricingTier: models.TierHourly,
	}
}

func (f *fixture) create(t *testing.T) *models.Booking {
	t.Helper()
	b, err := f.svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	return b
}

func (f *fixture) paid(amount int64) models.PaymentResult {
	now := time.Now()
	return models.PaymentResult{Status: models.PaymentPaid, PaidAmount: amount, PaidAt: &now}
}

// advance walks a freshly created booking to the requested status.
func (f *fixture) advance(t *testing.T, b *models.Booking, status string) *models.Booking {
	t.Helper()
	ctx := context.Background()

	if status == models.BookingPending {
		return b
	}
	b, err := f.svc.ConfirmPayment(ctx, b.ID, f.paid(b.TotalAmount))
	require.NoError(t, err)
	if status == models.BookingConfirmed {
		return b
	}
	b, err = f.svc.CheckIn(ctx, b.ID, b.CheckInCode)
	require.NoError(t, err)
	if status == models.BookingCheckedIn {
		return b
	}
	b, err = f.svc.GrantNetworkAccess(ctx, b.ID)
	require.NoError(t, err)
	if status == models.BookingActive {
		return b
	}
	b, err = f.svc.Complete(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, models.BookingCompleted, b.Status)
	return b
}

// --- Create ---

func TestCreateBooking(t *testing.T) {
	f := newFixture(t)
	b := f.create(t)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, models.PaymentPending, b.PaymentStatus)
	assert.Equal(t, int64(100000), b.TotalAmount)
	assert.Len(t, b.CheckInCode, 10)
	assert.Equal(t, b.StartTime.Add(4*time.Hour), b.EndTime)
	assert.False(t, b.InternetAccess)
	assert.Nil(t, b.InternetCredentials)

	area, err := f.areas.GetByID("area-1")
	require.NoError(t, err)
	assert.Equal(t, 2, area.Available)
}

func TestCreateBookingValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.BookingRequestInput)
	}{
		{"zero duration", func(in *models.BookingRequestInput) { in.Duration = 0 }},
		{"negative duration", func(in *models.BookingRequestInput) { in.Duration = -60 }},
		{"past start", func(in *models.BookingRequestInput) { in.StartTime = time.Now().Add(-time.Hour) }},
		{"unknown tier", func(in *models.BookingRequestInput) { in.PricingTier = "fortnightly" }},
		{"bad add-on", func(in *models.BookingRequestInput) {
			in.AddOns = []models.AddOn{{Name: "locker", Quantity: 0, UnitPrice: 10000}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			_, err := f.svc.Create(ctx, input)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}

	// Validation failures must not consume capacity.
	area, err := f.areas.GetByID("area-1")
	require.NoError(t, err)
	assert.Equal(t, 3, area.Available)
}

func TestCreateBookingUnknownCustomer(t *testing.T) {
	f := newFixture(t)
	input := validInput()
	input.CustomerID = "ghost"

	_, err := f.svc.Create(context.Background(), input)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "customer", nfErr.Entity)
}

func TestCreateBookingUnknownArea(t *testing.T) {
	f := newFixture(t)
	input := validInput()
	input.AreaID = "nowhere"

	_, err := f.svc.Create(context.Background(), input)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "area", nfErr.Entity)
}

func TestCreateBookingAreaClosed(t *testing.T) {
	f := newFixture(t)
	area, err := f.areas.GetByID("area-1")
	require.NoError(t, err)
	area.IsAvailable = false
	require.NoError(t, f.areas.Update(area))

	_, err = f.svc.Create(context.Background(), validInput())
	var capErr *CapacityError
	assert.ErrorAs(t, err, &capErr)
}

func TestCreateBookingDurationBounds(t *testing.T) {
	f := newFixture(t)
	area, err := f.areas.GetByID("area-1")
	require.NoError(t, err)
	area.MinDuration = 60
	area.MaxDuration = 480
	require.NoError(t, f.areas.Update(area))

	short := validInput()
	short.Duration = 30
	_, err = f.svc.Create(context.Background(), short)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	long := validInput()
	long.Duration = 600
	_, err = f.svc.Create(context.Background(), long)
	assert.ErrorAs(t, err, &vErr)
}

func TestConcurrentCreatesNeverOverbook(t *testing.T) {
	f := newFixture(t)
	const attempts = 20 // area has 3 units

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Create(context.Background(), validInput())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		var capErr *CapacityError
		assert.ErrorAs(t, err, &capErr)
	}
	assert.Equal(t, 3, succeeded)

	area, err := f.areas.GetByID("area-1")
	require.NoError(t, err)
	assert.Equal(t, 0, area.Available)
}

// --- Invoice ---

func TestIssueInvoice(t *testing.T) {
	f := newFixture(t)
	b := f.create(t)

	invoice, err := f.svc.IssueInvoice(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "inv-"+b.ID, invoice.InvoiceID)
	assert.Equal(t, b.TotalAmount, invoice.Amount)

	stored, err := f.svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice.InvoiceID, stored.InvoiceID)
}

func TestIssueInvoiceProviderDown(t *testing.T) {
	f := newFixture(t)
	b := f.create(t)
	f.payment.createErr = errors.New("gateway unreachable")

	_, err := f.svc.IssueInvoice(context.Background(), b.ID)
	var depErr *DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "payment", depErr.Collaborator)
	require.NotNil(t, depErr.Booking)
	assert.Equal(t, models.BookingPending, depErr.Booking.Status)
}

func TestIssueInvoiceBackoffStopsOnCancel(t *testing.T) {
	f := newFixture(t)
	b := f.create(t)
	f.payment.createErr = errors.New("gateway unreachable")
	f.svc.RetryDelay = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := f.svc.IssueInvoice(ctx, b.ID)
	var depErr *DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "the retry backoff must not outlive the caller")
}

// --- ConfirmPayment ---

func TestConfirmPaymentMovesToConfirmed(t *testing.T) {
	f := newFixture(t)
	b := f.create(t)

	b, err := f.svc.ConfirmPayment(context.Background(), b.ID, f.paid(b.TotalAmount))
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Equal(t, models.PaymentPaid, b.PaymentStatus)
	assert.Equal(t, 1, f.notifier.count(models.NotifyBookingConfirmation))
}

func TestConfirmPaymentReplayIsIdempotent(t *testing.T) {
	f := newFixture(t)
	b := f.create(t)
	result := f.paid(b.TotalAmount)

	first, err := f.svc.ConfirmPayment(context.Background(), b.ID, result)
	require.NoError(t, err)
	second, err := f.svc.ConfirmPayment(context.Background(), b.ID, result)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, 1, f.notifier.count(models.NotifyBookingConfirmation),
		"replayed payment result must not resend the confirmation")
}

func TestConfirmPaymentStaleWebhookKeepsPaid(t *testing.T) {
	f := newFixture(t)
	b := f.create(t)

	b, err := f.svc.ConfirmPayment(context.Background(), b.ID, f.paid(b.TotalAmount))
	require.NoError(t, err)
	require.Equal(t, models.PaymentPaid, b.PaymentStatus)

	// A delayed gateway callback still reporting PENDING arrives after the
	// booking was paid and confirmed.
	got, err := f.svc.ConfirmPayment(context.Background(), b.ID, models.PaymentResult{Status: models.PaymentPending})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, models.BookingConfirmed, got.Status)

	stored, err := f.svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
	assert.Equal(t, models.BookingConfirmed, stored.Status)
}

func TestConfirmPaymentPartialKeepsPending(t *testing.T) {
	f := newFixture(t)
	b := f.create(t)

	b, err := f.svc.ConfirmPayment(context.Background(), b.ID, models.PaymentResult{
		Status:     models.PaymentPartial,
		PaidAmount: b.TotalAmount / 2,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, models.PaymentPartial, b.PaymentStatus)
	assert.Zero(t, f.notifier.count(models.NotifyBookingConfirmation))
}

func TestConfirmPaymentUnknownStatus(t *testing.T) {
	f := newFixture(t)
	b := f.create(t)

	_, err := f.svc.ConfirmPayment(context.Background(), b.ID, models.PaymentResult{Status: "SETTLED"})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestConfirmPaymentNotifierDown(t *testing.T) {
	f := newFixture(t)
	b := f.create(t)
	f.notifier.sendErr = errors.New("messaging API down")

	got, err := f.svc.ConfirmPayment(context.Background(), b.ID, f.paid(b.TotalAmount))
	var depErr *DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "messaging", depErr.Collaborator)

	// The transition itself still went through.
	require.NotNil(t, got)
	assert.Equal(t, models.BookingConfirmed, got.Status)
	stored, err := f.svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, stored.Status)

	// The message was never recorded as sent, so a later replay retries it.
	f.notifier.sendErr = nil
	_, err = f.svc.ConfirmPayment(context.Background(), b.ID, f.paid(b.TotalAmount))
	require.NoError(t, err)
	assert.Equal(t, 1, f.notifier.count(models.NotifyBookingConfirmation))
}

// --- CheckIn ---

func TestCheckIn(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingConfirmed)

	b, err := f.svc.CheckIn(context.Background(), b.ID, b.CheckInCode)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCheckedIn, b.Status)
}

func TestCheckInWrongCode(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingConfirmed)

	_, err := f.svc.CheckIn(context.Background(), b.ID, "CODENWRONG")
	var codeErr *InvalidCodeError
	require.ErrorAs(t, err, &codeErr)

	stored, err := f.svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, stored.Status)
}

func TestCheckInBeforePayment(t *testing.T) {
	f := newFixture(t)
	b := f.create(t)

	_, err := f.svc.CheckIn(context.Background(), b.ID, b.CheckInCode)
	var stateErr *StateError
	assert.ErrorAs(t, err, &stateErr)
}

// --- Network access ---

func TestGrantNetworkAccess(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingCheckedIn)

	b, err := f.svc.GrantNetworkAccess(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingActive, b.Status)
	assert.True(t, b.InternetAccess)
	require.NotNil(t, b.InternetCredentials)
	assert.Equal(t, "coden_"+b.ID, b.InternetCredentials.Username)
	assert.Equal(t, 1, f.notifier.count(models.NotifyInternetCredentials))
}

func TestGrantNetworkAccessIdempotent(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingActive)
	creds := b.InternetCredentials

	again, err := f.svc.GrantNetworkAccess(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, creds.Username, again.InternetCredentials.Username)
	assert.Len(t, f.network.created, 1, "re-grant must not provision a second login")
}

func TestGrantNetworkAccessBeforeCheckIn(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingConfirmed)

	_, err := f.svc.GrantNetworkAccess(context.Background(), b.ID)
	var stateErr *StateError
	assert.ErrorAs(t, err, &stateErr)
}

func TestGrantNetworkAccessProviderDown(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingCheckedIn)
	f.network.createErr = errors.New("gateway timeout")

	_, err := f.svc.GrantNetworkAccess(context.Background(), b.ID)
	var depErr *DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "network", depErr.Collaborator)

	stored, err := f.svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCheckedIn, stored.Status)
	assert.False(t, stored.InternetAccess)
	assert.Nil(t, stored.InternetCredentials)
}

func TestRevokeNetworkAccess(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingActive)

	b, err := f.svc.RevokeNetworkAccess(context.Background(), b.ID, "policy violation")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCheckedIn, b.Status)
	assert.False(t, b.InternetAccess)
	assert.Nil(t, b.InternetCredentials)
	assert.Contains(t, f.network.disabled, "coden_"+b.ID)
}

func TestRevokeNetworkAccessNoAccessIsNoop(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingCheckedIn)

	got, err := f.svc.RevokeNetworkAccess(context.Background(), b.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCheckedIn, got.Status)
	assert.Empty(t, f.network.disabled)
}

func TestRevokeClearsStateWhenProviderFails(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingActive)
	f.network.disErr = errors.New("gateway unreachable")

	got, err := f.svc.RevokeNetworkAccess(context.Background(), b.ID, "manual")
	require.NoError(t, err)
	assert.False(t, got.InternetAccess)
	assert.Nil(t, got.InternetCredentials)
	assert.Equal(t, models.BookingCheckedIn, got.Status)
}

func TestUsage(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingActive)

	usage, err := f.svc.Usage(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), usage.UploadBytes)
}

func TestUsageWithoutAccess(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingCheckedIn)

	_, err := f.svc.Usage(context.Background(), b.ID)
	var stateErr *StateError
	assert.ErrorAs(t, err, &stateErr)
}

// --- Complete and Cancel ---

func TestComplete(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingActive)

	b, err := f.svc.Complete(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, b.Status)
	assert.False(t, b.InternetAccess)
	assert.Nil(t, b.InternetCredentials)
	assert.Contains(t, f.network.disabled, "coden_"+b.ID)

	area, err := f.areas.GetByID("area-1")
	require.NoError(t, err)
	assert.Equal(t, 3, area.Available, "the unit returns to the pool")
}

func TestCompleteOnlyFromActive(t *testing.T) {
	f := newFixture(t)
	for _, status := range []string{models.BookingPending, models.BookingConfirmed, models.BookingCheckedIn} {
		t.Run(status, func(t *testing.T) {
			b := f.advance(t, f.create(t), status)
			_, err := f.svc.Complete(context.Background(), b.ID)
			var stateErr *StateError
			assert.ErrorAs(t, err, &stateErr)
		})
	}
}

func TestCancelFromEveryNonTerminalState(t *testing.T) {
	for _, status := range []string{
		models.BookingPending, models.BookingConfirmed,
		models.BookingCheckedIn, models.BookingActive,
	} {
		t.Run(status, func(t *testing.T) {
			f := newFixture(t)
			b := f.advance(t, f.create(t), status)

			b, err := f.svc.Cancel(context.Background(), b.ID, "customer request")
			require.NoError(t, err)
			assert.Equal(t, models.BookingCancelled, b.Status)
			assert.Equal(t, "customer request", b.CancelReason)
			assert.False(t, b.InternetAccess)
			assert.Nil(t, b.InternetCredentials)

			area, aerr := f.areas.GetByID("area-1")
			require.NoError(t, aerr)
			assert.Equal(t, 3, area.Available)
		})
	}
}

func TestCheckInOnlyFromConfirmed(t *testing.T) {
	for _, status := range []string{models.BookingPending, models.BookingCheckedIn, models.BookingActive} {
		t.Run(status, func(t *testing.T) {
			f := newFixture(t)
			b := f.advance(t, f.create(t), status)

			_, err := f.svc.CheckIn(context.Background(), b.ID, b.CheckInCode)
			var stateErr *StateError
			assert.ErrorAs(t, err, &stateErr)
		})
	}
}

func TestGrantNetworkAccessOnlyFromCheckedInOrActive(t *testing.T) {
	for _, status := range []string{models.BookingPending, models.BookingConfirmed} {
		t.Run(status, func(t *testing.T) {
			f := newFixture(t)
			b := f.advance(t, f.create(t), status)

			_, err := f.svc.GrantNetworkAccess(context.Background(), b.ID)
			var stateErr *StateError
			assert.ErrorAs(t, err, &stateErr)
		})
	}
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	f := newFixture(t)
	b := f.advance(t, f.create(t), models.BookingCompleted)
	ctx := context.Background()

	var stateErr *StateError
	_, err := f.svc.ConfirmPayment(ctx, b.ID, f.paid(b.TotalAmount))
	assert.ErrorAs(t, err, &stateErr)
	_, err = f.svc.CheckIn(ctx, b.ID, b.CheckInCode)
	assert.ErrorAs(t, err, &stateErr)
	_, err = f.svc.GrantNetworkAccess(ctx, b.ID)
	assert.ErrorAs(t, err, &stateErr)
	_, err = f.svc.Complete(ctx, b.ID)
	assert.ErrorAs(t, err, &stateErr)
	_, err = f.svc.Cancel(ctx, b.ID, "late")
	assert.ErrorAs(t, err, &stateErr)
	_, err = f.svc.IssueInvoice(ctx, b.ID)
	assert.ErrorAs(t, err, &stateErr)
}

func TestFullLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.create(t)
	assert.Equal(t, models.BookingPending, b.Status)

	invoice, err := f.svc.IssueInvoice(ctx, b.ID)
	require.NoError(t, err)

	now := time.Now()
	b, err = f.svc.ConfirmPayment(ctx, b.ID, models.PaymentResult{
		InvoiceID:  invoice.InvoiceID,
		Status:     models.PaymentPaid,
		PaidAmount: b.TotalAmount,
		PaidAt:     &now,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)

	b, err = f.svc.CheckIn(ctx, b.ID, b.CheckInCode)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCheckedIn, b.Status)

	b, err = f.svc.GrantNetworkAccess(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingActive, b.Status)
	require.NotNil(t, b.InternetCredentials)

	b, err = f.svc.Complete(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, b.Status)
	assert.Nil(t, b.InternetCredentials)

	assert.Equal(t, []sentMessage{
		{BookingID: b.ID, TemplateType: models.NotifyCheckInCode},
		{BookingID: b.ID, TemplateType: models.NotifyBookingConfirmation},
		{BookingID: b.ID, TemplateType: models.NotifyInternetCredentials},
		{BookingID: b.ID, TemplateType: models.NotifyThankYou},
	}, f.notifier.sent)
}

func TestGetUnknownBooking(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Get(context.Background(), "nope")
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestListByStatus(t *testing.T) {
	f := newFixture(t)
	f.create(t)
	b2 := f.create(t)
	f.advance(t, b2, models.BookingConfirmed)

	pending, err := f.svc.List(context.Background(), models.BookingPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := f.svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
