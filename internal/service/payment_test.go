package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/metrics"
	"github.com/stpnv0/EventZone/internal/service/ports"
	"github.com/stpnv0/EventZone/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubCommitter struct {
	calls   []string
	created bool
	err     error
}

func (c *stubCommitter) Commit(_ context.Context, eventID string, _ *domain.Identity) (*domain.Event, bool, error) {
	c.calls = append(c.calls, eventID)
	if c.err != nil {
		return nil, false, c.err
	}
	return &domain.Event{ID: eventID}, c.created, nil
}

type paymentMocks struct {
	payments  *mocks.MockPaymentRepo
	events    *mocks.MockEventRepo
	users     *mocks.MockUserRepo
	gateway   *mocks.MockCheckoutGateway
	committer *stubCommitter
}

func newPaymentService(t *testing.T) (*PaymentService, paymentMocks) {
	m := paymentMocks{
		payments:  mocks.NewMockPaymentRepo(t),
		events:    mocks.NewMockEventRepo(t),
		users:     mocks.NewMockUserRepo(t),
		gateway:   mocks.NewMockCheckoutGateway(t),
		committer: &stubCommitter{created: true},
	}
	svc := NewPaymentService(m.payments, m.events, m.users, m.gateway, m.committer,
		PaymentConfig{Currency: "INR", TTL: 30 * time.Minute}, time.UTC, newTestLogger(t))
	svc.now = fixedClock
	return svc, m
}

func TestPaymentService_ChargeEvent_Success(t *testing.T) {
	svc, m := newPaymentService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID: "e1", Title: "Masterclass", Date: "2025-06-11", Time: "18:00",
		Category: domain.CategoryPremium, Price: decimal.RequireFromString("249.50"),
	}, nil)
	m.payments.EXPECT().FindOpenForEvent(mock.Anything, "u1", "e1").Return(nil, domain.ErrPaymentNotFound)
	m.gateway.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(req ports.OrderRequest) bool {
		return req.AmountMinor == 24950 && req.Currency == "INR" && req.Notes["event_id"] == "e1"
	})).Return("order_1", nil)
	m.payments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.OrderID == "order_1" && p.Status == domain.PaymentStatusCreated && p.Purpose == domain.PurposeEventRegistration
	})).Return(nil)
	m.gateway.EXPECT().KeyID().Return("rzp_test_key")

	checkout, err := svc.ChargeEvent(context.Background(), attendee(domain.RoleVIP), "e1")

	require.NoError(t, err)
	assert.Equal(t, "rzp_test_key", checkout.KeyID)
	assert.Equal(t, "order_1", checkout.OrderID)
	assert.Equal(t, int64(24950), checkout.Amount)
	assert.Equal(t, "INR", checkout.Currency)
	assert.Equal(t, "Masterclass", checkout.Description)
	assert.Equal(t, "alice", checkout.PrefillName)
	assert.Empty(t, m.committer.calls)
}

func TestPaymentService_ChargeEvent_NotVIP(t *testing.T) {
	svc, m := newPaymentService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID: "e1", Date: "2025-06-11", Time: "18:00", Category: domain.CategoryPremium,
	}, nil)

	_, err := svc.ChargeEvent(context.Background(), attendee(domain.RoleUser), "e1")

	assert.ErrorIs(t, err, domain.ErrRegistrationBlocked)
}

func TestPaymentService_ChargeEvent_FreeEvent(t *testing.T) {
	svc, m := newPaymentService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID: "e1", Date: "2025-06-11", Time: "18:00", Category: domain.CategoryNormal,
	}, nil)

	_, err := svc.ChargeEvent(context.Background(), attendee(domain.RoleUser), "e1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_ChargeEvent_GatewayDown(t *testing.T) {
	svc, m := newPaymentService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID: "e1", Date: "2025-06-11", Time: "18:00", Category: domain.CategoryPremium,
	}, nil)
	m.payments.EXPECT().FindOpenForEvent(mock.Anything, "u1", "e1").Return(nil, domain.ErrPaymentNotFound)
	m.gateway.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return("", errors.New("503"))

	_, err := svc.ChargeEvent(context.Background(), attendee(domain.RoleVIP), "e1")

	require.Error(t, err)
}

func TestPaymentService_ChargeEvent_ReusesOpenOrder(t *testing.T) {
	svc, m := newPaymentService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID: "e1", Title: "Masterclass", Date: "2025-06-11", Time: "18:00",
		Category: domain.CategoryPremium, Price: decimal.RequireFromString("249.50"),
	}, nil)
	m.payments.EXPECT().FindOpenForEvent(mock.Anything, "u1", "e1").Return(&domain.Payment{
		OrderID: "order_1", Purpose: domain.PurposeEventRegistration, UserID: "u1", EventID: "e1",
		AmountMinor: 24950, Currency: "INR", Status: domain.PaymentStatusCreated,
	}, nil)
	m.gateway.EXPECT().KeyID().Return("rzp_test_key")

	checkout, err := svc.ChargeEvent(context.Background(), attendee(domain.RoleVIP), "e1")

	require.NoError(t, err)
	assert.Equal(t, "order_1", checkout.OrderID)
	assert.Equal(t, int64(24950), checkout.Amount)
	m.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	m.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentService_ChargeEvent_PriceChangedOpensNewOrder(t *testing.T) {
	svc, m := newPaymentService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID: "e1", Title: "Masterclass", Date: "2025-06-11", Time: "18:00",
		Category: domain.CategoryPremium, Price: decimal.RequireFromString("300"),
	}, nil)
	m.payments.EXPECT().FindOpenForEvent(mock.Anything, "u1", "e1").Return(&domain.Payment{
		OrderID: "order_old", AmountMinor: 24950, Currency: "INR", Status: domain.PaymentStatusCreated,
	}, nil)
	m.gateway.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(req ports.OrderRequest) bool {
		return req.AmountMinor == 30000
	})).Return("order_new", nil)
	m.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.gateway.EXPECT().KeyID().Return("rzp_test_key")

	checkout, err := svc.ChargeEvent(context.Background(), attendee(domain.RoleVIP), "e1")

	require.NoError(t, err)
	assert.Equal(t, "order_new", checkout.OrderID)
}

func TestPaymentService_ChargeEvent_LookupFails(t *testing.T) {
	svc, m := newPaymentService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID: "e1", Date: "2025-06-11", Time: "18:00", Category: domain.CategoryPremium,
	}, nil)
	m.payments.EXPECT().FindOpenForEvent(mock.Anything, "u1", "e1").Return(nil, errors.New("db down"))

	_, err := svc.ChargeEvent(context.Background(), attendee(domain.RoleVIP), "e1")

	require.Error(t, err)
	m.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPaymentService_ChargeVIP(t *testing.T) {
	svc, m := newPaymentService(t)

	m.gateway.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(req ports.OrderRequest) bool {
		return req.AmountMinor == 49900
	})).Return("order_vip", nil)
	m.payments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Purpose == domain.PurposeVIPSubscription && p.Months == 3
	})).Return(nil)
	m.gateway.EXPECT().KeyID().Return("rzp_test_key")

	checkout, err := svc.ChargeVIP(context.Background(), attendee(domain.RoleUser), 3)

	require.NoError(t, err)
	assert.Equal(t, "VIP Subscription (3 Months)", checkout.Description)
	assert.Equal(t, int64(49900), checkout.Amount)
}

func TestPaymentService_ChargeVIP_Rejected(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.ChargeVIP(context.Background(), creator(), 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.ChargeVIP(context.Background(), attendee(domain.RoleUser), 2)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.ChargeVIP(context.Background(), nil, 1)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPaymentService_Confirm_BadSignature(t *testing.T) {
	svc, m := newPaymentService(t)

	m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "forged").Return(false)

	_, err := svc.Confirm(context.Background(), attendee(domain.RoleVIP), domain.PaymentProof{
		OrderID: "order_1", PaymentID: "pay_1", Signature: "forged",
	})

	assert.ErrorIs(t, err, domain.ErrPaymentVerification)
	assert.Empty(t, m.committer.calls)
}

func TestPaymentService_Confirm_EventRegistration(t *testing.T) {
	svc, m := newPaymentService(t)

	proof := domain.PaymentProof{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}
	m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
	m.payments.EXPECT().GetByOrderID(mock.Anything, "order_1").Return(&domain.Payment{
		OrderID: "order_1", Purpose: domain.PurposeEventRegistration, UserID: "u1", EventID: "e1", Status: domain.PaymentStatusCreated,
	}, nil)
	m.payments.EXPECT().MarkPaid(mock.Anything, "order_1", "pay_1").Return(true, nil)

	p, err := svc.Confirm(context.Background(), attendee(domain.RoleVIP), proof)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, p.Status)
	assert.Equal(t, []string{"e1"}, m.committer.calls)
}

func TestPaymentService_Confirm_RepeatedIsIdempotent(t *testing.T) {
	svc, m := newPaymentService(t)
	m.committer.created = false

	m.gateway.EXPECT().VerifySignature(mock.Anything, mock.Anything, mock.Anything).Return(true)
	m.payments.EXPECT().GetByOrderID(mock.Anything, "order_1").Return(&domain.Payment{
		OrderID: "order_1", Purpose: domain.PurposeEventRegistration, UserID: "u1", EventID: "e1", Status: domain.PaymentStatusPaid,
	}, nil)
	m.payments.EXPECT().MarkPaid(mock.Anything, "order_1", "pay_1").Return(false, nil)

	_, err := svc.Confirm(context.Background(), attendee(domain.RoleVIP), domain.PaymentProof{OrderID: "order_1", PaymentID: "pay_1"})

	require.NoError(t, err)
	assert.Len(t, m.committer.calls, 1)
}

func TestPaymentService_Confirm_SecondOrderForSameEvent(t *testing.T) {
	svc, m := newPaymentService(t)
	// a first order already registered the user
	m.committer.created = false

	m.gateway.EXPECT().VerifySignature("order_2", "pay_2", "sig").Return(true)
	m.payments.EXPECT().GetByOrderID(mock.Anything, "order_2").Return(&domain.Payment{
		OrderID: "order_2", Purpose: domain.PurposeEventRegistration, UserID: "u1", EventID: "e1",
		AmountMinor: 19900, Status: domain.PaymentStatusCreated,
	}, nil)
	m.payments.EXPECT().MarkPaid(mock.Anything, "order_2", "pay_2").Return(true, nil)

	before := testutil.ToFloat64(metrics.PaymentsCounter().WithLabelValues(string(domain.PurposeEventRegistration), statusDuplicate))

	p, err := svc.Confirm(context.Background(), attendee(domain.RoleVIP),
		domain.PaymentProof{OrderID: "order_2", PaymentID: "pay_2", Signature: "sig"})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, p.Status)
	after := testutil.ToFloat64(metrics.PaymentsCounter().WithLabelValues(string(domain.PurposeEventRegistration), statusDuplicate))
	assert.Equal(t, before+1, after)
}

func TestPaymentService_Confirm_OtherUsersOrder(t *testing.T) {
	svc, m := newPaymentService(t)

	m.gateway.EXPECT().VerifySignature(mock.Anything, mock.Anything, mock.Anything).Return(true)
	m.payments.EXPECT().GetByOrderID(mock.Anything, "order_1").Return(&domain.Payment{
		OrderID: "order_1", Purpose: domain.PurposeEventRegistration, UserID: "someone-else",
	}, nil)

	_, err := svc.Confirm(context.Background(), attendee(domain.RoleVIP), domain.PaymentProof{OrderID: "order_1", PaymentID: "pay_1"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPaymentService_Confirm_ActivatesVIP(t *testing.T) {
	svc, m := newPaymentService(t)

	m.gateway.EXPECT().VerifySignature(mock.Anything, mock.Anything, mock.Anything).Return(true)
	m.payments.EXPECT().GetByOrderID(mock.Anything, "order_vip").Return(&domain.Payment{
		OrderID: "order_vip", Purpose: domain.PurposeVIPSubscription, UserID: "u1", Months: 3,
	}, nil)
	m.payments.EXPECT().MarkPaid(mock.Anything, "order_vip", "pay_1").Return(true, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleUser}, nil)
	m.users.EXPECT().SetSubscription(mock.Anything, "u1", domain.RoleVIP, domain.Subscription{
		OrderID:   "order_vip",
		Months:    3,
		StartedAt: testNow,
		EndsAt:    testNow.AddDate(0, 3, 0),
	}).Return(nil)

	_, err := svc.Confirm(context.Background(), attendee(domain.RoleUser), domain.PaymentProof{OrderID: "order_vip", PaymentID: "pay_1"})

	require.NoError(t, err)
}

func TestPaymentService_Confirm_ExtendsActiveVIP(t *testing.T) {
	svc, m := newPaymentService(t)

	ends := testNow.Add(10 * 24 * time.Hour)
	m.gateway.EXPECT().VerifySignature(mock.Anything, mock.Anything, mock.Anything).Return(true)
	m.payments.EXPECT().GetByOrderID(mock.Anything, "order_2").Return(&domain.Payment{
		OrderID: "order_2", Purpose: domain.PurposeVIPSubscription, UserID: "u1", Months: 1,
	}, nil)
	m.payments.EXPECT().MarkPaid(mock.Anything, "order_2", "pay_2").Return(true, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{
		ID: "u1", Role: domain.RoleVIP,
		Subscription: &domain.Subscription{OrderID: "order_1", Months: 1, StartedAt: testNow.AddDate(0, -1, 10), EndsAt: ends},
	}, nil)
	m.users.EXPECT().SetSubscription(mock.Anything, "u1", domain.RoleVIP, mock.MatchedBy(func(sub domain.Subscription) bool {
		return sub.StartedAt.Equal(ends) && sub.EndsAt.Equal(ends.AddDate(0, 1, 0))
	})).Return(nil)

	_, err := svc.Confirm(context.Background(), attendee(domain.RoleVIP), domain.PaymentProof{OrderID: "order_2", PaymentID: "pay_2"})

	require.NoError(t, err)
}

func TestPaymentService_Confirm_VIPAlreadyApplied(t *testing.T) {
	svc, m := newPaymentService(t)

	m.gateway.EXPECT().VerifySignature(mock.Anything, mock.Anything, mock.Anything).Return(true)
	m.payments.EXPECT().GetByOrderID(mock.Anything, "order_vip").Return(&domain.Payment{
		OrderID: "order_vip", Purpose: domain.PurposeVIPSubscription, UserID: "u1", Months: 1,
	}, nil)
	m.payments.EXPECT().MarkPaid(mock.Anything, "order_vip", "pay_1").Return(false, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{
		ID: "u1", Role: domain.RoleVIP,
		Subscription: &domain.Subscription{OrderID: "order_vip", Months: 1, StartedAt: testNow, EndsAt: testNow.AddDate(0, 1, 0)},
	}, nil)

	_, err := svc.Confirm(context.Background(), attendee(domain.RoleVIP), domain.PaymentProof{OrderID: "order_vip", PaymentID: "pay_1"})

	require.NoError(t, err)
}

func TestPaymentService_ExpireStale(t *testing.T) {
	svc, m := newPaymentService(t)

	m.payments.EXPECT().ExpireCreatedBefore(mock.Anything, testNow.Add(-30*time.Minute)).Return([]*domain.Payment{
		{OrderID: "o1", Purpose: domain.PurposeEventRegistration},
	}, nil)

	expired, err := svc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, expired, 1)
}
