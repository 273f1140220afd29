package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"medistay/config"
	kafkaMocks "medistay/infras/kafka/mocks"
	mailerMocks "medistay/infras/mailer/mocks"
	otelMocks "medistay/infras/otel/mocks"
	"medistay/infras/payment"
	paymentMocks "medistay/infras/payment/mocks"
	bookingMocks "medistay/internal/domains/booking/mocks"
	"medistay/internal/domains/booking/model"
	"medistay/internal/domains/booking/model/dto"
	"medistay/internal/domains/booking/service"
	roomModel "medistay/internal/domains/room/model"
	roomMocks "medistay/internal/domains/room/mocks"
	userModel "medistay/internal/domains/user/model"
	userMocks "medistay/internal/domains/user/mocks"
	cacheMocks "medistay/shared/cache/mocks"
	"medistay/shared/constant"
	"medistay/shared/failure"
)

type bookingFixture struct {
	repo     *bookingMocks.MockBooking
	roomRepo *roomMocks.MockRoom
	userRepo *userMocks.MockUser
	cache    *cacheMocks.MockRedisCache
	payment  *paymentMocks.MockClient
	broker   *kafkaMocks.MockClient
	mailer   *mailerMocks.MockMailer
	svc      service.Booking
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingEvents = "booking-events"

	f := &bookingFixture{
		repo:     bookingMocks.NewMockBooking(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		userRepo: userMocks.NewMockUser(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		payment:  paymentMocks.NewMockClient(ctrl),
		broker:   kafkaMocks.NewMockClient(ctrl),
		mailer:   mailerMocks.NewMockMailer(ctrl),
	}

	f.svc = service.New(
		f.repo,
		f.roomRepo,
		f.userRepo,
		cfg,
		f.cache,
		otelMocks.NewOtel(),
		f.payment,
		f.broker,
		f.mailer,
	)

	return f
}

func patientContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "patient-1")
}

func TestBookingService_Create(t *testing.T) {
	room := roomModel.Room{
		ID:            "room-1",
		Name:          "Recovery Suite",
		PricePerNight: "200",
		CleaningFee:   "50",
		MaxGuests:     2,
	}

	t.Run("missing credential fails before any collaborator call", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID:   "room-1",
			CheckIn:  "2026-09-01",
			CheckOut: "2026-09-04",
			Guests:   1,
		})

		assert.ErrorIs(t, err, failure.MissingCredential)
	})

	t.Run("inverted date range is rejected before pricing", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.Create(patientContext(), dto.CreateBookingRequest{
			RoomID:   "room-1",
			CheckIn:  "2026-09-04",
			CheckOut: "2026-09-01",
			Guests:   1,
		})

		assert.ErrorIs(t, err, failure.InvalidDateRange)
	})

	t.Run("unknown room is rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, nil)

		_, err := f.svc.Create(patientContext(), dto.CreateBookingRequest{
			RoomID:   "room-404",
			CheckIn:  "2026-09-01",
			CheckOut: "2026-09-04",
			Guests:   1,
		})

		assert.Error(t, err)
	})

	t.Run("guest count above room capacity is rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		_, err := f.svc.Create(patientContext(), dto.CreateBookingRequest{
			RoomID:   "room-1",
			CheckIn:  "2026-09-01",
			CheckOut: "2026-09-04",
			Guests:   5,
		})

		assert.Error(t, err)
	})

	t.Run("successful creation prices the stay and publishes an event", func(t *testing.T) {
		f := newBookingFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		var inserted model.Booking
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod model.Booking) error {
				inserted = mod

				return nil
			})

		f.broker.EXPECT().
			SendMessages(gomock.Any(), "booking-events", gomock.Any()).
			Return(nil).
			AnyTimes()

		f.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Create(patientContext(), dto.CreateBookingRequest{
			RoomID:   "room-1",
			CheckIn:  "2026-09-01",
			CheckOut: "2026-09-04",
			Guests:   1,
		})

		time.Sleep(20 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, inserted.Status)
		assert.Equal(t, "patient-1", inserted.PatientID)
		assert.Equal(t, "650.00", inserted.Total)
		assert.Equal(t, "650.00", res.Total)
		assert.Equal(t, "2026-09-01", res.CheckIn)
	})
}

func TestBookingService_Checkout(t *testing.T) {
	pending := model.Booking{
		ID:        "booking-1",
		RoomID:    "room-1",
		PatientID: "patient-1",
		Status:    model.StatusPending,
		Total:     "650.00",
	}

	t.Run("opens a session and returns the client secret once", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "patient-1", Email: "patient@example.com"}, nil)

		f.payment.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.CreateSessionRequest) (payment.Session, error) {
				assert.Equal(t, int64(65000), req.AmountCents)
				assert.Equal(t, "booking-1", req.Reference)
				assert.Equal(t, payment.ModePayment, req.Mode)
				assert.Equal(t, "patient@example.com", req.CustomerEmail)
				assert.Equal(t, "booking-1", req.IdempotencyKey)

				return payment.Session{ID: "sess-1", ClientSecret: "secret-1", Status: "open"}, nil
			})

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				assert.Equal(t, "sess-1", req[model.FieldSessionID])

				return nil
			})

		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Checkout(patientContext(), "booking-1")

		time.Sleep(20 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "sess-1", res.SessionID)
		assert.Equal(t, "secret-1", res.ClientSecret)
	})

	t.Run("checking out again reuses the still-open session", func(t *testing.T) {
		f := newBookingFixture(t)

		withSession := pending
		withSession.PaymentSessionID = "sess-1"

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(withSession, nil)

		f.payment.EXPECT().
			GetSession(gomock.Any(), "sess-1").
			Return(payment.Session{ID: "sess-1", ClientSecret: "secret-1", Status: "open"}, nil)

		res, err := f.svc.Checkout(patientContext(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "sess-1", res.SessionID)
		assert.Equal(t, "secret-1", res.ClientSecret)
	})

	t.Run("dead session rotates the idempotency key for a replacement", func(t *testing.T) {
		f := newBookingFixture(t)

		withSession := pending
		withSession.PaymentSessionID = "sess-old"

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(withSession, nil)

		f.payment.EXPECT().
			GetSession(gomock.Any(), "sess-old").
			Return(payment.Session{ID: "sess-old", Status: "expired"}, nil)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "patient-1", Email: "patient@example.com"}, nil)

		f.payment.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.CreateSessionRequest) (payment.Session, error) {
				assert.Equal(t, "booking-1:sess-old", req.IdempotencyKey)

				return payment.Session{ID: "sess-new", ClientSecret: "secret-2", Status: "open"}, nil
			})

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Checkout(patientContext(), "booking-1")

		time.Sleep(20 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "sess-new", res.SessionID)
	})

	t.Run("processor session without secret surfaces the error", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "patient-1", Email: "patient@example.com"}, nil)

		f.payment.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			Return(payment.Session{}, payment.ErrSessionCreation)

		_, err := f.svc.Checkout(patientContext(), "booking-1")

		assert.ErrorIs(t, err, payment.ErrSessionCreation)
	})

	t.Run("non-pending booking is not payable", func(t *testing.T) {
		f := newBookingFixture(t)

		cancelled := pending
		cancelled.Status = model.StatusCancelled

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cancelled, nil)

		_, err := f.svc.Checkout(patientContext(), "booking-1")

		assert.Error(t, err)
	})

	t.Run("another patient's booking reads as not found", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "intruder")

		_, err := f.svc.Checkout(ctx, "booking-1")

		assert.Error(t, err)
	})
}

func TestBookingService_ConfirmPayment(t *testing.T) {
	fullName := "Ana Torres"

	withSession := model.Booking{
		ID:               "booking-1",
		RoomID:           "room-1",
		PatientID:        "patient-1",
		Status:           model.StatusPending,
		Total:            "650.00",
		PaymentSessionID: "sess-1",
	}

	t.Run("completed session confirms the booking and notifies the guest", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(withSession, nil)

		f.payment.EXPECT().
			GetSession(gomock.Any(), "sess-1").
			Return(payment.Session{ID: "sess-1", Status: "complete"}, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				assert.Equal(t, model.StatusConfirmed, req[model.FieldStatus])

				return nil
			})

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "patient-1", Email: "patient@example.com", FullName: &fullName}, nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-1", Name: "Recovery Suite"}, nil)

		f.mailer.EXPECT().
			SendBookingConfirmed("patient@example.com", fullName, "Recovery Suite", gomock.Any(), gomock.Any(), "650.00").
			Return(nil).
			AnyTimes()

		f.broker.EXPECT().
			SendMessages(gomock.Any(), "booking-events", gomock.Any()).
			Return(nil).
			AnyTimes()

		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.ConfirmPayment(patientContext(), "booking-1")

		time.Sleep(20 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})

	t.Run("incomplete session is rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(withSession, nil)

		f.payment.EXPECT().
			GetSession(gomock.Any(), "sess-1").
			Return(payment.Session{ID: "sess-1", Status: "open"}, nil)

		_, err := f.svc.ConfirmPayment(patientContext(), "booking-1")

		assert.Error(t, err)
	})

	t.Run("booking without a session cannot be confirmed", func(t *testing.T) {
		f := newBookingFixture(t)

		noSession := withSession
		noSession.PaymentSessionID = ""

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(noSession, nil)

		_, err := f.svc.ConfirmPayment(patientContext(), "booking-1")

		assert.Error(t, err)
	})

	t.Run("already confirmed booking is idempotent", func(t *testing.T) {
		f := newBookingFixture(t)

		confirmed := withSession
		confirmed.Status = model.StatusConfirmed

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil)

		res, err := f.svc.ConfirmPayment(patientContext(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("cancels a pending booking and publishes the event", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "booking-1", PatientID: "patient-1", Status: model.StatusPending}, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.broker.EXPECT().
			SendMessages(gomock.Any(), "booking-events", gomock.Any()).
			Return(nil).
			AnyTimes()

		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.Cancel(patientContext(), "booking-1")

		time.Sleep(20 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("cancelling twice is rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "booking-1", PatientID: "patient-1", Status: model.StatusCancelled}, nil)

		err := f.svc.Cancel(patientContext(), "booking-1")

		assert.Error(t, err)
	})
}
