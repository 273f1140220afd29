package service

import (
	"context"
	"fmt"

	"medistay/config"
	"medistay/infras/kafka"
	"medistay/infras/mailer"
	"medistay/infras/otel"
	"medistay/infras/payment"
	"medistay/internal/domains/booking/model"
	"medistay/internal/domains/booking/model/dto"
	"medistay/internal/domains/booking/pricing"
	"medistay/internal/domains/booking/repository"
	roomModel "medistay/internal/domains/room/model"
	roomRepo "medistay/internal/domains/room/repository"
	userModel "medistay/internal/domains/user/model"
	userRepo "medistay/internal/domains/user/repository"
	"medistay/shared"
	"medistay/shared/cache"
	"medistay/shared/constant"
	gDto "medistay/shared/dto"
	"medistay/shared/failure"
	gModel "medistay/shared/model"
	"medistay/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	paymentCurrency     = "usd"
	paymentStatusOpen   = "open"
	paymentStatusPaid   = "complete"
	paymentProductLabel = "Estancia de recuperación"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Checkout(ctx context.Context, id string) (dto.CheckoutResponse, error)
	ConfirmPayment(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	userRepo userRepo.User
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	payment  payment.Client
	broker   kafka.Client
	mailer   mailer.Mailer
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	userRepo userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	payment payment.Client,
	broker kafka.Client,
	mailer mailer.Mailer,
) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		userRepo: userRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		payment:  payment,
		broker:   broker,
		mailer:   mailer,
	}
}

// Create prices and persists a pending booking. The date range is validated
// before any price math so an inverted range can never yield a negative total.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.MissingCredential // nolint:wrapcheck
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for booking")

		return res, fmt.Errorf("failed to get room for booking: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	if req.Guests > room.MaxGuests {
		return res, failure.BadRequestFromString("too many guests for this room") // nolint:wrapcheck
	}

	_, total, err := pricing.Quote(checkIn, checkOut, req.Guests, room.PricePerNight, room.CleaningFee)
	if err != nil {
		return res, err
	}

	booking := model.Booking{
		ID:            dto.NewBookingID(),
		RoomID:        room.ID,
		PatientID:     user,
		Status:        model.StatusPending,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests,
		PricePerNight: room.PricePerNight,
		CleaningFee:   room.CleaningFee,
		Total:         pricing.FormatTotal(total),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		return res, failure.Translate(err) // nolint:wrapcheck
	}

	s.publishEvent(ctx, dto.EventBookingCreated, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadOwned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// Checkout opens an embedded payment session for a pending booking and hands
// the client secret back. Only the session id is persisted.
func (s *serviceImpl) Checkout(ctx context.Context, id string) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadOwned(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusPending {
		return res, failure.BadRequestFromString("booking is not payable") // nolint:wrapcheck
	}

	// A second checkout on the same pending booking hands back the stored
	// session while it is still open, so retries never mint duplicates.
	if booking.PaymentSessionID != constant.Empty {
		stored, sessionErr := s.payment.GetSession(ctx, booking.PaymentSessionID)
		if sessionErr == nil && stored.Status == paymentStatusOpen && stored.ClientSecret != constant.Empty {
			return dto.CheckoutResponse{
				BookingID:    booking.ID,
				SessionID:    stored.ID,
				ClientSecret: stored.ClientSecret,
			}, nil
		}

		if sessionErr != nil {
			log.Warn().Err(sessionErr).Str("session_id", booking.PaymentSessionID).Msg("stored payment session is not reusable")
		}
	}

	patient, err := s.userRepo.Get(ctx, shared.FilterByID(booking.PatientID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get patient for checkout")

		return res, fmt.Errorf("failed to get patient for checkout: %w", err)
	}

	amountCents, err := pricing.AmountCents(booking.Total)
	if err != nil {
		return res, err
	}

	// The key is stable for a given booking state: a plain retry replays the
	// same session, and only a dead previous session rotates it so a fresh
	// session can still be opened.
	idempotencyKey := booking.ID
	if booking.PaymentSessionID != constant.Empty {
		idempotencyKey = booking.ID + ":" + booking.PaymentSessionID
	}

	session, err := s.payment.CreateSession(ctx, payment.CreateSessionRequest{
		AmountCents:    amountCents,
		Currency:       paymentCurrency,
		Mode:           payment.ModePayment,
		ProductName:    paymentProductLabel,
		Reference:      booking.ID,
		CustomerEmail:  patient.Email,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.repo.Update(ctx, map[string]any{
		model.FieldSessionID:     session.ID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to store payment session: %w", err)
	}

	s.invalidate(ctx, id)

	return dto.CheckoutResponse{
		BookingID:    booking.ID,
		SessionID:    session.ID,
		ClientSecret: session.ClientSecret,
	}, nil
}

// ConfirmPayment polls the processor and promotes the booking when its session
// has completed. Confirmation fans out an event and the guest email.
func (s *serviceImpl) ConfirmPayment(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadOwned(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status == model.StatusConfirmed {
		res.FromModel(booking)

		return res, nil
	}

	if booking.PaymentSessionID == constant.Empty {
		return res, failure.BadRequestFromString("booking has no payment session") // nolint:wrapcheck
	}

	session, err := s.payment.GetSession(ctx, booking.PaymentSessionID)
	if err != nil {
		return res, err
	}

	if session.Status != paymentStatusPaid {
		return res, failure.BadRequestFromString("payment is not completed yet") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusConfirmed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to confirm booking: %w", err)
	}

	booking.Status = model.StatusConfirmed

	s.publishEvent(ctx, dto.EventBookingConfirmed, booking)
	s.sendConfirmationMail(ctx, booking)
	s.invalidate(ctx, id)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadOwned(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status == model.StatusCancelled {
		return failure.BadRequestFromString("booking is already cancelled") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = model.StatusCancelled

	s.publishEvent(ctx, dto.EventBookingCancelled, booking)
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) loadOwned(ctx context.Context, id string) (model.Booking, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return model.Booking{}, failure.MissingCredential // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return model.Booking{}, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if booking.PatientID != user && role != constant.RoleAdmin && role != constant.RoleSuperAdmin {
		return model.Booking{}, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	topic := s.cfg.Kafka.Topics.BookingEvents
	if topic == constant.Empty {
		return
	}

	event := dto.BookingEvent{
		Type:      eventType,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		PatientID: booking.PatientID,
		Total:     booking.Total,
		At:        timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.broker.SendMessages(c, topic, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) sendConfirmationMail(ctx context.Context, booking model.Booking) {
	patient, err := s.userRepo.Get(ctx, shared.FilterByID(booking.PatientID, userModel.FieldID, userModel.TableName))
	if err != nil || patient.Email == constant.Empty {
		log.Error().Err(err).Msg("failed to resolve patient for confirmation mail")

		return
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve room for confirmation mail")

		return
	}

	guestName := patient.Email
	if patient.FullName != nil && *patient.FullName != constant.Empty {
		guestName = *patient.FullName
	}

	go func() {
		if err := s.mailer.SendBookingConfirmed(patient.Email, guestName, room.Name, booking.CheckIn, booking.CheckOut, booking.Total); err != nil {
			log.Error().Err(err).Msg("failed to send booking confirmation mail")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
