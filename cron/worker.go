package cron

import (
	"context"
	"errors"
	"time"

	"coden/config"
	bookingRepo "coden/database/repository/booking"
	customerRepo "coden/database/repository/customer"
	"coden/models"
	"coden/services/booking"
	"coden/services/messaging"
	"coden/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeBookingExpire   = "booking:expire"
	TypePaymentReminder = "payment:reminder"

	sweepInterval    = 1 * time.Minute
	reminderInterval = 10 * time.Minute

	// reminderCooldown keeps a customer from being pinged about the same
	// unpaid booking more than once per window.
	reminderCooldown = 6 * time.Hour
)

// Worker runs the background lifecycle sweeps: expiring overdue bookings
// and reminding customers with unpaid invoices.
type Worker struct {
	Bookings  booking.BookingService
	Repo      bookingRepo.BookingRepository
	Customers customerRepo.CustomerRepository
	Notifier  messaging.NotificationService
	Logger    *zap.Logger
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Start launches the asynq server and the periodic enqueuers. It returns
// once everything is running in the background.
func (w *Worker) Start() {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingExpire, w.handleExpireTask)
	mux.HandleFunc(TypePaymentReminder, w.handleReminderTask)

	go func() {
		w.Logger.Info("starting lifecycle worker")
		if err := srv.Run(mux); err != nil {
			w.Logger.Fatal("lifecycle worker stopped", zap.Error(err))
		}
	}()

	go w.enqueueLoop()
}

// enqueueLoop schedules the recurring sweeps onto the queue.
func (w *Worker) enqueueLoop() {
	client := asynq.NewClient(redisOpts())
	defer client.Close()

	sweep := time.NewTicker(sweepInterval)
	remind := time.NewTicker(reminderInterval)
	defer sweep.Stop()
	defer remind.Stop()

	for {
		select {
		case <-sweep.C:
			if _, err := client.Enqueue(asynq.NewTask(TypeBookingExpire, nil)); err != nil {
				w.Logger.Warn("failed to enqueue expiry sweep", zap.Error(err))
			}
		case <-remind.C:
			if _, err := client.Enqueue(asynq.NewTask(TypePaymentReminder, nil)); err != nil {
				w.Logger.Warn("failed to enqueue payment reminders", zap.Error(err))
			}
		}
	}
}

// handleExpireTask closes out bookings whose window has passed. Active
// bookings are completed, which also revokes internet access; bookings that
// never reached ACTIVE are cancelled.
func (w *Worker) handleExpireTask(ctx context.Context, _ *asynq.Task) error {
	expired, err := w.Repo.ListExpired()
	if err != nil {
		w.Logger.Error("expiry sweep: listing failed", zap.Error(err))
		return err
	}

	for i := range expired {
		b := &expired[i]
		var opErr error
		if b.Status == models.BookingActive {
			_, opErr = w.Bookings.Complete(ctx, b.ID)
		} else {
			_, opErr = w.Bookings.Cancel(ctx, b.ID, "expired")
		}
		if opErr != nil {
			// Another sweep or a staff action may have raced us; a state
			// conflict here just means the booking already moved on.
			var stateErr *booking.StateError
			if errors.As(opErr, &stateErr) {
				continue
			}
			w.Logger.Error("expiry sweep: transition failed",
				zap.String("bookingID", b.ID), zap.Error(opErr))
		}
	}
	return nil
}

// handleReminderTask messages customers whose booking still awaits payment.
func (w *Worker) handleReminderTask(ctx context.Context, _ *asynq.Task) error {
	pending, err := w.Repo.ListByStatus(models.BookingPending)
	if err != nil {
		w.Logger.Error("payment reminders: listing failed", zap.Error(err))
		return err
	}

	cache := utils.GetCacheClient()
	for i := range pending {
		b := &pending[i]
		if b.PaymentStatus != models.PaymentPending && b.PaymentStatus != models.PaymentPartial {
			continue
		}

		ok, err := cache.SetNX(ctx, "reminder:"+b.ID, time.Now().Unix(), reminderCooldown).Result()
		if err != nil {
			w.Logger.Warn("payment reminders: cooldown check failed",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		if !ok {
			continue
		}

		customer, err := w.Customers.GetByID(b.CustomerID)
		if err != nil || customer == nil {
			w.Logger.Warn("payment reminders: customer lookup failed",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}

		data := messaging.TemplateData{
			CustomerName: customer.Name,
			BookingID:    b.ID,
			Amount:       b.TotalAmount,
		}
		if err := w.Notifier.Notify(ctx, b.ID, customer.Phone, models.NotifyPaymentReminder, data); err != nil {
			w.Logger.Warn("payment reminders: send failed",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
	return nil
}
