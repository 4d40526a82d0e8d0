package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"wellnest/config"
	"wellnest/models"
	"wellnest/services/notification"
	"wellnest/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async delivery worker in background.
// Delivery failures are logged and retried by asynq; they never surface to
// the booking request that enqueued the notice.
func InitNotificationWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueue,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotice, handleBookingNotice(notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[NotificationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingNotice(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var req models.NotificationRequest
		if err := json.Unmarshal(task.Payload(), &req); err != nil {
			log.Printf("[BookingNotice] Invalid payload: %v", err)
			return err
		}

		log.Printf("[BookingNotice] Delivering %s for booking %s", req.Kind, req.BookingID)

		var err error
		switch req.Kind {
		case models.NoticeBookingConfirmation:
			err = notifSvc.SendBookingConfirmation(ctx, req)
		case models.NoticeBookingCancellation:
			err = notifSvc.SendBookingCancellation(ctx, req)
		default:
			log.Printf("[BookingNotice] Unknown notice kind: %s", req.Kind)
			return nil
		}

		if err != nil {
			log.Printf("[BookingNotice] Delivery failed for booking %s: %v", req.BookingID, err)
		}
		return err
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueue,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NotificationWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
