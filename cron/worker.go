package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"carewell/config"
	applicationRepo "carewell/database/repository/application"
	"carewell/models"
	"carewell/services/notification"
	"carewell/services/storage"
	"carewell/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitTaskWorker runs the async worker in background. It consumes blob
// cleanup tasks and scheduled payment reminders.
func InitTaskWorker(store storage.StorageService, apps applicationRepo.ApplicationRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
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
	mux.HandleFunc(tasks.TypeDeleteBlob, handleDeleteBlobTask(store))
	mux.HandleFunc(tasks.TypePaymentReminder, handlePaymentReminderTask(apps, notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[TaskWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TaskWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TaskWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleDeleteBlobTask(store storage.StorageService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.DeleteBlobPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[DeleteBlobHandler] Invalid payload: %v", err)
			return err
		}
		if err := store.DeleteFile(ctx, p.PublicID); err != nil {
			log.Printf("[DeleteBlobHandler] Failed to delete blob %s: %v", p.PublicID, err)
			return err
		}
		return nil
	}
}

func handlePaymentReminderTask(apps applicationRepo.ApplicationRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.PaymentReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PaymentReminderHandler] Invalid payload: %v", err)
			return err
		}

		// Re-check the balance at fire time; the user may have paid off since.
		app, err := apps.GetByID(p.ApplicationID)
		if err != nil {
			log.Printf("[PaymentReminderHandler] Failed to load application %s: %v", p.ApplicationID, err)
			return err
		}
		if app == nil || app.BalanceDue() <= 0 {
			return nil
		}

		body := fmt.Sprintf("You have an outstanding balance of %.2f on your application.", app.BalanceDue())
		data := map[string]string{
			"applicationId": app.ID,
		}
		if err := notifSvc.NotifyUser(ctx, p.UserID, models.NotifPaymentReminder, "Payment reminder", body, data); err != nil {
			log.Printf("[PaymentReminderHandler] Failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[TaskWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
