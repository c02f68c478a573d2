package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task type names consumed by the cron worker.
const (
	TypeDeleteBlob      = "storage:delete_blob"
	TypePaymentReminder = "payment:reminder"
)

// DeleteBlobPayload identifies a stored blob to destroy.
type DeleteBlobPayload struct {
	PublicID string `json:"publicId"`
}

// PaymentReminderPayload identifies an application with an outstanding balance.
type PaymentReminderPayload struct {
	UserID        string  `json:"userId"`
	ApplicationID string  `json:"applicationId"`
	BalanceDue    float64 `json:"balanceDue"`
}

// NewDeleteBlobTask builds a best-effort blob deletion task with retries.
func NewDeleteBlobTask(payload DeleteBlobPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{asynq.MaxRetry(5)}
	return asynq.NewTask(TypeDeleteBlob, b), opts, nil
}

// NewPaymentReminderTask builds a reminder task scheduled for fireAt.
func NewPaymentReminderTask(payload PaymentReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return asynq.NewTask(TypePaymentReminder, b), opts, nil
}

// Enqueuer abstracts task submission so services can be tested without Redis.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) error
}

// AsynqEnqueuer submits tasks through an asynq client.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

func (e *AsynqEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) error {
	_, err := e.Client.Enqueue(task, opts...)
	return err
}
