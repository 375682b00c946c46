package reminder

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// Payload é o que o worker de lembretes precisa para montar a mensagem.
type Payload struct {
	ReservationID    uint      `json:"reservation_id"`
	BusinessName     string    `json:"business_name"`
	ClientName       string    `json:"client_name"`
	ClientPhone      string    `json:"client_phone"`
	ClientEmail      string    `json:"client_email"`
	ProfessionalName string    `json:"professional_name"`
	ServiceName      string    `json:"service_name"`
	StartTime        time.Time `json:"start_time"`
}

func NewReminderTask(payload Payload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
