package reminder

import (
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Antecedência padrão do lembrete em relação ao horário da reserva.
const defaultLeadTime = 2 * time.Hour

// Enqueuer agenda lembretes após o commit da reserva. Ele roda fora da
// transação de agendamento: falha aqui nunca desfaz a reserva.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer retorna nil quando não há Redis configurado — os
// chamadores tratam nil como "lembretes desligados".
func NewEnqueuer(redisAddr string) *Enqueuer {
	if redisAddr == "" {
		return nil
	}

	return &Enqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

func (e *Enqueuer) Schedule(payload Payload) {
	if e == nil {
		return
	}

	fireAt := payload.StartTime.Add(-defaultLeadTime)
	if fireAt.Before(time.Now()) {
		return
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		zap.L().Warn("failed to build reminder task", zap.Error(err))
		return
	}

	if _, err := e.client.Enqueue(task, opts...); err != nil {
		zap.L().Warn("failed to enqueue reminder",
			zap.Uint("reservation_id", payload.ReservationID),
			zap.Error(err))
	}
}

func (e *Enqueuer) Close() error {
	if e == nil {
		return nil
	}
	return e.client.Close()
}
