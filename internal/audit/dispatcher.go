package audit

import (
	"context"
	"log"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher grava eventos de auditoria fora do caminho principal,
// através de um worker com fila em memória.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(
			context.Background(),
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca travar o fluxo principal)
		log.Println("audit queue full, dropping event")
	}
}

// Close drena a fila pendente e encerra o worker. Deve ser chamado
// antes do processo terminar, senão eventos enfileirados se perdem.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
