package main

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/chirper/pkg/helpers"
	"github.com/oksasatya/chirper/pkg/mailer"
)

type outcome int

const (
	outcomeDone outcome = iota
	outcomeRetry
	outcomeDrop
)

type sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

type worker struct {
	Sender sender
	Logger *logrus.Logger
}

// Handle renders and sends one queued email job. Undecodable or unrenderable
// jobs are dropped; send failures are retried.
func (w *worker) Handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.Logger.WithError(err).Warn("bad message")
		return outcomeDrop
	}
	log := w.Logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template})

	helpers.EnsureRecipient(&job)
	subject, text, html, err := helpers.RenderJob(job)
	if err != nil {
		log.WithError(err).Warn("render failed")
		return outcomeDrop
	}

	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := w.Sender.Send(c, job.To, subject, text, html); err != nil {
		log.WithError(err).Warn("send failed")
		return outcomeRetry
	}
	log.Info("email sent")
	return outcomeDone
}

// Run handles deliveries until ctx is done or msgs is closed. Retries are
// requeued; dropped messages are rejected without requeue.
func (w *worker) Run(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var err error
			switch w.Handle(ctx, msg.Body) {
			case outcomeDone:
				err = msg.Ack(false)
			case outcomeRetry:
				err = msg.Nack(false, true)
			default:
				err = msg.Nack(false, false)
			}
			if err != nil {
				w.Logger.WithError(err).Warn("ack failed")
			}
		}
	}
}
