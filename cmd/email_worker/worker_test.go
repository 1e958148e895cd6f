package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/chirper/pkg/mailer"
	mailtpl "github.com/oksasatya/chirper/pkg/mailer/templates"
)

type fakeSender struct {
	err  error
	sent []string
	html string
}

func (f *fakeSender) Send(_ context.Context, to, subject, _, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+"|"+subject)
	f.html = html
	return nil
}

func newWorker(s sender) *worker {
	logger, _ := test.NewNullLogger()
	return &worker{Sender: s, Logger: logger}
}

func jobBody(t *testing.T, job mailer.EmailJob) []byte {
	t.Helper()
	b, err := json.Marshal(job)
	require.NoError(t, err)
	return b
}

func TestWorker_SendsNewChirpEmail(t *testing.T) {
	s := &fakeSender{}
	data := mailtpl.NewChirpData(nil, "Bob", "bob@example.com", "Alice", 7, "hello world")
	body := jobBody(t, mailer.EmailJob{To: "bob@example.com", Template: mailtpl.NewChirp, Data: data})

	require.Equal(t, outcomeDone, newWorker(s).Handle(context.Background(), body))
	require.Len(t, s.sent, 1)
	require.Contains(t, s.sent[0], "bob@example.com|")
	require.Contains(t, s.html, "hello world")
}

func TestWorker_DropsBadPayloads(t *testing.T) {
	w := newWorker(&fakeSender{})
	require.Equal(t, outcomeDrop, w.Handle(context.Background(), []byte("{")))
	require.Equal(t, outcomeDrop, w.Handle(context.Background(), jobBody(t, mailer.EmailJob{To: "x@example.com"})))
	require.Equal(t, outcomeDrop, w.Handle(context.Background(), jobBody(t, mailer.EmailJob{To: "x@example.com", Template: "nope"})))
}

func TestWorker_RetriesSendFailure(t *testing.T) {
	w := newWorker(&fakeSender{err: errors.New("mailgun 503")})
	body := jobBody(t, mailer.EmailJob{To: "x@example.com", Subject: "hi", Text: "there"})
	require.Equal(t, outcomeRetry, w.Handle(context.Background(), body))
}

type ackLog struct{ acks, requeued, dropped []uint64 }

func (a *ackLog) Ack(tag uint64, _ bool) error { a.acks = append(a.acks, tag); return nil }
func (a *ackLog) Nack(tag uint64, _ bool, requeue bool) error {
	if requeue {
		a.requeued = append(a.requeued, tag)
	} else {
		a.dropped = append(a.dropped, tag)
	}
	return nil
}
func (a *ackLog) Reject(tag uint64, requeue bool) error { return a.Nack(tag, false, requeue) }

func TestWorker_RunAcksByOutcome(t *testing.T) {
	acks := &ackLog{}
	msgs := make(chan amqp.Delivery, 3)
	ok := jobBody(t, mailer.EmailJob{To: "x@example.com", Subject: "hi", Text: "there"})
	msgs <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 1, Body: ok}
	msgs <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 2, Body: []byte("{")}
	close(msgs)

	newWorker(&fakeSender{}).Run(context.Background(), msgs)
	require.Equal(t, []uint64{1}, acks.acks)
	require.Equal(t, []uint64{2}, acks.dropped)
	require.Empty(t, acks.requeued)

	acks = &ackLog{}
	msgs = make(chan amqp.Delivery, 1)
	msgs <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 3, Body: ok}
	close(msgs)
	newWorker(&fakeSender{err: errors.New("down")}).Run(context.Background(), msgs)
	require.Equal(t, []uint64{3}, acks.requeued)
}
