package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"sync"
	"time"

	"restaurant-api/internal/pkg/config"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	ErrPublisherClosed = errs.New("publisher closed")
	errDial            = errs.New("failed to connect to broker")
)

const defaultDialTimeout = 5 * time.Second

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Dialer opens a channel on a fresh connection. The returned closer releases
// both. Implementations should give up once ctx is done.
type Dialer func(ctx context.Context, url string) (Channel, func() error, error)

// AMQPPublisher sends booking events to a durable queue on the default
// exchange. The connection is opened on first use and reopened after a failure.
// A dial runs in the background under its own timeout; callers wait for it
// only as long as their context allows.
type AMQPPublisher struct {
	url         string
	queue       string
	dialTimeout time.Duration
	dial        Dialer
	now         func() time.Time

	mu      sync.Mutex
	ch      Channel
	closeFn func() error
	dialing *dialAttempt
	closed  bool
}

type dialAttempt struct {
	done chan struct{}
	err  error
}

func NewAMQPPublisher(cfg config.AMQPConfig) *AMQPPublisher {
	return NewAMQPPublisherWithDialer(cfg, DialAMQP)
}

func NewAMQPPublisherWithDialer(cfg config.AMQPConfig, dial Dialer) *AMQPPublisher {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	return &AMQPPublisher{
		url:         cfg.URL,
		queue:       cfg.BookingQueue,
		dialTimeout: timeout,
		dial:        dial,
		now:         time.Now,
	}
}

// DialAMQP bounds both the TCP connect and the AMQP handshake by ctx.
func DialAMQP(ctx context.Context, url string) (Channel, func() error, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial: func(network, addr string) (net.Conn, error) {
			var d net.Dialer
			c, err := d.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			// cleared by the client once the handshake completes
			if deadline, ok := ctx.Deadline(); ok {
				if err := c.SetDeadline(deadline); err != nil {
					_ = c.Close()
					return nil, err
				}
			}
			return c, nil
		},
	})
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return ch, func() error {
		_ = ch.Close()
		return conn.Close()
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event commands.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal booking event")
	}

	ch, err := p.channel(ctx)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Type:         string(event.Type),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.reset(ch)
		return errs.Wrapf(err, "publish %s", event.Type)
	}
	return nil
}

// channel returns the open channel, joining or starting a dial when there is
// none. It never holds mu while the dial is in flight.
func (p *AMQPPublisher) channel(ctx context.Context) (Channel, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPublisherClosed
	}
	if p.ch != nil {
		ch := p.ch
		p.mu.Unlock()
		return ch, nil
	}
	attempt := p.dialing
	if attempt == nil {
		attempt = &dialAttempt{done: make(chan struct{})}
		p.dialing = attempt
		go p.connect(attempt)
	}
	p.mu.Unlock()

	select {
	case <-attempt.done:
	case <-ctx.Done():
		return nil, errs.Mark(errs.Wrap(ctx.Err(), "waiting for broker connection"), errDial)
	}
	if attempt.err != nil {
		return nil, attempt.err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return nil, ErrPublisherClosed
	}
	return p.ch, nil
}

func (p *AMQPPublisher) connect(attempt *dialAttempt) {
	ctx, cancel := context.WithTimeout(context.Background(), p.dialTimeout)
	defer cancel()

	ch, closeFn, err := p.dial(ctx, p.url)
	if err != nil {
		err = errs.Mark(err, errDial)
	} else if _, declErr := ch.QueueDeclare(p.queue, true, false, false, false, nil); declErr != nil {
		_ = closeFn()
		err = errs.Wrapf(declErr, "declare queue %s", p.queue)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	defer close(attempt.done)

	p.dialing = nil
	switch {
	case err != nil:
		attempt.err = err
		slog.Warn("broker connection failed", "error", err.Error())
	case p.closed:
		_ = closeFn()
		attempt.err = ErrPublisherClosed
	default:
		p.ch = ch
		p.closeFn = closeFn
	}
}

// reset drops ch if it is still the current channel.
func (p *AMQPPublisher) reset(ch Channel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != ch {
		return
	}
	p.release()
}

// release must be called with mu held.
func (p *AMQPPublisher) release() {
	if p.closeFn != nil {
		if err := p.closeFn(); err != nil {
			slog.Debug("closing broker connection", "error", err.Error())
		}
	}
	p.ch = nil
	p.closeFn = nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.release()
	return nil
}

// NopPublisher drops every event; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, commands.BookingEvent) error { return nil }
