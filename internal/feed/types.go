package feed

import (
	"sync"
	"time"

	"tradeworker/internal/logger"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type Status string

const (
	StatusConnecting Status = "CONNECTING"
	StatusOpen       Status = "OPEN"
	StatusClosed     Status = "CLOSED"
	StatusErrored    Status = "ERRORED"
)

type Client struct {
	baseURL     string
	log         *logger.Logger
	dialer      *websocket.Dialer
	dialTimeout time.Duration
}

// Subscription владеет одним соединением. Повторный Subscribe возвращает
// новый экземпляр, события старого соединения на него не попадают.
type Subscription struct {
	symbol string
	log    *logrus.Entry

	mu             sync.Mutex
	status         Status
	lastPrice      float64
	hasPrice       bool
	closeRequested bool
	closed         bool
	conn           *websocket.Conn
	done           chan struct{}
}

func (s *Subscription) Symbol() string {
	return s.symbol
}

func (s *Subscription) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Subscription) LastPrice() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPrice, s.hasPrice
}

// Done закрывается после окончательного освобождения соединения.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}
