package feed

import (
	"strings"
	"time"

	"tradeworker/internal/logger"

	"github.com/gorilla/websocket"
)

func New(baseURL string, log *logger.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		log:         log,
		dialer:      websocket.DefaultDialer,
		dialTimeout: 10 * time.Second,
	}
}

// Subscribe открывает поток miniTicker для одной торговой пары.
// Подключение происходит асинхронно, статус сначала CONNECTING.
func (c *Client) Subscribe(symbol string) *Subscription {
	sub := &Subscription{
		symbol: symbol,
		status: StatusConnecting,
		done:   make(chan struct{}),
		log:    c.log.WithComponent("feed").WithField("symbol", symbol),
	}

	go sub.dial(c.dialer, streamURL(c.baseURL, symbol), c.dialTimeout)

	return sub
}

func streamURL(baseURL, symbol string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.ToLower(symbol) + "@miniTicker"
}

func (s *Subscription) dial(dialer *websocket.Dialer, url string, timeout time.Duration) {
	d := *dialer
	d.HandshakeTimeout = timeout

	conn, _, err := d.Dial(url, nil)
	if err != nil {
		s.mu.Lock()
		s.status = StatusErrored
		s.closed = true
		close(s.done)
		s.mu.Unlock()

		s.log.WithError(err).Warn("Не удалось подключиться к потоку котировок.")
		return
	}

	s.mu.Lock()
	if s.closeRequested {
		// Интерес к подписке пропал во время рукопожатия: закрываем сразу,
		// статус OPEN наружу не показываем.
		s.status = StatusClosed
		s.closed = true
		close(s.done)
		s.mu.Unlock()

		_ = conn.Close()
		s.log.Debug("Подписка отменена до установления соединения.")
		return
	}

	s.conn = conn
	s.status = StatusOpen
	s.mu.Unlock()

	conn.SetReadLimit(2 << 20)
	s.log.Debug("Поток котировок подключён.")

	go s.readLoop(conn)
}

// Disconnect идемпотентен и безопасен в любой фазе соединения.
func (s *Subscription) Disconnect() {
	s.mu.Lock()

	switch {
	case s.closed:
		s.mu.Unlock()
		return
	case s.status == StatusConnecting:
		// Соединение ещё устанавливается: откладываем закрытие до конца
		// рукопожатия, закрывать полуоткрытое соединение нельзя.
		s.closeRequested = true
		s.mu.Unlock()
		return
	default:
		conn := s.conn
		s.status = StatusClosed
		s.closed = true
		close(s.done)
		s.mu.Unlock()

		if conn != nil {
			_ = conn.Close()
		}
	}
}
