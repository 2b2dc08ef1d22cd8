package feed

import (
	"math"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
)

func (s *Subscription) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.finish(err)
			_ = conn.Close()
			return
		}

		s.handleMessage(data)
	}
}

// handleMessage разбирает miniTicker: поле c — последняя цена.
// Непригодные сообщения отбрасываются без изменения состояния.
func (s *Subscription) handleMessage(data []byte) {
	last := gjson.GetBytes(data, "c")
	if !last.Exists() {
		s.log.Warn("В сообщении miniTicker нет поля последней цены.")
		return
	}

	price, err := strconv.ParseFloat(last.String(), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		s.log.WithField("raw", last.String()).Warn("Не удалось разобрать последнюю цену miniTicker.")
		return
	}

	s.mu.Lock()
	if !s.closed {
		s.lastPrice = price
		s.hasPrice = true
	}
	s.mu.Unlock()
}

func (s *Subscription) finish(err error) {
	s.mu.Lock()
	if s.closed {
		// Закрытие инициировано через Disconnect, статус уже выставлен.
		s.mu.Unlock()
		return
	}

	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		s.status = StatusClosed
	} else {
		s.status = StatusErrored
	}
	st := s.status
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	if st == StatusClosed {
		s.log.Info("Поток котировок закрыт со стороны сервера.")
	} else {
		s.log.WithError(err).Warn("Ошибка чтения потока котировок.")
	}
}
