package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"tradeworker/internal/logger"
	"tradeworker/internal/models"
	"tradeworker/internal/store"
)

var (
	ErrBusy     = errors.New("Предыдущая заявка ещё отправляется.")
	ErrNoIntent = errors.New("Нет подготовленной заявки.")
)

const (
	DefaultSymbol   = "BTCUSDC"
	DefaultLeverage = 20
)

// OrderWorkflow ведёт заявку в два шага: Propose готовит её к просмотру,
// Confirm отправляет. Случайная отправка живой сделки исключена.
type OrderWorkflow struct {
	client BackendClient
	store  store.Store
	log    *logrus.Entry

	mu      sync.Mutex
	pending *models.BracketIntent
	busy    bool
	result  *models.BracketResult
	lastErr error
}

func NewOrderWorkflow(client BackendClient, st store.Store, log *logger.Logger) *OrderWorkflow {
	return &OrderWorkflow{
		client: client,
		store:  st,
		log:    log.WithComponent("orders"),
	}
}

// Propose подставляет умолчания и откладывает заявку до подтверждения.
// Сетевых вызовов нет.
func (w *OrderWorkflow) Propose(intent models.BracketIntent) (models.BracketIntent, error) {
	if intent.Side != models.OrderSideBuy && intent.Side != models.OrderSideSell {
		return models.BracketIntent{}, fmt.Errorf("Неизвестная сторона заявки: %q", intent.Side)
	}
	if intent.Symbol == "" {
		intent.Symbol = DefaultSymbol
	}
	if intent.Leverage == 0 {
		intent.Leverage = DefaultLeverage
	}

	w.mu.Lock()
	w.pending = &intent
	w.mu.Unlock()

	return intent, nil
}

func (w *OrderWorkflow) Pending() *models.BracketIntent {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return nil
	}
	intent := *w.pending
	return &intent
}

// Confirm отправляет отложенную заявку. Пока отправка не завершилась,
// повторный Confirm отклоняется без второго сетевого вызова.
func (w *OrderWorkflow) Confirm(ctx context.Context) (*models.BracketResult, error) {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return nil, ErrBusy
	}
	if w.pending == nil {
		w.mu.Unlock()
		return nil, ErrNoIntent
	}
	intent := *w.pending
	w.busy = true
	w.mu.Unlock()

	result, err := w.client.CreateBracket(ctx, intent)

	w.mu.Lock()
	w.busy = false
	if err != nil {
		w.lastErr = err
		w.mu.Unlock()

		w.log.WithError(err).WithField("symbol", intent.Symbol).Warn("Заявка отклонена.")
		return nil, err
	}
	w.lastErr = nil
	w.result = result
	w.mu.Unlock()

	w.log.WithFields(logrus.Fields{
		"symbol": result.Symbol,
		"side":   intent.Side,
		"ref":    result.ReferencePrice,
		"tp":     result.TakeProfitPrice,
		"sl":     result.StopLossPrice,
	}).Info("Заявка создана.")

	w.remember(result)

	return result, nil
}

func (w *OrderWorkflow) Result() *models.BracketResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}

func (w *OrderWorkflow) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// remember сохраняет идентификаторы OCO-ордера для подсветки при
// следующей загрузке открытых ордеров. Оба поля пишутся вместе.
func (w *OrderWorkflow) remember(result *models.BracketResult) {
	if result.OCOOrder == nil {
		return
	}

	h := models.Highlight{
		ListID:            strconv.FormatInt(result.OCOOrder.OrderID, 10),
		ListClientOrderID: result.OCOOrder.ClientOrderID,
	}

	if err := w.store.SetHighlight(h); err != nil {
		w.log.WithError(err).Warn("Не удалось сохранить идентификаторы брекета.")
		return
	}

	w.log.WithFields(logrus.Fields{
		"list_id":              h.ListID,
		"list_client_order_id": h.ListClientOrderID,
	}).Debug("Идентификаторы брекета сохранены.")
}
