package dashboard

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"tradeworker/internal/logger"
	"tradeworker/internal/models"
	"tradeworker/internal/store"
)

// GroupKey — брекет с идентификатором списка либо одиночный ордер.
// Строка "single" существует только на выводе, настоящий идентификатор
// брекета с ней столкнуться не может.
type GroupKey struct {
	bracketID  int64
	standalone bool
}

func BracketKey(id int64) GroupKey {
	return GroupKey{bracketID: id}
}

func StandaloneKey() GroupKey {
	return GroupKey{standalone: true}
}

func (k GroupKey) Standalone() bool {
	return k.standalone
}

func (k GroupKey) BracketID() (int64, bool) {
	if k.standalone {
		return 0, false
	}
	return k.bracketID, true
}

func (k GroupKey) String() string {
	if k.standalone {
		return "single"
	}
	return strconv.FormatInt(k.bracketID, 10)
}

func (k GroupKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type OrderGroup struct {
	Key         GroupKey           `json:"key"`
	Orders      []models.OpenOrder `json:"orders"`
	Highlighted bool               `json:"highlighted"`
}

// Reconciler загружает открытые ордера, раскладывает их по брекетам и
// помечает группу, совпавшую с сохранёнными идентификаторами последней
// созданной заявки.
type Reconciler struct {
	client BackendClient
	store  store.Store
	log    *logrus.Entry
}

func NewReconciler(client BackendClient, st store.Store, log *logger.Logger) *Reconciler {
	return &Reconciler{
		client: client,
		store:  st,
		log:    log.WithComponent("open_orders"),
	}
}

// Load идемпотентен, каждый вызов полностью заменяет прежние группы.
// Сохранённые идентификаторы подсветки никогда не очищаются — они живут
// до следующей успешно созданной заявки.
func (r *Reconciler) Load(ctx context.Context, symbol string, isolated bool) ([]OrderGroup, error) {
	page, err := r.client.OpenOrders(ctx, symbol, isolated)
	if err != nil {
		r.log.WithError(err).WithField("symbol", symbol).Warn("Не удалось загрузить открытые ордера.")
		return nil, err
	}

	if !page.HasOpenOrders {
		return nil, nil
	}

	groups := groupOrders(page.Orders)

	h, ok, err := r.store.Highlight()
	if err != nil {
		r.log.WithError(err).Warn("Не удалось прочитать идентификаторы подсветки.")
		ok = false
	}
	if ok {
		markHighlights(groups, h)
	}

	return groups, nil
}

// groupOrders сохраняет порядок ордеров внутри группы и порядок первого
// появления ключей.
func groupOrders(orders []models.OpenOrder) []OrderGroup {
	var groups []OrderGroup
	index := map[GroupKey]int{}

	for _, ord := range orders {
		key := StandaloneKey()
		if ord.OrderListID != nil && *ord.OrderListID != -1 {
			key = BracketKey(*ord.OrderListID)
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, OrderGroup{Key: key})
		}
		groups[i].Orders = append(groups[i].Orders, ord)
	}

	return groups
}

func markHighlights(groups []OrderGroup, h models.Highlight) {
	for i := range groups {
		groups[i].Highlighted = isHighlighted(groups[i], h)
	}
}

// isHighlighted сверяет и идентификатор списка, и клиентский идентификатор:
// при создании и в открытых ордерах заполнено не обязательно одно и то же
// поле.
func isHighlighted(g OrderGroup, h models.Highlight) bool {
	if h.ListID != "" {
		if id, ok := g.Key.BracketID(); ok && strconv.FormatInt(id, 10) == h.ListID {
			return true
		}
	}

	if h.ListClientOrderID != "" {
		for _, ord := range g.Orders {
			if ord.ClientOrderID == h.ListClientOrderID || ord.ListClientOrderID == h.ListClientOrderID {
				return true
			}
		}
	}

	return false
}
