package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeworker/internal/models"
	"tradeworker/internal/store"
)

func TestGroupKey(t *testing.T) {
	assert.Equal(t, "5", BracketKey(5).String())
	assert.Equal(t, "single", StandaloneKey().String())

	id, ok := BracketKey(5).BracketID()
	require.True(t, ok)
	assert.Equal(t, int64(5), id)

	_, ok = StandaloneKey().BracketID()
	assert.False(t, ok)
}

func TestGroupOrders(t *testing.T) {
	orders := []models.OpenOrder{
		{OrderID: 11, OrderListID: listID(5)},
		{OrderID: 12, OrderListID: listID(5)},
		{OrderID: 13, OrderListID: listID(-1)},
	}

	groups := groupOrders(orders)
	require.Len(t, groups, 2)

	assert.Equal(t, "5", groups[0].Key.String())
	require.Len(t, groups[0].Orders, 2)
	assert.Equal(t, int64(11), groups[0].Orders[0].OrderID)
	assert.Equal(t, int64(12), groups[0].Orders[1].OrderID)

	assert.Equal(t, "single", groups[1].Key.String())
	require.Len(t, groups[1].Orders, 1)
	assert.Equal(t, int64(13), groups[1].Orders[0].OrderID)
}

func TestGroupOrdersMissingListID(t *testing.T) {
	orders := []models.OpenOrder{
		{OrderID: 11},
		{OrderID: 12, OrderListID: listID(7)},
		{OrderID: 13, OrderListID: listID(-1)},
	}

	groups := groupOrders(orders)
	require.Len(t, groups, 2)

	// одиночные ордера попадают в одну группу в порядке появления ключей
	assert.Equal(t, "single", groups[0].Key.String())
	require.Len(t, groups[0].Orders, 2)
	assert.Equal(t, int64(11), groups[0].Orders[0].OrderID)
	assert.Equal(t, int64(13), groups[0].Orders[1].OrderID)

	assert.Equal(t, "7", groups[1].Key.String())
}

func TestHighlightByListID(t *testing.T) {
	groups := groupOrders([]models.OpenOrder{
		{OrderID: 11, OrderListID: listID(5)},
		{OrderID: 12, OrderListID: listID(5)},
		{OrderID: 13, OrderListID: listID(9)},
	})

	markHighlights(groups, models.Highlight{ListID: "5"})

	assert.True(t, groups[0].Highlighted)
	assert.False(t, groups[1].Highlighted)
}

func TestHighlightByClientID(t *testing.T) {
	groups := groupOrders([]models.OpenOrder{
		{OrderID: 11, OrderListID: listID(5), ClientOrderID: "leg-a"},
		{OrderID: 12, OrderListID: listID(5), ListClientOrderID: "oco-1"},
		{OrderID: 13, OrderListID: listID(9)},
	})

	// идентификатор списка не совпал, клиентский — совпал
	markHighlights(groups, models.Highlight{ListID: "777", ListClientOrderID: "oco-1"})
	assert.True(t, groups[0].Highlighted)
	assert.False(t, groups[1].Highlighted)

	markHighlights(groups, models.Highlight{ListClientOrderID: "leg-a"})
	assert.True(t, groups[0].Highlighted)
}

func TestHighlightSentinelDoesNotMatchStandalone(t *testing.T) {
	groups := groupOrders([]models.OpenOrder{
		{OrderID: 13, OrderListID: listID(-1)},
	})

	markHighlights(groups, models.Highlight{ListID: "single"})
	assert.False(t, groups[0].Highlighted)
}

func TestLoadGroupsAndHighlights(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.SetHighlight(models.Highlight{ListID: "5", ListClientOrderID: "oco-1"}))

	fake := &fakeBackend{page: models.OpenOrdersPage{
		HasOpenOrders: true,
		Orders: []models.OpenOrder{
			{OrderID: 11, OrderListID: listID(5)},
			{OrderID: 12, OrderListID: listID(5)},
			{OrderID: 13, OrderListID: listID(-1)},
		},
	}}

	r := NewReconciler(fake, st, testLogger())

	groups, err := r.Load(context.Background(), "BTCUSDC", false)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.True(t, groups[0].Highlighted)
	assert.False(t, groups[1].Highlighted)

	// повторная загрузка полностью заменяет группы
	fake.page = models.OpenOrdersPage{
		HasOpenOrders: true,
		Orders:        []models.OpenOrder{{OrderID: 14, OrderListID: listID(9)}},
	}

	groups, err = r.Load(context.Background(), "BTCUSDC", false)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "9", groups[0].Key.String())
	assert.False(t, groups[0].Highlighted)
}

func TestLoadNoOpenOrders(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.SetHighlight(models.Highlight{ListID: "5"}))

	fake := &fakeBackend{page: models.OpenOrdersPage{HasOpenOrders: false}}
	r := NewReconciler(fake, st, testLogger())

	groups, err := r.Load(context.Background(), "BTCUSDC", false)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestLoadFetchError(t *testing.T) {
	fake := &fakeBackend{pageErr: assert.AnError}
	r := NewReconciler(fake, store.NewMemory(), testLogger())

	_, err := r.Load(context.Background(), "BTCUSDC", false)
	assert.Error(t, err)
}

func TestCreatedBracketRoundTrip(t *testing.T) {
	st := store.NewMemory()
	fake := &fakeBackend{bracket: bracketResult(5, "oco-1")}

	w := NewOrderWorkflow(fake, st, testLogger())
	_, err := w.Propose(sellIntent())
	require.NoError(t, err)
	_, err = w.Confirm(context.Background())
	require.NoError(t, err)

	fake.page = models.OpenOrdersPage{
		HasOpenOrders: true,
		Orders: []models.OpenOrder{
			{OrderID: 11, OrderListID: listID(5)},
			{OrderID: 12, OrderListID: listID(5)},
			{OrderID: 13, OrderListID: listID(-1)},
		},
	}

	r := NewReconciler(fake, st, testLogger())
	groups, err := r.Load(context.Background(), "BTCUSDC", false)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "5", groups[0].Key.String())
	assert.True(t, groups[0].Highlighted)
	assert.False(t, groups[1].Highlighted)
}
