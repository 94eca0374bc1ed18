package client

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-catalog/internal/adapter"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/mock"
	"github.com/MKhiriev/go-catalog/models"
)

func newTestApp(t *testing.T) (*App, *mock.MockCatalogClient, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalog := mock.NewMockCatalogClient(ctrl)
	var out bytes.Buffer

	app, err := NewApp(catalog, &out, logger.Nop())
	require.NoError(t, err)
	return app, catalog, &out
}

func TestNewApp_RequiresCatalog(t *testing.T) {
	_, err := NewApp(nil, &bytes.Buffer{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_Commands(t *testing.T) {
	ctx := context.Background()

	t.Run("no command", func(t *testing.T) {
		app, _, out := newTestApp(t)
		assert.ErrorIs(t, app.Run(ctx, nil), ErrMissingCommand)
		assert.Contains(t, out.String(), "usage:")
	})

	t.Run("unknown command", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		assert.ErrorIs(t, app.Run(ctx, []string{"register"}), ErrUnknownCommand)
	})

	t.Run("help", func(t *testing.T) {
		app, _, out := newTestApp(t)
		require.NoError(t, app.Run(ctx, []string{"help"}))
		assert.Contains(t, out.String(), "report pedidos|estoque")
	})

	t.Run("login prints the token", func(t *testing.T) {
		app, catalog, out := newTestApp(t)
		catalog.EXPECT().
			Login(ctx, models.User{Login: "alice", Password: "secret"}).
			Return(models.Token{SignedString: "signed", UserID: 7, Login: "alice"}, nil)

		require.NoError(t, app.Run(ctx, []string{"login", "-login", "alice", "-senha", "secret"}))
		assert.Equal(t, "signed\n", out.String())
	})

	t.Run("login failure", func(t *testing.T) {
		app, catalog, out := newTestApp(t)
		catalog.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{}, adapter.ErrUnauthorized)

		assert.ErrorIs(t, app.Run(ctx, []string{"login", "-login", "alice"}), adapter.ErrUnauthorized)
		assert.Empty(t, out.String())
	})

	t.Run("list", func(t *testing.T) {
		app, catalog, out := newTestApp(t)
		catalog.EXPECT().ListProducts(ctx, "").Return([]models.Row{{"nome_produto": "Widget"}}, nil)

		require.NoError(t, app.Run(ctx, []string{"list"}))

		var rows []models.Row
		require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
		assert.Equal(t, []models.Row{{"nome_produto": "Widget"}}, rows)
	})

	t.Run("list by category", func(t *testing.T) {
		app, catalog, _ := newTestApp(t)
		catalog.EXPECT().ListProducts(ctx, "3").Return(nil, nil)

		require.NoError(t, app.Run(ctx, []string{"list", "-categoria", "3"}))
	})

	t.Run("unknown flag", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		assert.Error(t, app.Run(ctx, []string{"list", "-cat", "3"}))
	})
}

func TestApp_Run_Create(t *testing.T) {
	ctx := context.Background()
	app, catalog, out := newTestApp(t)

	catalog.EXPECT().
		CreateProduct(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Product) (string, error) {
			assert.Equal(t, "Widget", p.Name)
			assert.Equal(t, int64(5), p.Quantity)
			assert.Equal(t, int64(2), p.CategoryID)
			return "Produto cadastrado com sucesso! (Trigger acionado)", nil
		})

	require.NoError(t, app.Run(ctx, []string{"create", "-nome", "Widget", "-qtde", "5", "-categoria", "2"}))
	assert.Equal(t, "Produto cadastrado com sucesso! (Trigger acionado)\n", out.String())
}

func TestApp_Run_UpdateSendsOnlyGivenFields(t *testing.T) {
	ctx := context.Background()
	app, catalog, _ := newTestApp(t)

	catalog.EXPECT().
		UpdateProduct(ctx, "9", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p models.Product) (string, error) {
			assert.Nil(t, p.Name)
			assert.Nil(t, p.CategoryID)
			assert.Equal(t, int64(0), p.Quantity)
			return "Produto atualizado com sucesso!", nil
		})

	require.NoError(t, app.Run(ctx, []string{"update", "-id", "9", "-qtde", "0"}))
}

func TestApp_Run_IDIsRequired(t *testing.T) {
	ctx := context.Background()

	for _, command := range []string{"update", "delete"} {
		t.Run(command, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			assert.ErrorIs(t, app.Run(ctx, []string{command}), ErrMissingArgument)
		})
	}
}

func TestApp_Run_Delete(t *testing.T) {
	ctx := context.Background()
	app, catalog, out := newTestApp(t)

	catalog.EXPECT().DeleteProduct(ctx, "4").Return("Produto e seus pedidos foram excluídos com sucesso!", nil)

	require.NoError(t, app.Run(ctx, []string{"delete", "-id", "4"}))
	assert.Equal(t, "Produto e seus pedidos foram excluídos com sucesso!\n", out.String())
}

func TestApp_Run_Report(t *testing.T) {
	ctx := context.Background()

	t.Run("pedidos", func(t *testing.T) {
		app, catalog, out := newTestApp(t)
		catalog.EXPECT().OrdersReport(ctx).Return([]models.Row{{"id_pedido": float64(1)}}, nil)

		require.NoError(t, app.Run(ctx, []string{"report", "pedidos"}))
		assert.JSONEq(t, `[{"id_pedido":1}]`, out.String())
	})

	t.Run("estoque", func(t *testing.T) {
		app, catalog, out := newTestApp(t)
		catalog.EXPECT().CriticalStockReport(ctx).Return([]models.Row{}, nil)

		require.NoError(t, app.Run(ctx, []string{"report", "estoque"}))
		assert.JSONEq(t, `[]`, out.String())
	})

	t.Run("failure", func(t *testing.T) {
		app, catalog, _ := newTestApp(t)
		catalog.EXPECT().CriticalStockReport(ctx).Return(nil, adapter.ErrInternalServerError)

		assert.ErrorIs(t, app.Run(ctx, []string{"report", "estoque"}), adapter.ErrInternalServerError)
	})

	t.Run("missing name", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		assert.ErrorIs(t, app.Run(ctx, []string{"report"}), ErrMissingArgument)
	})

	t.Run("unknown name", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		assert.ErrorIs(t, app.Run(ctx, []string{"report", "vendas"}), ErrUnknownCommand)
	})
}
