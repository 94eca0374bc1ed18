// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog/models"
)

// Schema objects owned by the database.
const (
	tableUser    = "Usuario"
	tableProduct = "Produto"
	tableOrder   = "Pedido"

	viewOrdersReport        = "v_relatorio_pedidos"
	viewCriticalStockReport = "v_estoque_critico"

	routineSearchByCategory = "sp_buscar_produtos_categoria"
)

const (
	columnUserID       = "id_usuario"
	columnLogin        = "login"
	columnPassword     = "senha"
	columnProductID    = "cod_produto"
	columnProductName  = "nome_produto"
	columnProductQty   = "qtde_produto"
	columnProductCatID = "id_categoria"
)

func buildFindUserByCredentialsQuery(user models.User) sq.SelectBuilder {
	return sq.Select(columnUserID, columnLogin).
		From(tableUser).
		Where(sq.Eq{
			columnLogin:    user.Login,
			columnPassword: user.Password,
		})
}

func buildSelectAllQuery(from string) sq.SelectBuilder {
	return sq.Select("*").From(from)
}

func buildInsertProductQuery(product models.Product) sq.InsertBuilder {
	return sq.Insert(tableProduct).
		Columns(columnProductName, columnProductQty, columnProductCatID).
		Values(models.DBValue(product.Name), models.DBValue(product.Quantity), models.DBValue(product.CategoryID))
}

// buildUpdateProductQuery sets every mutable column. Absent fields are
// written as NULL.
func buildUpdateProductQuery(id string, product models.Product) sq.UpdateBuilder {
	return sq.Update(tableProduct).
		Set(columnProductName, models.DBValue(product.Name)).
		Set(columnProductQty, models.DBValue(product.Quantity)).
		Set(columnProductCatID, models.DBValue(product.CategoryID)).
		Where(sq.Eq{columnProductID: id})
}

func buildDeleteByProductQuery(table, id string) sq.DeleteBuilder {
	return sq.Delete(table).Where(sq.Eq{columnProductID: id})
}
