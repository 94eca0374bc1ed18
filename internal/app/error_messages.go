// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// catalog server handlers and middleware.
//
// All Msg* constants are client-facing message strings written into HTTP
// response bodies. The API speaks Portuguese, so they are kept verbatim.
package app

// Error messages, sent as {"erro": ...}.
const (
	// MsgInvalidLoginPassword is returned when no account matches the
	// supplied login and password.
	MsgInvalidLoginPassword = "Login ou senha inválidos"

	// MsgTokenNotProvided is returned when a protected route is called
	// without an "Authorization: Bearer <token>" header.
	MsgTokenNotProvided = "Acesso negado. Token não fornecido."

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token cannot be
	// verified or has expired.
	MsgTokenIsExpiredOrInvalid = "Token inválido ou expirado."

	// MsgIncompleteData is returned when a product is created without a
	// name, a quantity or a category.
	MsgIncompleteData = "Dados incompletos"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "JSON inválido"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Recurso não encontrado"
)

// Success messages, sent as {"mensagem": ...}.
const (
	MsgProductCreated = "Produto cadastrado com sucesso! (Trigger acionado)"
	MsgProductUpdated = "Produto atualizado com sucesso!"
	MsgProductDeleted = "Produto e seus pedidos foram excluídos com sucesso!"
)
