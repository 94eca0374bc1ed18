package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Product is the mutable part of a "Produto" row as received from clients.
//
// Fields keep the JSON value the client sent: a string, a json.Number, a
// bool, or nil for an absent key or null. Values are handed to the database
// unchanged, which is the one to reject mismatched types. Absent fields are
// written as NULL on update.
type Product struct {
	// Name maps to "nome_produto".
	Name any `json:"nome"`

	// Quantity maps to "qtde_produto".
	Quantity any `json:"qtde"`

	// CategoryID maps to "id_categoria". The category is not checked for
	// existence before it is written.
	CategoryID any `json:"id_categoria"`
}

// UnmarshalJSON implements [json.Unmarshaler]. Numbers are kept as
// json.Number so that no precision is lost before they reach the database.
func (p *Product) UnmarshalJSON(b []byte) error {
	type plain Product

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var decoded plain
	if err := dec.Decode(&decoded); err != nil {
		return err
	}

	*p = Product(decoded)
	return nil
}

// IsComplete reports whether every field carries a truthy value.
// nil, "", 0 and false count as missing; "0", objects and arrays do not.
func (p Product) IsComplete() bool {
	return isPresent(p.Name) && isPresent(p.Quantity) && isPresent(p.CategoryID)
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "Produto"
}

func isPresent(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case bool:
		return value
	case json.Number:
		f, err := value.Float64()
		return err != nil || f != 0
	case float64:
		return value != 0
	case int:
		return value != 0
	case int64:
		return value != 0
	default:
		return true
	}
}

// DBValue converts a field to a database/sql argument. Integral numbers
// become int64, other numbers float64. Strings, bools and nil pass through;
// anything else is left for the driver to reject.
func DBValue(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}

	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
