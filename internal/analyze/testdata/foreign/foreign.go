// Package foreign nests records declared in another package.
package foreign

import (
	"strictjson-generator/examples/accounts"
	"strictjson-generator/jsonrt"
)

type Order struct {
	Ship     accounts.Address   `json:"ship"`
	Sessions []accounts.Session `json:"sessions"`
	Key      jsonrt.Felt252     `json:"key"`
}
