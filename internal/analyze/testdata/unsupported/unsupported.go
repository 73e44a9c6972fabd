// Package unsupported declares records the extractor rejects or trims.
package unsupported

type Status string

type Inner struct {
	N uint64 `json:"n"`
}

type Outer struct {
	In  Inner   `json:"in"`
	Ins []Inner `json:"ins"`
}

type Wrapper struct {
	Inner
	Name string `json:"name"`
}

type Bad struct {
	Count  int `json:"count"`
	Lookup map[string]uint64
	Ptr    *Inner
	State  Status
	Fixed  [2]uint64
	OK     bool
}

type Tagged struct {
	ID     uint64 `json:"id,omitempty"`
	Skip   string `json:"-"`
	Dash   string `json:"-,"`
	hidden bool
	Plain  bool
}

type Box[T any] struct {
	V T
}

type notExported struct {
	V uint64
}
