package rpc

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sourcegraph/jsonrpc2"
	"src.pless.dev/pkg/store/storedefs"
	"src.pless.dev/pkg/variant"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

// Server holds the state of the service.
type Server struct {
	provider variant.FormatProvider
	store    storedefs.Store
}

// NewServer returns a Server that formats and converts with p by default. The
// props methods are only available when st is not nil.
func NewServer(p variant.FormatProvider, st storedefs.Store) *Server {
	return &Server{p, st}
}

// Handler returns the JSON-RPC handler of s.
func (s *Server) Handler() jsonrpc2.Handler {
	methods := map[string]method{
		"variant/convert": s.convert,
		"variant/compare": s.compare,
		"variant/equal":   s.equal,
		"variant/hash":    s.hash,
		"variant/format":  s.format,
	}
	if s.store != nil {
		methods["props/get"] = s.propsGet
		methods["props/set"] = s.propsSet
		methods["props/list"] = s.propsList
	}
	return routingHandler(methods)
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			logger.Println("unknown method", req.Method)
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		result, err := fn(ctx, conn, params)
		if err != nil {
			logger.Printf("%s: %v", req.Method, err)
		}
		return result, err
	})
}

// Value is the wire form of a variant. Text is in the variant.Text form; it
// is omitted for Empty and DBNull, and null for the null String.
type Value struct {
	Type string  `json:"type"`
	Text *string `json:"text,omitempty"`
}

// ToValue returns the wire form of v.
func ToValue(v variant.Variant) (Value, error) {
	value := Value{Type: v.Tag().String()}
	if v.IsEmpty() || v.IsDBNull() || (v.Tag() == variant.String && v.IsNull()) {
		return value, nil
	}
	text, err := v.Text()
	if err != nil {
		return Value{}, err
	}
	value.Text = &text
	return value, nil
}

// Variant parses the wire form.
func (value Value) Variant() (variant.Variant, error) {
	tag, err := variant.ParseTag(value.Type)
	if err != nil {
		return variant.Variant{}, err
	}
	if value.Text == nil {
		if tag == variant.String {
			return variant.NullString(), nil
		}
		return variant.ParseText(tag, "")
	}
	return variant.ParseText(tag, *value.Text)
}

// failure reports an error about the values of a request.
func failure(err error) error {
	return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
}

// storeFailure reports an error from the property store. Missing bags and
// properties and values that cannot be stored are the fault of the request;
// anything else is internal.
func storeFailure(err error) error {
	switch {
	case errors.Is(err, storedefs.ErrNoBag), errors.Is(err, storedefs.ErrNoProp),
		errors.Is(err, variant.ErrInvalidCast):
		return failure(err)
	}
	return &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: err.Error()}
}

func (s *Server) providerFor(culture string) (variant.FormatProvider, error) {
	if culture == "" {
		return s.provider, nil
	}
	c, err := variant.CultureByName(culture)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func decode(rawParams json.RawMessage, params any) error {
	if len(rawParams) == 0 || json.Unmarshal(rawParams, params) != nil {
		return errInvalidParams
	}
	return nil
}

// Handler implementations. These are all called synchronously.

type convertParams struct {
	Value   Value  `json:"value"`
	To      string `json:"to"`
	Culture string `json:"culture"`
}

func (s *Server) convert(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params convertParams
	if err := decode(rawParams, &params); err != nil {
		return nil, err
	}
	v, err := params.Value.Variant()
	if err != nil {
		return nil, failure(err)
	}
	to, err := variant.ParseTag(params.To)
	if err != nil {
		return nil, failure(err)
	}
	p, err := s.providerFor(params.Culture)
	if err != nil {
		return nil, failure(err)
	}
	converted, err := v.ConvertTo(to, p)
	if err != nil {
		return nil, failure(err)
	}
	value, err := ToValue(converted)
	if err != nil {
		return nil, failure(err)
	}
	return value, nil
}

type pairParams struct {
	A Value `json:"a"`
	B Value `json:"b"`
}

func (params pairParams) variants() (a, b variant.Variant, err error) {
	if a, err = params.A.Variant(); err != nil {
		return a, b, failure(err)
	}
	if b, err = params.B.Variant(); err != nil {
		return a, b, failure(err)
	}
	return a, b, nil
}

func (s *Server) compare(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params pairParams
	if err := decode(rawParams, &params); err != nil {
		return nil, err
	}
	a, b, err := params.variants()
	if err != nil {
		return nil, err
	}
	c, err := variant.Compare(a, b)
	if err != nil {
		return nil, failure(err)
	}
	return sign(c), nil
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

func (s *Server) equal(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params pairParams
	if err := decode(rawParams, &params); err != nil {
		return nil, err
	}
	a, b, err := params.variants()
	if err != nil {
		return nil, err
	}
	return variant.Equal(a, b), nil
}

type valueParams struct {
	Value Value `json:"value"`
}

func (s *Server) hash(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params valueParams
	if err := decode(rawParams, &params); err != nil {
		return nil, err
	}
	v, err := params.Value.Variant()
	if err != nil {
		return nil, failure(err)
	}
	return v.Hash(), nil
}

type formatParams struct {
	Value   Value  `json:"value"`
	Format  string `json:"format"`
	Culture string `json:"culture"`
}

func (s *Server) format(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params formatParams
	if err := decode(rawParams, &params); err != nil {
		return nil, err
	}
	v, err := params.Value.Variant()
	if err != nil {
		return nil, failure(err)
	}
	p, err := s.providerFor(params.Culture)
	if err != nil {
		return nil, failure(err)
	}
	text, err := v.FormatStringWith(params.Format, p)
	if err != nil {
		return nil, failure(err)
	}
	return text, nil
}

type propParams struct {
	Bag   string `json:"bag"`
	Name  string `json:"name"`
	Value *Value `json:"value"`
}

func (s *Server) propsGet(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params propParams
	if err := decode(rawParams, &params); err != nil {
		return nil, err
	}
	v, err := s.store.Get(params.Bag, params.Name)
	if err != nil {
		return nil, storeFailure(err)
	}
	value, err := ToValue(v)
	if err != nil {
		return nil, failure(err)
	}
	return value, nil
}

func (s *Server) propsSet(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params propParams
	if err := decode(rawParams, &params); err != nil {
		return nil, err
	}
	if params.Value == nil {
		return nil, errInvalidParams
	}
	v, err := params.Value.Variant()
	if err != nil {
		return nil, failure(err)
	}
	if err := s.store.Put(params.Bag, params.Name, v); err != nil {
		return nil, storeFailure(err)
	}
	return nil, nil
}

// Prop is an entry in the result of props/list.
type Prop struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

func (s *Server) propsList(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params propParams
	if err := decode(rawParams, &params); err != nil {
		return nil, err
	}
	b, err := s.store.Load(params.Bag)
	if err != nil {
		return nil, storeFailure(err)
	}
	list := []Prop{}
	for _, name := range b.Names() {
		v, _ := b.Get(name)
		value, err := ToValue(v)
		if err != nil {
			return nil, failure(err)
		}
		list = append(list, Prop{name, value})
	}
	return list, nil
}
