package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/kevin-chtw/tw_riichi/hand"
	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/kevin-chtw/tw_riichi/storage"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Remote 听牌计算服务
type Remote struct {
	component.Base
	results  storage.Results // nil 时不缓存
	handlers map[string]func(context.Context, proto.Message) (proto.Message, error)
}

// NewRemote creates the remote with its Any dispatch table. Waits results are
// cached in results when it is not nil.
func NewRemote(results storage.Results) *Remote {
	r := &Remote{
		results:  results,
		handlers: make(map[string]func(context.Context, proto.Message) (proto.Message, error)),
	}
	r.handlers[utils.TypeUrl(&wrapperspb.StringValue{})] = r.handleWaits
	r.handlers[utils.TypeUrl(&structpb.ListValue{})] = r.handleDora
	return r
}

// Message unpacks req and routes it by type URL: a StringValue hand goes to
// Waits, a ListValue of indicators goes to Dora.
func (r *Remote) Message(ctx context.Context, req *anypb.Any) (ack *anypb.Any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.Errorf("panic recovered %s\n %s", rec, string(debug.Stack()))
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()
	if req == nil {
		return nil, errors.New("nil request")
	}
	logger.Log.Debugf("remote message %s", req.GetTypeUrl())

	handler, ok := r.handlers[req.GetTypeUrl()]
	if !ok {
		return nil, fmt.Errorf("invalid request type %s", req.GetTypeUrl())
	}
	msg, err := utils.FromAny(req)
	if err != nil {
		return nil, err
	}
	rsp, err := handler(ctx, msg)
	if err != nil {
		return nil, err
	}
	return utils.ToAny(rsp)
}

// Waits parses a hand in compact notation and returns every tenpai arrangement
// of it together with the union of the waiting values.
func (r *Remote) Waits(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	tiles, err := mahjong.ParseHand(req.GetValue())
	if err != nil {
		return nil, err
	}
	name := mahjong.TilesName(tiles)
	if cached := r.cached(ctx, name); cached != nil {
		return cached, nil
	}

	arrangements := hand.FindWaits(tiles)
	logger.Log.Debugf("hand %s: %d arrangements", name, len(arrangements))

	list := make([]any, len(arrangements))
	for i, a := range arrangements {
		list[i] = arrangementValue(a)
	}
	rsp, err := structpb.NewStruct(map[string]any{
		"hand":         name,
		"arrangements": list,
		"waits":        valueNames(hand.WaitingValues(arrangements)),
	})
	if err != nil {
		return nil, err
	}
	r.store(ctx, name, rsp)
	return rsp, nil
}

func (r *Remote) cached(ctx context.Context, name string) *structpb.Struct {
	if r.results == nil {
		return nil
	}
	data, err := r.results.Get(ctx, name)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Log.Warnf("get result %s: %v", name, err)
		}
		return nil
	}
	rsp := &structpb.Struct{}
	if err := proto.Unmarshal(data, rsp); err != nil {
		logger.Log.Warnf("decode result %s: %v", name, err)
		return nil
	}
	return rsp
}

func (r *Remote) store(ctx context.Context, name string, rsp *structpb.Struct) {
	if r.results == nil {
		return
	}
	data, err := proto.Marshal(rsp)
	if err != nil {
		logger.Log.Warnf("encode result %s: %v", name, err)
		return
	}
	if err := r.results.Put(ctx, name, data); err != nil {
		logger.Log.Warnf("put result %s: %v", name, err)
	}
}

// Dora maps each indicator name to the name of the dora it shows.
func (r *Remote) Dora(ctx context.Context, req *structpb.ListValue) (*structpb.ListValue, error) {
	names := make([]any, 0, len(req.GetValues()))
	for i, v := range req.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("indicator %d is not a string", i)
		}
		indicator, err := mahjong.ParseValue(s.StringValue)
		if err != nil {
			return nil, err
		}
		names = append(names, indicator.NextDora().Name())
	}
	return structpb.NewList(names)
}

func (r *Remote) handleWaits(ctx context.Context, msg proto.Message) (proto.Message, error) {
	req, ok := msg.(*wrapperspb.StringValue)
	if !ok {
		return nil, fmt.Errorf("unexpected message %T", msg)
	}
	return r.Waits(ctx, req)
}

func (r *Remote) handleDora(ctx context.Context, msg proto.Message) (proto.Message, error) {
	req, ok := msg.(*structpb.ListValue)
	if !ok {
		return nil, fmt.Errorf("unexpected message %T", msg)
	}
	return r.Dora(ctx, req)
}

func arrangementValue(a hand.HandArrangement) map[string]any {
	groups := make([]any, 0)
	for _, g := range a.Groups() {
		groups = append(groups, map[string]any{
			"type":  g.Type().String(),
			"tiles": tileNames(g.Tiles()),
		})
	}
	res := map[string]any{"groups": groups}
	if w, ok := a.Wait(); ok {
		res["wait"] = map[string]any{
			"kind":   w.Kind().String(),
			"tiles":  tileNames(w.Tiles()),
			"values": valueNames(w.CompletingValues()),
		}
	}
	return res
}

func tileNames(tiles []mahjong.Tile) []any {
	res := make([]any, len(tiles))
	for i, t := range tiles {
		res[i] = t.Name()
	}
	return res
}

func valueNames(values []mahjong.TileValue) []any {
	res := make([]any, len(values))
	for i, v := range values {
		res[i] = v.Name()
	}
	return res
}
