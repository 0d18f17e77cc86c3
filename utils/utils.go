package utils

import (
	"errors"
	"fmt"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

const typeUrlPrefix = "type.googleapis.com/"

// TypeUrl is the Any type URL of msg, computed from its descriptor.
func TypeUrl(msg proto.Message) string {
	return typeUrlPrefix + string(msg.ProtoReflect().Descriptor().FullName())
}

func ToAny(msg proto.Message) (*anypb.Any, error) {
	data, err := anypb.New(msg)
	if err != nil {
		logger.Log.Errorf("pack %s: %v", TypeUrl(msg), err)
		return nil, err
	}
	return data, nil
}

func FromAny(data *anypb.Any) (proto.Message, error) {
	if data == nil {
		return nil, errors.New("nil any")
	}
	msg, err := data.UnmarshalNew()
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", data.GetTypeUrl(), err)
	}
	return msg, nil
}
