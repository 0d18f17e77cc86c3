package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestTypeUrl(t *testing.T) {
	assert.Equal(t, "type.googleapis.com/google.protobuf.StringValue", TypeUrl(&wrapperspb.StringValue{}))
}

func TestAnyRoundTrip(t *testing.T) {
	data, err := ToAny(wrapperspb.String("123m"))
	require.NoError(t, err)
	assert.Equal(t, TypeUrl(&wrapperspb.StringValue{}), data.GetTypeUrl())

	msg, err := FromAny(data)
	require.NoError(t, err)
	assert.True(t, proto.Equal(wrapperspb.String("123m"), msg))

	_, err = FromAny(nil)
	assert.Error(t, err)
}
