package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MapGatewayErr_NilIsNil(t *testing.T) {
	assert.NoError(t, mapGatewayErr(nil))
}

func Test_MapGatewayErr_RejectionPassesThrough(t *testing.T) {
	rej := &RejectionError{Message: "Amount is too large", Details: []ErrorDetail{{Code: "91522"}}}
	got := mapGatewayErr(rej)
	assert.Same(t, rej, got)
}

func Test_MapGatewayErr_NotFoundPassesThrough(t *testing.T) {
	err := fmt.Errorf("%w: gone", ErrNotFound)
	assert.True(t, errors.Is(mapGatewayErr(err), ErrNotFound))
}

func Test_MapGatewayErr_UnknownWrapsGateway(t *testing.T) {
	got := mapGatewayErr(errors.New("dial tcp: i/o timeout"))
	assert.True(t, errors.Is(got, ErrGateway))
	assert.False(t, errors.Is(got, ErrNotFound))
}
