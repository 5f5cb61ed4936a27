package peer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chaintope/tapyrus-spv/peer"
	"github.com/chaintope/tapyrus-spv/version"
)

func TestNewVersionMessageUserAgent(t *testing.T) {
	msg := peer.NewVersionMessage()
	want := fmt.Sprintf("/%s:%s/", version.Name, version.Version)
	assert.Equal(t, want, msg.UserAgent)
}
