package mixer

import (
	"testing"

	"github.com/jfreymuth/pulse/proto"
	"github.com/stretchr/testify/assert"
)

func TestChannelVolumesToPercent(t *testing.T) {
	const norm = proto.VolumeNorm

	tests := []struct {
		name string
		cv   proto.ChannelVolumes
		want int
	}{
		{"no channels defaults to full", nil, 100},
		{"single channel at norm", proto.ChannelVolumes{norm}, 100},
		{"single channel at half", proto.ChannelVolumes{norm / 2}, 50},
		{"silent", proto.ChannelVolumes{0, 0}, 0},
		{"stereo averaged", proto.ChannelVolumes{norm, norm / 2}, 75},
		{"boosted above norm clamps", proto.ChannelVolumes{norm * 2}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, channelVolumesToPercent(tt.cv))
		})
	}
}
