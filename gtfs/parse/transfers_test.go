package parse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transitdata/raptor-gtfs/model"
)

func TestTransfers(t *testing.T) {
	for _, tc := range []struct {
		name      string
		content   string
		transfers []model.Transfer
		err       bool
	}{
		{
			"minimal",
			`
from_stop_id,to_stop_id,min_transfer_time
s1,s2,120`,
			[]model.Transfer{{FromStopID: "s1", ToStopID: "s2", MinTransferTime: 120}},
			false,
		},
		{
			"negative min_transfer_time",
			`
from_stop_id,to_stop_id,min_transfer_time
s1,s2,-5`,
			nil,
			true,
		},
		{
			"missing stop id",
			`
from_stop_id,to_stop_id,min_transfer_time
,s2,120`,
			nil,
			true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			transfers, err := Transfers(bytes.NewBufferString(tc.content))
			if tc.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.transfers, transfers)
		})
	}
}

func TestTransfersNilReader(t *testing.T) {
	transfers, err := Transfers(nil)
	assert.NoError(t, err)
	assert.Nil(t, transfers)
}
