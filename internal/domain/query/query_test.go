package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Options
		def  Order
		want Options
	}{
		{
			name: "empty order takes default",
			in:   Options{},
			def:  OrderDesc,
			want: Options{Order: OrderDesc},
		},
		{
			name: "explicit order kept",
			in:   Options{Order: OrderAsc, Limit: 10},
			def:  OrderDesc,
			want: Options{Order: OrderAsc, Limit: 10},
		},
		{
			name: "unknown order replaced",
			in:   Options{Order: "sideways", Limit: 5},
			def:  OrderAsc,
			want: Options{Order: OrderAsc, Limit: 5},
		},
		{
			name: "negative limit means unlimited",
			in:   Options{Order: OrderDesc, Limit: -3},
			def:  OrderDesc,
			want: Options{Order: OrderDesc},
		},
		{
			name: "limit clamped",
			in:   Options{Order: OrderDesc, Limit: MaxLimit + 1},
			def:  OrderDesc,
			want: Options{Order: OrderDesc, Limit: MaxLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize(tt.def))
		})
	}
}

func TestOrder_Validate(t *testing.T) {
	assert.NoError(t, OrderAsc.Validate())
	assert.NoError(t, OrderDesc.Validate())
	assert.Error(t, Order("").Validate())
	assert.True(t, OrderAsc.Ascending())
	assert.False(t, OrderDesc.Ascending())
}
