// Copyright (c) 2026 Volare Charters. All rights reserved.

package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestSelectPrimary covers the lead-photo policy: the primary flag wins over
position, position breaks the tie, and an empty set has no lead.
*/
func TestSelectPrimary(t *testing.T) {
	first := &Image{ID: "i1", SortOrder: 0}
	second := &Image{ID: "i2", SortOrder: 1}
	flagged := &Image{ID: "i3", SortOrder: 2, IsPrimary: true}

	tests := []struct {
		name    string
		records []*Image
		want    *Image
	}{
		{"flag_wins_over_position", []*Image{first, second, flagged}, flagged},
		{"no_flag_first_row_leads", []*Image{first, second}, first},
		{"single_record", []*Image{second}, second},
		{"empty_set_no_lead", []*Image{}, nil},
		{"nil_set_no_lead", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectPrimary(tt.records))
		})
	}
}

// Two flagged rows: store order decides, so the selection stays stable.
func TestSelectPrimary_FirstFlagWins(t *testing.T) {
	early := &Image{ID: "i1", IsPrimary: true}
	late := &Image{ID: "i2", IsPrimary: true}

	got := SelectPrimary([]*Image{early, late})
	require.NotNil(t, got)
	assert.Equal(t, "i1", got.ID)
}
