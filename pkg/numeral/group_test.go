package numeral

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDecorate(t *testing.T) {
	tests := []struct {
		name  string
		group []string
		want  []string
	}{
		{"ones only", []string{"五"}, []string{"五"}},
		{"full group", []string{"四", "三", "二", "一"}, []string{"四", "三十", "二百", "一千"}},
		{"zero never decorated", []string{"零", "零", "零", "一"}, []string{"零", "零", "零", "一千"}},
		{"interior zero", []string{"一", "零", "五"}, []string{"一", "零", "五百"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]string(nil), tt.group...)
			assert.Equal(t, tt.want, Decorate(tt.group))
			assert.Equal(t, in, tt.group, "input must not be mutated")
		})
	}
}

func TestCollapseZeros(t *testing.T) {
	tests := []struct {
		name  string
		group []string
		want  []string
	}{
		{"no zeros", []string{"一", "二十"}, []string{"一", "二十"}},
		{"leading zeros blanked", []string{"零", "零", "零", "一千"}, []string{"", "", "", "一千"}},
		{"interior run keeps one", []string{"一", "零", "零", "一千"}, []string{"一", "", "零", "一千"}},
		{"high zeros keep last", []string{"一", "零", "零", "零"}, []string{"一", "", "", "零"}},
		{"all zero", []string{"零", "零", "零", "零"}, []string{"", "", "", ""}},
		{"split zeros", []string{"零", "一十", "零", "一千"}, []string{"", "一十", "零", "一千"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseZeros(tt.group))
		})
	}
}

func TestApplyGroupMarker(t *testing.T) {
	tests := []struct {
		name  string
		group []string
		count int
		want  []string
	}{
		{"ones group untouched", []string{"一", "二十"}, 0, []string{"一", "二十"}},
		{"ten thousands", []string{"", "", "", "一千"}, 1, []string{"万", "", "", "一千"}},
		{"empty ten thousands becomes zero", []string{"", "", "", ""}, 1, []string{"零", "", "", ""}},
		{"hundred millions unconditional", []string{"", "", "", ""}, 2, []string{"亿", "", "", ""}},
		{"ten trillions reuses wan", []string{"一"}, 3, []string{"一万"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyGroupMarker(tt.group, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyGroupMarkerBeyondTable(t *testing.T) {
	_, err := ApplyGroupMarker([]string{"一"}, 4)
	require.ErrorIs(t, err, ErrTooLong)
}

func TestPartition(t *testing.T) {
	tokens := strings.Split("一二三四五六七八九", "")
	groups := partition(tokens)
	require.Len(t, groups, 3)
	assert.Equal(t, []string{"一", "二", "三", "四"}, groups[0])
	assert.Equal(t, []string{"九"}, groups[2])

	// 各组互不共享底层数组
	groups[0] = append(groups[0], "x")
	assert.Equal(t, "五", groups[1][0])
}

func decoratedGroup(t *rapid.T) []string {
	digits := rapid.SliceOfN(rapid.IntRange(0, 9), 1, GroupSize).Draw(t, "digits")
	group := make([]string, len(digits))
	for i, d := range digits {
		group[i] = digitTable[d]
	}
	return Decorate(group)
}

func TestCollapseZerosIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		once := CollapseZeros(decoratedGroup(t))
		twice := CollapseZeros(once)
		if !assert.ObjectsAreEqual(once, twice) {
			t.Fatalf("collapse not idempotent: %q vs %q", once, twice)
		}
	})
}

func TestCollapseZerosNoAdjacentZeros(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		group := CollapseZeros(decoratedGroup(t))
		if len(group) > 0 && group[0] == Zero {
			t.Fatalf("leading zero survived: %q", group)
		}
		for i := 0; i+1 < len(group); i++ {
			if group[i] == Zero && group[i+1] == Zero {
				t.Fatalf("adjacent zeros at %d: %q", i, group)
			}
		}
	})
}
